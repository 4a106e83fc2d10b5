package model

// ContentFile is an HTML content file found under a site root.
type ContentFile struct {
	// RelativePath is the path relative to the scan root, always using
	// forward slashes regardless of platform (e.g. "blog/post.html").
	RelativePath string `json:"relative_path"`

	// AbsolutePath is the full filesystem path used for reading the file.
	AbsolutePath string `json:"absolute_path"`
}

// IsRootIndex reports whether the file is the site's root index page.
func (f ContentFile) IsRootIndex() bool {
	return f.RelativePath == RootIndexFile
}

// RootIndexFile is the relative path of the site root page.
const RootIndexFile = "index.html"
