package audit

import (
	"path/filepath"
	"strings"
)

// DefaultPages are the priority pages audited when none are configured.
var DefaultPages = []string{
	"/",
	"/web-development-bahrain.html",
	"/web-design-bahrain.html",
	"/cinematic-websites.html",
	"/ecommerce-website-bahrain.html",
	"/restaurant-website-bahrain.html",
	"/blog.html",
}

// Report file suffixes written by the tool.
const (
	JSONReportSuffix = ".report.json"
	HTMLReportSuffix = ".report.html"
)

// PageName returns the file-name stem for page's reports: "/" becomes
// "index", otherwise slashes become underscores and ".html" is dropped
// ("/blog.html" becomes "_blog"). The root page is written as
// index.report.json, never _.report.json.
func PageName(page string) string {
	if page == "" || page == "/" {
		return "index"
	}
	name := strings.TrimSuffix(strings.ReplaceAll(page, "/", "_"), ".html")
	if name == "" {
		return "index"
	}
	return name
}

// PageURL returns the absolute URL for page. Absolute pages are returned
// unchanged.
func PageURL(baseURL, page string) string {
	if strings.HasPrefix(page, "http://") || strings.HasPrefix(page, "https://") {
		return page
	}
	if !strings.HasPrefix(page, "/") {
		page = "/" + page
	}
	return strings.TrimSuffix(baseURL, "/") + page
}

// PageFromURL strips baseURL from rawURL to obtain a site path. An empty
// remainder becomes "/". URLs on other hosts are returned unchanged.
func PageFromURL(baseURL, rawURL string) string {
	base := strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(rawURL, base) {
		return rawURL
	}
	page := strings.TrimPrefix(rawURL, base)
	if page == "" {
		return "/"
	}
	return page
}

// OutputBase returns the path prefix the tool writes page's reports to.
func OutputBase(reportsDir, page string) string {
	return filepath.Join(reportsDir, PageName(page))
}
