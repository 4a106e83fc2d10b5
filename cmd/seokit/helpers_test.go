package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// executeCmd runs the root command with args and returns its stdout.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

// writeConfig writes a .seokit.yaml into dir and returns its path.
func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, ".seokit.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// writeFile writes content to dir/rel, creating parent directories.
func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
}

const goodPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Cinematic Web Works - Video Production</title>
<meta name="description" content="Award-winning video production and web design studio based in Manama, Bahrain.">
<link rel="canonical" href="https://cinematicwebworks.com/">
<meta property="og:title" content="Cinematic Web Works">
<meta property="og:description" content="Video production and web design in Bahrain.">
<meta property="og:image" content="https://cinematicwebworks.com/og.png">
<script type="application/ld+json">
{"@context": "https://schema.org", "@type": "LocalBusiness", "name": "Cinematic Web Works"}
</script>
</head>
<body>
<h1>We make films</h1>
<a href="/services.html">Services</a>
<a href="/work.html">Work</a>
<a href="/contact.html">Contact</a>
<a href="https://wa.me/97339007750">WhatsApp</a>
<a href="https://bahrainnights.com">BahrainNights</a>
<img src="/hero.jpg" alt="Film crew on set">
</body>
</html>`

const brokenPage = `<html><head></head><body><p>Nothing here</p></body></html>`
