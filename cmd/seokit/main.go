// Package main provides the entry point for the seokit CLI.
//
// seokit is the SEO toolkit for the Cinematic Web Works static site.
// It generates sitemap.xml, validates on-page SEO, prints schema.org
// JSON-LD blocks, and runs Lighthouse audits.
//
// Usage:
//
//	seokit sitemap
//	seokit validate -v
//	seokit schema service "Web Development"
//	seokit audit --url https://cinematicwebworks.com/blog.html
//
// See --help for all available options.
package main

// main is the entry point for seokit.
func main() {
	Execute()
}
