// Package main provides the entry point for the mapdown CLI.
//
// mapdown converts website sitemaps (XML or JSON URL lists) into flat URL
// lists or into a directory of Markdown files, fetching pages directly or
// through hosted reader APIs.
//
// Usage:
//
//	mapdown fetch -i sitemap.xml -o docs/
//	mapdown list -i https://example.com/sitemap.xml -o urls.txt
//
// See --help for all available options.
package main

// main is the entry point for mapdown.
func main() {
	Execute()
}
