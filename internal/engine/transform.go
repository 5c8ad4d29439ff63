package engine

import (
	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// ToMarkdown converts an HTML fragment to Markdown.
//
// Conversion internals live entirely in the html-to-markdown library; this
// wrapper exists so engines and tests share one conversion point.
func ToMarkdown(html string) (string, error) {
	return htmltomarkdown.ConvertString(html)
}
