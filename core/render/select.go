package render

import (
	"fmt"

	"github.com/gaurav-prasanna/scpdump/core"
)

// Output formats.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatPDF      = "pdf"
)

// Select creates the Renderer for a format name.
func Select(format string, threshold int) (core.Renderer, error) {
	switch format {
	case FormatMarkdown, "":
		return NewMarkdownRenderer(threshold), nil
	case FormatJSON:
		return NewJSONRenderer(), nil
	case FormatPDF:
		return NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want markdown, json or pdf)", format)
	}
}
