// Package normalize cleans up text fragments pulled out of article markup.
// Wiki pages write labels as "<strong>Label</strong>: value", so the value
// text usually carries a leading colon that has to go.
package normalize

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// StripColon removes a leading ":" and the whitespace around the rest of
// the text. A nil value is treated as empty. Text not starting with a colon
// is returned unchanged.
func StripColon(text *string) string {
	if text == nil {
		return ""
	}
	return StripColonString(*text)
}

// StripColonString is StripColon for a plain string.
func StripColonString(text string) string {
	if rest, ok := strings.CutPrefix(text, ":"); ok {
		return strings.TrimSpace(rest)
	}
	return text
}

// MarkdownNormalizer converts paragraph HTML to Markdown using
// html-to-markdown, keeping links and emphasis that plain text would lose.
type MarkdownNormalizer struct{}

// New creates a MarkdownNormalizer.
func New() *MarkdownNormalizer {
	return &MarkdownNormalizer{}
}

// Normalize converts an HTML fragment into single-paragraph Markdown with
// the leading colon artifact removed.
func (n *MarkdownNormalizer) Normalize(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return StripColonString(strings.TrimSpace(markdown)), nil
}
