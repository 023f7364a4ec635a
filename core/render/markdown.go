// Package render provides output renderers for parsed articles.
// This file implements the Markdown renderer, the default output.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gaurav-prasanna/scpdump/core"
)

// DefaultInlineThreshold is the longest section (bold heading plus body)
// kept on a single line.
const DefaultInlineThreshold = 35

// MarkdownRenderer writes an article as a Markdown document. Short sections
// are written inline after their heading; longer ones get a line break.
type MarkdownRenderer struct {
	InlineThreshold int
}

// NewMarkdownRenderer creates a MarkdownRenderer. A threshold <= 0 uses
// DefaultInlineThreshold.
func NewMarkdownRenderer(threshold int) *MarkdownRenderer {
	if threshold <= 0 {
		threshold = DefaultInlineThreshold
	}
	return &MarkdownRenderer{InlineThreshold: threshold}
}

// Render returns the Markdown document for the article.
func (r *MarkdownRenderer) Render(article core.ArticleSummary) ([]byte, error) {
	header := fmt.Sprintf("## %s\n```Object Class: %s```\n",
		article.FriendlyTitle(), article.Classification)

	blocks := make([]string, 0, len(article.Sections)+1)
	blocks = append(blocks, header)
	for _, s := range article.Sections {
		blocks = append(blocks, r.section(s))
	}
	return []byte(strings.Join(blocks, "\n")), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

func (r *MarkdownRenderer) section(s core.Section) string {
	subtitle := "**" + s.Heading + "**"
	paragraph := strings.Join(s.Body, "\n")

	if utf8.RuneCountInString(subtitle+paragraph) <= r.InlineThreshold {
		return subtitle + " " + paragraph + "\n"
	}
	return subtitle + "<br/>" + paragraph + "\n"
}
