// Package core defines the pipeline interfaces and records for scpdump.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"
	"fmt"
)

// UnknownClass is the classification of an article whose page never
// declared one.
const UnknownClass = "<unknown>"

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Section is a labeled block of article text keyed by its bold heading.
type Section struct {
	Heading string   `json:"heading"`
	Body    []string `json:"body"`
}

// ParsedArticle is what the article parser reduces a page to.
type ParsedArticle struct {
	Classification string    `json:"classification"`
	Sections       []Section `json:"sections"`
}

// ArticleSummary is one entry of a series index, optionally populated with
// the parsed article content.
type ArticleSummary struct {
	Index          int       `json:"index"`
	Title          string    `json:"title"`
	Link           string    `json:"link"`
	Classification string    `json:"classification"`
	Sections       []Section `json:"sections"`
}

// NewArticleSummary creates a summary with the unknown classification and
// no sections.
func NewArticleSummary(index int, title, link string) ArticleSummary {
	return ArticleSummary{
		Index:          index,
		Title:          title,
		Link:           link,
		Classification: UnknownClass,
	}
}

// WithParsed returns a copy of s carrying the classification and sections
// of p. The receiver is left untouched.
func (s ArticleSummary) WithParsed(p ParsedArticle) ArticleSummary {
	out := s
	out.Classification = p.Classification
	out.Sections = append([]Section(nil), p.Sections...)
	return out
}

// FriendlyTitle returns the display title, e.g. "SCP-002 The Living Room".
func (s ArticleSummary) FriendlyTitle() string {
	return fmt.Sprintf("SCP-%03d %s", s.Index, s.Title)
}

func (s ArticleSummary) String() string {
	return fmt.Sprintf("%s [%s]", s.FriendlyTitle(), s.Link)
}

// ItemResult is the outcome of processing one index entry.
type ItemResult struct {
	Index int
	Title string
	Path  string // written file, empty on failure
	Err   error
}

// OK reports whether the item was written.
func (r ItemResult) OK() bool {
	return r.Err == nil
}

// Report collects the per-item outcomes of a batch run.
type Report struct {
	Series int
	Items  []ItemResult
}

// Succeeded returns the number of items written.
func (r *Report) Succeeded() int {
	n := 0
	for _, it := range r.Items {
		if it.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of items that were skipped due to an error.
func (r *Report) Failed() int {
	return len(r.Items) - r.Succeeded()
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Parser reduces raw article HTML into a ParsedArticle.
type Parser interface {
	Parse(html string) (ParsedArticle, error)
}

// Renderer converts a populated article into a final output format.
type Renderer interface {
	Render(article ArticleSummary) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
