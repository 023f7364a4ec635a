// Package render — JSON renderer.
// Writes the populated article as structured JSON, with a few counts
// describing its shape.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/scpdump/core"
)

// JSONRenderer produces structured JSON output for an article.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

type articleJSON struct {
	Index          int            `json:"index"`
	Title          string         `json:"title"`
	FriendlyTitle  string         `json:"friendly_title"`
	Link           string         `json:"link"`
	Classification string         `json:"classification"`
	Sections       []core.Section `json:"sections"`
	Structure      structureJSON  `json:"structure"`
}

type structureJSON struct {
	Sections  int `json:"sections"`
	BodyLines int `json:"body_lines"`
	Words     int `json:"words"`
}

// Render converts the article into indented JSON.
func (r *JSONRenderer) Render(article core.ArticleSummary) ([]byte, error) {
	sections := article.Sections
	if sections == nil {
		sections = []core.Section{}
	}

	out := articleJSON{
		Index:          article.Index,
		Title:          article.Title,
		FriendlyTitle:  article.FriendlyTitle(),
		Link:           article.Link,
		Classification: article.Classification,
		Sections:       sections,
		Structure:      describe(sections),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

func describe(sections []core.Section) structureJSON {
	st := structureJSON{Sections: len(sections)}
	for _, s := range sections {
		st.BodyLines += len(s.Body)
		for _, line := range s.Body {
			st.Words += len(strings.Fields(line))
		}
	}
	return st
}
