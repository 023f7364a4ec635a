// Package render — PDF renderer.
// Lays out an article as a simple PDF using gofpdf: title, class line,
// then each section with a bold heading.
package render

import (
	"bytes"
	"strings"

	"github.com/gaurav-prasanna/scpdump/core"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders an article as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the article into PDF bytes.
func (r *PDFRenderer) Render(article core.ArticleSummary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252; translate from UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, tr(article.FriendlyTitle()), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Courier", "", 10)
	pdf.SetFillColor(245, 245, 245)
	pdf.MultiCell(0, 5, tr("Object Class: "+article.Classification), "", "L", true)
	pdf.Ln(4)

	for _, s := range article.Sections {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 6, tr(s.Heading), "", "L", false)

		pdf.SetFont("Helvetica", "", 10)
		for _, line := range s.Body {
			if strings.TrimSpace(line) == "" {
				continue
			}
			pdf.MultiCell(0, 5, tr(line), "", "L", false)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}
