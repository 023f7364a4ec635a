// Package extract implements the article Parser.
// It walks the paragraphs of an article page and reduces them to a
// classification plus labeled sections:
//  1. A paragraph led by a bold label opens a section (or sets the class)
//  2. A plain paragraph continues the most recently opened section
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/scpdump/core"
	"github.com/gaurav-prasanna/scpdump/core/normalize"
)

// Labels with special meaning.
const (
	ClassLabel = "Object Class:"
	ItemLabel  = "Item #:"
)

var (
	// ErrOrphanParagraph is returned when body text appears before any
	// section label.
	ErrOrphanParagraph = errors.New("paragraph before any section heading")
	// ErrNoSections is returned when an article yields no sections at all.
	ErrNoSections = errors.New("article has no sections")
)

var (
	contentParagraphs = cascadia.MustCompile("div#page-content > p")
	emphasis          = cascadia.MustCompile("strong, b")
)

// ArticleParser turns article page HTML into a ParsedArticle.
type ArticleParser struct {
	// markup, when set, keeps inline formatting by converting paragraph
	// HTML to Markdown instead of taking plain text.
	markup *normalize.MarkdownNormalizer
}

// New creates an ArticleParser. With preserveMarkup, section text keeps
// links and emphasis as Markdown.
func New(preserveMarkup bool) *ArticleParser {
	p := &ArticleParser{}
	if preserveMarkup {
		p.markup = normalize.New()
	}
	return p
}

// foldState is the accumulator carried across paragraphs.
type foldState struct {
	classification string
	sections       []core.Section
	current        int // index into sections, -1 before the first heading
}

// Parse reduces the article's content paragraphs into a ParsedArticle.
func (p *ArticleParser) Parse(page string) (core.ParsedArticle, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return core.ParsedArticle{}, fmt.Errorf("parsing HTML: %w", err)
	}

	state := foldState{classification: core.UnknownClass, current: -1}
	doc.FindMatcher(contentParagraphs).EachWithBreak(func(i int, para *goquery.Selection) bool {
		state, err = p.step(state, i, para)
		return err == nil
	})
	if err != nil {
		return core.ParsedArticle{}, err
	}

	return core.ParsedArticle{
		Classification: state.classification,
		Sections:       state.sections,
	}, nil
}

// step folds one paragraph into the state.
func (p *ArticleParser) step(state foldState, pos int, para *goquery.Selection) (foldState, error) {
	if label := para.FindMatcher(emphasis).First(); label.Length() > 0 {
		value, err := p.inlineValue(para, label)
		if err != nil {
			return state, fmt.Errorf("paragraph %d: %w", pos+1, err)
		}

		heading := label.Text()
		if heading == ClassLabel {
			state.classification = value
			return state, nil
		}
		state.sections = append(state.sections, core.Section{
			Heading: heading,
			Body:    []string{value},
		})
		state.current = len(state.sections) - 1
		return state, nil
	}

	if state.current < 0 {
		return state, fmt.Errorf("%w: paragraph %d", ErrOrphanParagraph, pos+1)
	}

	line, err := p.bodyText(para)
	if err != nil {
		return state, fmt.Errorf("paragraph %d: %w", pos+1, err)
	}
	section := &state.sections[state.current]
	section.Body = append(section.Body, line)
	return state, nil
}

// inlineValue returns the paragraph's text without its label.
func (p *ArticleParser) inlineValue(para, label *goquery.Selection) (string, error) {
	if p.markup == nil {
		return normalize.StripColonString(textExcluding(para.Get(0), label.Get(0))), nil
	}

	rest := para.Clone()
	rest.FindMatcher(emphasis).First().Remove()
	fragment, err := rest.Html()
	if err != nil {
		return "", fmt.Errorf("serializing paragraph: %w", err)
	}
	return p.markup.Normalize(fragment)
}

// bodyText returns the full text of a plain paragraph.
func (p *ArticleParser) bodyText(para *goquery.Selection) (string, error) {
	if p.markup == nil {
		return normalize.StripColonString(para.Text()), nil
	}

	fragment, err := para.Html()
	if err != nil {
		return "", fmt.Errorf("serializing paragraph: %w", err)
	}
	return p.markup.Normalize(fragment)
}

// textExcluding concatenates the text nodes under n, skipping the subtree
// rooted at skip.
func textExcluding(n, skip *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n == skip {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// DropItemSection removes a leading "Item #:" section, which repeats the
// number already known from the index.
func DropItemSection(sections []core.Section) ([]core.Section, error) {
	if len(sections) == 0 {
		return nil, ErrNoSections
	}
	if sections[0].Heading == ItemLabel {
		return sections[1:], nil
	}
	return sections, nil
}
