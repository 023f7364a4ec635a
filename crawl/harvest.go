// Package crawl harvests the article list of a series index page.
// Each index entry is a list item reading "SCP-<n> - <title>" with a link
// to the article page.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/gaurav-prasanna/scpdump/core"
)

var (
	// seriesItems selects the entries of the index panel.
	seriesItems = cascadia.MustCompile("div.content-panel.standalone.series > ul li")
	anchorHref  = cascadia.MustCompile("a[href]")

	titlePattern = regexp.MustCompile(`^SCP-(\d+)\s*-\s*(.+)`)
)

// Harvester fetches a series index and lists its articles.
type Harvester struct {
	fetcher core.Fetcher
	baseURL string
	log     *slog.Logger
}

// NewHarvester creates a Harvester reading index pages under baseURL.
func NewHarvester(fetcher core.Fetcher, baseURL string, log *slog.Logger) *Harvester {
	if log == nil {
		log = slog.Default()
	}
	return &Harvester{fetcher: fetcher, baseURL: baseURL, log: log}
}

// Harvest fetches the index page of a series and returns its articles in
// published order.
func (h *Harvester) Harvest(ctx context.Context, series int) ([]core.ArticleSummary, error) {
	indexURL, err := IndexURL(h.baseURL, series)
	if err != nil {
		return nil, err
	}

	h.log.Debug("fetching index", "series", series, "url", indexURL)
	result, err := h.fetcher.Fetch(ctx, indexURL)
	if err != nil {
		return nil, fmt.Errorf("fetching index: %w", err)
	}

	items, err := ParseIndex(result.HTML, h.log)
	if err != nil {
		return nil, fmt.Errorf("parsing index: %w", err)
	}
	h.log.Info("index harvested", "series", series, "articles", len(items))
	return items, nil
}

// ParseIndex extracts article summaries from index page HTML. Entries that
// do not look like "SCP-<n> - <title>" are skipped.
func ParseIndex(html string, log *slog.Logger) ([]core.ArticleSummary, error) {
	if log == nil {
		log = slog.Default()
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var items []core.ArticleSummary
	doc.FindMatcher(seriesItems).Each(func(_ int, li *goquery.Selection) {
		text := li.Text()
		m := titlePattern.FindStringSubmatch(text)
		if m == nil {
			return
		}

		index, err := strconv.Atoi(m[1])
		if err != nil {
			log.Debug("skipping entry with bad number", "text", text, "error", err)
			return
		}

		href, ok := li.FindMatcher(anchorHref).First().Attr("href")
		if !ok {
			log.Debug("skipping entry without link", "index", index)
			return
		}

		items = append(items, core.NewArticleSummary(index, m[2], href))
	})

	return items, nil
}
