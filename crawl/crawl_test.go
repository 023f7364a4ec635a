package crawl

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gaurav-prasanna/scpdump/core/fetch"
)

const indexHTML = `<html><body>
<div class="content-panel standalone series">
  <ul>
    <li><a href="/scp-002">SCP-002</a> - Title A</li>
    <li>--------</li>
    <li><a href="/scp-003">SCP-003</a> - Title B</li>
  </ul>
</div>
<div class="content-panel"><ul><li><a href="/scp-999">SCP-999</a> - Elsewhere</li></ul></div>
</body></html>`

func TestParseIndex(t *testing.T) {
	items, err := ParseIndex(indexHTML, nil)
	if err != nil {
		t.Fatalf("ParseIndex: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %+v", len(items), items)
	}

	want := []struct {
		index int
		title string
		link  string
	}{
		{2, "Title A", "/scp-002"},
		{3, "Title B", "/scp-003"},
	}
	for i, w := range want {
		got := items[i]
		if got.Index != w.index || got.Title != w.title || got.Link != w.link {
			t.Errorf("item %d = %+v, want %+v", i, got, w)
		}
		if got.Classification != "<unknown>" {
			t.Errorf("item %d: expected unknown classification, got %q", i, got.Classification)
		}
	}
}

func TestParseIndexSkipsNonMatching(t *testing.T) {
	html := `<div class="content-panel standalone series"><ul>
<li>Joke articles</li>
<li><a href="/scp-004">SCP-004</a>-Tight Separator</li>
<li>SCP-005 - No Link</li>
</ul></div>`
	items, err := ParseIndex(html, nil)
	if err != nil {
		t.Fatalf("ParseIndex: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d: %+v", len(items), items)
	}
	if items[0].Index != 4 || items[0].Title != "Tight Separator" {
		t.Errorf("unexpected item %+v", items[0])
	}
}

func TestIndexURL(t *testing.T) {
	tests := []struct {
		base   string
		series int
		want   string
	}{
		{"http://www.scp-wiki.net/", 1, "http://www.scp-wiki.net/scp-series"},
		{"http://www.scp-wiki.net/", 2, "http://www.scp-wiki.net/scp-series-2"},
		{"http://www.scp-wiki.net", 5, "http://www.scp-wiki.net/scp-series-5"},
		{"http://host/wiki", 1, "http://host/wiki/scp-series"},
	}
	for _, tt := range tests {
		got, err := IndexURL(tt.base, tt.series)
		if err != nil {
			t.Fatalf("IndexURL(%q, %d): %v", tt.base, tt.series, err)
		}
		if got != tt.want {
			t.Errorf("IndexURL(%q, %d) = %q, want %q", tt.base, tt.series, got, tt.want)
		}
	}
}

func TestIndexURLRejectsBadSeries(t *testing.T) {
	if _, err := IndexURL("http://www.scp-wiki.net/", 0); !errors.Is(err, ErrInvalidSeries) {
		t.Errorf("expected ErrInvalidSeries, got %v", err)
	}
}

func TestResolveLink(t *testing.T) {
	tests := []struct {
		link string
		want string
	}{
		{"/scp-002", "http://www.scp-wiki.net/scp-002"},
		{"scp-002", "http://www.scp-wiki.net/scp-002"},
		{"/scp-002#toc", "http://www.scp-wiki.net/scp-002"},
		{"http://other.net/scp-002", "http://other.net/scp-002"},
	}
	for _, tt := range tests {
		got, err := ResolveLink("http://www.scp-wiki.net/", tt.link)
		if err != nil {
			t.Fatalf("ResolveLink(%q): %v", tt.link, err)
		}
		if got != tt.want {
			t.Errorf("ResolveLink(%q) = %q, want %q", tt.link, got, tt.want)
		}
	}
}

func TestHarvestFetchesSeriesPage(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, indexHTML)
	}))
	defer srv.Close()

	h := NewHarvester(fetch.New(0, ""), srv.URL+"/", nil)
	items, err := h.Harvest(context.Background(), 3)
	if err != nil {
		t.Fatalf("Harvest: %v", err)
	}
	if gotPath != "/scp-series-3" {
		t.Errorf("expected /scp-series-3, got %q", gotPath)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 items, got %d", len(items))
	}
}

func TestHarvestPropagatesFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	h := NewHarvester(fetch.New(0, ""), srv.URL+"/", nil)
	if _, err := h.Harvest(context.Background(), 1); !errors.Is(err, fetch.ErrUnexpectedStatus) {
		t.Fatalf("expected ErrUnexpectedStatus, got %v", err)
	}
}
