// Package crawl — URL rules.
// Builds index page URLs and resolves article links against the wiki base.
package crawl

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidSeries is returned for series numbers below 1.
var ErrInvalidSeries = errors.New("series must be at least 1")

// IndexURL returns the index page URL for a series. Series 1 is the
// canonical page with no suffix; any other series appends "-<n>".
func IndexURL(baseURL string, series int) (string, error) {
	if series < 1 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidSeries, series)
	}
	page := "scp-series"
	if series != 1 {
		page = fmt.Sprintf("scp-series-%d", series)
	}
	return ResolveLink(baseURL, page)
}

// ResolveLink joins a relative article link onto the base URL.
// Absolute links are returned as-is, minus any fragment.
func ResolveLink(baseURL, link string) (string, error) {
	base, err := parseBase(baseURL)
	if err != nil {
		return "", err
	}

	ref, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return "", fmt.Errorf("parsing link %q: %w", link, err)
	}

	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String(), nil
}

// parseBase parses the base URL and makes sure its path is treated as a
// directory, so "http://host/wiki" and "http://host/wiki/" resolve alike.
func parseBase(baseURL string) (*url.URL, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL: %s (must include scheme, e.g. http://www.scp-wiki.net/)", baseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	return base, nil
}
