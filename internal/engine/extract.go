package engine

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractorFunc parses one engine's HTML document into result records.
// Best-effort: a page that matches no selectors yields an empty list.
type extractorFunc func(doc *goquery.Document) []Result

// extractors maps engine id to its dedicated extractor. Engines without an
// entry fall back to extractGeneric.
var extractors = map[string]extractorFunc{
	"duckduckgo": extractDuckDuckGo,
	"brave":      extractBrave,
	"mojeek":     extractMojeek,
}

// Extract parses raw search-page content for the given engine.
// Records are returned untagged; the dispatcher stamps the engine id.
func Extract(raw, engineID string) ([]Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		metrics.ExtractErrors.Add(1)
		return nil, fmt.Errorf("%w: %v", ErrExtract, err)
	}

	fn, ok := extractors[engineID]
	if !ok {
		fn = extractGeneric
	}
	return fn(doc), nil
}

// extractDuckDuckGo parses the DDG HTML lite endpoint.
func extractDuckDuckGo(doc *goquery.Document) []Result {
	var results []Result

	doc.Find(".result, .web-result").Each(func(_ int, s *goquery.Selection) {
		link := s.Find("a.result__a, .result__title a").First()
		title := strings.TrimSpace(link.Text())
		href, exists := link.Attr("href")
		if !exists || title == "" {
			return
		}

		// DDG wraps URLs in redirects — extract the actual URL
		href = ddgUnwrapURL(href)
		if href == "" {
			return
		}

		snippet := strings.TrimSpace(s.Find(".result__snippet").First().Text())

		results = append(results, Result{Title: title, URL: href, Snippet: snippet})
	})

	return results
}

// ddgUnwrapURL extracts the actual URL from DDG redirect wrappers.
// DDG HTML wraps links as: //duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com&rut=...
func ddgUnwrapURL(href string) string {
	if strings.Contains(href, "duckduckgo.com/l/") || strings.Contains(href, "uddg=") {
		if u, err := url.Parse(href); err == nil {
			if uddg := u.Query().Get("uddg"); uddg != "" {
				return uddg
			}
		}
	}
	return href
}

// extractBrave parses Brave search result snippets.
func extractBrave(doc *goquery.Document) []Result {
	var results []Result

	doc.Find("div[class*='snippet']").Each(func(_ int, s *goquery.Selection) {
		anchor := s.Find("a[href]").First()
		href, exists := anchor.Attr("href")
		if !exists {
			return
		}

		title := strings.TrimSpace(s.Find("h1, h2, h3").First().Text())
		if title == "" {
			title = strings.TrimSpace(anchor.Text())
		}

		snippet := strings.TrimSpace(s.Find("p").First().Text())

		results = append(results, Result{Title: title, URL: href, Snippet: snippet})
	})

	return results
}

// extractMojeek parses Mojeek result blocks.
func extractMojeek(doc *goquery.Document) []Result {
	var results []Result

	doc.Find("div[class*='result'], article[class*='result']").Each(func(_ int, s *goquery.Selection) {
		title := strings.TrimSpace(s.Find("h3, a").First().Text())
		link := s.Find("a[href]").First()
		href, exists := link.Attr("href")
		if !exists || title == "" {
			return
		}

		snippet := strings.TrimSpace(
			s.Find("p[class*='desc'], span[class*='desc'], p[class*='snippet'], span[class*='snippet']").First().Text())

		results = append(results, Result{Title: title, URL: href, Snippet: snippet})
	})

	return results
}

// extractGeneric is the fallback for engines without a dedicated extractor:
// collect outbound links with a plausible title, capped at DefaultMaxResults.
func extractGeneric(doc *goquery.Document) []Result {
	var results []Result

	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		parent := goquery.NodeName(s.Parent())
		if parent != "div" && parent != "article" && parent != "li" {
			return true
		}

		title := strings.TrimSpace(s.Text())
		href, _ := s.Attr("href")
		if len(title) > 10 && strings.HasPrefix(href, "http") {
			results = append(results, Result{Title: title, URL: href})
		}

		return len(results) < DefaultMaxResults
	})

	return results
}
