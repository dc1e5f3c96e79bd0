package engine

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
	"golang.org/x/net/html"
)

// ErrInvalidInput marks user input rejected before any network work.
// Surfaced by the tool layer as a -32602 invalid-params error.
var ErrInvalidInput = errors.New("invalid input")

// MaxQueryLength bounds sanitized search queries, in runes.
const MaxQueryLength = 500

// SanitizeQuery cleans a free-text query before it reaches network-facing
// code: control characters (except newline, carriage return, tab) are
// stripped, the raw query is capped at MaxQueryLength runes, then markup is
// stripped and the remainder trimmed. Truncation happens on the raw string so
// the length bound does not depend on markup-stripping cost; a tag broken by
// the cut is dropped during stripping.
func SanitizeQuery(query string) (string, error) {
	if query == "" {
		return "", fmt.Errorf("%w: empty query", ErrInvalidInput)
	}

	query = strings.Map(func(r rune) rune {
		if r >= 32 || r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		return -1
	}, query)

	query = strutil.TruncateWith(query, MaxQueryLength, "")
	query = stripMarkup(query)

	return strings.TrimSpace(query), nil
}

// ValidateURL checks that url is an absolute http(s) URL with a host.
// Returns the trimmed but otherwise unmodified URL; escaping happens
// downstream when outbound URLs are built.
func ValidateURL(rawURL string) (string, error) {
	if rawURL == "" {
		return "", fmt.Errorf("%w: empty URL", ErrInvalidInput)
	}

	rawURL = strings.TrimSpace(rawURL)

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("%w: URL must include scheme (http/https) and domain", ErrInvalidInput)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("%w: only http and https schemes are allowed", ErrInvalidInput)
	}

	return rawURL, nil
}

// stripMarkup removes HTML-like tags, keeping only text content.
// Entities are decoded; an unterminated trailing tag is dropped.
func stripMarkup(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	var b strings.Builder
	tz := html.NewTokenizer(strings.NewReader(s))
	for {
		switch tz.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(tz.Text())
		}
	}
}
