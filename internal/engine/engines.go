package engine

import (
	"net/url"
	"strings"
)

// DefaultMaxResults is the per-engine result limit when the caller omits one.
const DefaultMaxResults = 20

// SearchEngineURLs maps engine id to its query URL template.
// Templates use {query} as the placeholder for the escaped query.
var SearchEngineURLs = map[string]string{
	"duckduckgo": "https://html.duckduckgo.com/html/?q={query}",
	"brave":      "https://search.brave.com/search?q={query}",
	"ecosia":     "https://www.ecosia.org/search?q={query}",
	"startpage":  "https://www.startpage.com/do/search?q={query}",
	"mojeek":     "https://www.mojeek.com/search?q={query}",
	"yandex":     "https://yandex.com/search/?text={query}",
}

// EngineOrder fixes the expansion order of "all". Go maps iterate in random
// order; tool output must group engines deterministically.
var EngineOrder = []string{"duckduckgo", "brave", "ecosia", "startpage", "mojeek", "yandex"}

// SocialPlatformURLs maps social platform id to its public search URL template.
var SocialPlatformURLs = map[string]string{
	"twitter":       "https://twitter.com/search?q={query}&src=typed_query",
	"reddit":        "https://www.reddit.com/search/?q={query}",
	"youtube":       "https://www.youtube.com/results?search_query={query}",
	"github":        "https://github.com/search?q={query}&type=repositories",
	"stackoverflow": "https://stackoverflow.com/search?q={query}",
	"medium":        "https://medium.com/search?q={query}",
	"pinterest":     "https://www.pinterest.com/search/pins/?q={query}",
	"tiktok":        "https://www.tiktok.com/search?q={query}",
	"instagram":     "https://www.instagram.com/explore/tags/{query}/",
	"facebook":      "https://www.facebook.com/public/{query}",
	"linkedin":      "https://www.linkedin.com/search/results/all/?keywords={query}",
}

var PlatformOrder = []string{
	"twitter", "reddit", "youtube", "github", "stackoverflow",
	"medium", "pinterest", "tiktok", "instagram", "facebook", "linkedin",
}

// ArchiveService describes one web-archive provider.
type ArchiveService struct {
	Name        string
	SearchURL   string // template with {url}
	APIURL      string // availability API, wayback only
	SaveURL     string // on-demand archiving, archive_today only
	Description string
}

var ArchiveServices = map[string]ArchiveService{
	"wayback": {
		Name:        "Wayback Machine (Internet Archive)",
		SearchURL:   "https://web.archive.org/web/*/{url}",
		APIURL:      "https://archive.org/wayback/available?url={url}",
		Description: "Complete historical archive with multiple snapshots since 1996",
	},
	"archive_today": {
		Name:        "archive.today / archive.ph",
		SearchURL:   "https://archive.ph/{url}",
		SaveURL:     "https://archive.ph/?run=1&url={url}",
		Description: "Permanent, immutable archive, useful for preserving evidence",
	},
	"google_cache": {
		Name:        "Google Cache",
		SearchURL:   "https://webcache.googleusercontent.com/search?q=cache:{url}",
		Description: "Temporary Google cache (may be removed)",
	},
	"bing_cache": {
		Name:        "Bing Cache",
		SearchURL:   "https://www.bing.com/search?q=url:{url}",
		Description: "Bing cache (accessed via search)",
	},
	"yandex_cache": {
		Name:        "Yandex Cache",
		SearchURL:   "https://yandex.com/search/?text=url:{url}",
		Description: "Cache of the Russian engine Yandex",
	},
	"cachedview": {
		Name:        "CachedView",
		SearchURL:   "https://cachedview.com/search?url={url}",
		Description: "Aggregator searching Google, Wayback and Archive.today",
	},
	"ghostarchive": {
		Name:        "GhostArchive",
		SearchURL:   "https://ghostarchive.org/search?term={url}",
		Description: "Archive specialized in video and social media content",
	},
}

var ArchiveOrder = []string{
	"wayback", "archive_today", "google_cache",
	"bing_cache", "yandex_cache", "cachedview", "ghostarchive",
}

// ExpandTemplate substitutes the escaped value into a {query} or {url}
// URL template.
func ExpandTemplate(tmpl, value string) string {
	escaped := url.QueryEscape(value)
	s := strings.ReplaceAll(tmpl, "{query}", escaped)
	return strings.ReplaceAll(s, "{url}", escaped)
}

// SearchURL builds the outbound query URL for an engine.
// Second return is false for unknown engine ids.
func SearchURL(engineID, query string) (string, bool) {
	tmpl, ok := SearchEngineURLs[engineID]
	if !ok {
		return "", false
	}
	return ExpandTemplate(tmpl, query), true
}
