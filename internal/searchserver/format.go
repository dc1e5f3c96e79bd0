package searchserver

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/anatolykoptev/go_websearch/internal/engine"
)

var titleCaser = cases.Title(language.English)

// formatWebSearchResults renders one dispatch outcome as a single text block,
// grouped by engine in the order the engines were requested.
func formatWebSearchResults(query string, requested []string, out engine.SearchOutcome) string {
	var sb strings.Builder

	if len(out.Results) == 0 {
		fmt.Fprintf(&sb, "No results found for: %s\n\n", query)
		if len(out.Failed) > 0 {
			fmt.Fprintf(&sb, "**Failed Engines**: %s\n", strings.Join(out.Failed, ", "))
		}
		return sb.String()
	}

	fmt.Fprintf(&sb, "# Search Results for '%s'\n\n", query)
	fmt.Fprintf(&sb, "**Engines Used**: %s (%d/%d successful)\n",
		strings.Join(out.Succeeded, ", "), len(out.Succeeded), len(requested))
	if len(out.Failed) > 0 {
		fmt.Fprintf(&sb, "**Failed Engines**: %s\n", strings.Join(out.Failed, ", "))
	}
	fmt.Fprintf(&sb, "**Total Results**: %d\n", len(out.Results))
	fmt.Fprintf(&sb, "**Timestamp**: %s\n\n", out.Timestamp)

	byEngine := make(map[string][]engine.Result)
	for _, r := range out.Results {
		byEngine[r.Engine] = append(byEngine[r.Engine], r)
	}

	for _, eng := range out.Succeeded {
		results := byEngine[eng]
		if len(results) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "## Results from %s (%d results)\n\n", titleCaser.String(eng), len(results))
		for i, r := range results {
			fmt.Fprintf(&sb, "### %d. %s\n", i+1, r.Title)
			fmt.Fprintf(&sb, "**URL**: %s\n", r.URL)
			if r.Snippet != "" {
				fmt.Fprintf(&sb, "**Snippet**: %s\n", r.Snippet)
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// formatSocialSearch renders direct platform search links.
func formatSocialSearch(query string, platforms []string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Social Search: '%s'\n\n", query)
	fmt.Fprintf(&sb, "**Platforms (%d)**: %s\n\n", len(platforms), strings.Join(platforms, ", "))

	for _, platform := range platforms {
		searchURL := engine.ExpandTemplate(engine.SocialPlatformURLs[platform], query)
		fmt.Fprintf(&sb, "**%s**: %s\n", platform, searchURL)
	}

	sb.WriteString("\n*Note: Direct URLs for browser use. Automated scraping may require authentication.*\n")
	return sb.String()
}

// formatArchiveResults renders archive lookup links for a URL, with Wayback
// availability data when it was checked.
func formatArchiveResults(targetURL string, services []string, wayback *engine.WaybackStatus, checked bool) string {
	var sb strings.Builder

	sb.WriteString("# Archived Versions of URL\n\n")
	fmt.Fprintf(&sb, "**Original URL**: %s\n", targetURL)
	fmt.Fprintf(&sb, "**Services Checked (%d)**: %s\n\n", len(services), strings.Join(services, ", "))

	if wayback != nil {
		fmt.Fprintf(&sb, "**Wayback Machine Status**: %d snapshots available\n", wayback.Snapshots)
		fmt.Fprintf(&sb, "**First Snapshot**: %s\n", wayback.FirstTimestamp)
		fmt.Fprintf(&sb, "**Latest Snapshot**: %s\n", wayback.LatestTimestamp)
		fmt.Fprintf(&sb, "**Latest URL**: %s\n\n", wayback.LatestURL)
	} else if checked {
		sb.WriteString("**Wayback Machine Status**: No snapshots found\n\n")
	}

	sb.WriteString("## Available Web Archives\n\n")

	for _, id := range services {
		svc := engine.ArchiveServices[id]
		fmt.Fprintf(&sb, "### %s\n", svc.Name)
		fmt.Fprintf(&sb, "**Description**: %s\n", svc.Description)

		switch id {
		case "wayback":
			fmt.Fprintf(&sb, "**Browse All Snapshots**: %s\n", engine.ExpandTemplate(svc.SearchURL, targetURL))
			if wayback != nil && wayback.LatestURL != "" {
				fmt.Fprintf(&sb, "**Latest Snapshot**: %s\n", wayback.LatestURL)
			}
			fmt.Fprintf(&sb, "**API Check**: %s\n", engine.ExpandTemplate(svc.APIURL, targetURL))
		case "archive_today":
			fmt.Fprintf(&sb, "**Search Archives**: %s\n", engine.ExpandTemplate(svc.SearchURL, targetURL))
			fmt.Fprintf(&sb, "**Create New Archive**: %s\n", engine.ExpandTemplate(svc.SaveURL, targetURL))
		default:
			fmt.Fprintf(&sb, "**Access Cache**: %s\n", engine.ExpandTemplate(svc.SearchURL, targetURL))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Usage Tips\n\n")
	sb.WriteString("- **Wayback Machine**: Best for comprehensive historical archives (1996-present)\n")
	sb.WriteString("- **archive.today**: Creates permanent, immutable snapshots on demand\n")
	sb.WriteString("- **Google/Bing Cache**: Temporary caches, updated frequently but may disappear\n")
	sb.WriteString("- **CachedView**: Aggregator that searches multiple sources automatically\n")
	sb.WriteString("- **GhostArchive**: Specialized for social media and video content\n")
	sb.WriteString("\n*Note: Archive availability varies by service and content age. Some services may require CAPTCHA verification.*\n")

	return sb.String()
}

// formatEngineListing renders the static engine catalog.
func formatEngineListing() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Available Privacy-Focused Search Engines (%d total)\n\n", len(engine.EngineOrder))
	sb.WriteString("**Default Behavior**: Searches ALL engines in parallel\n\n")

	categories := []struct {
		name    string
		engines []string
	}{
		{"Popular Privacy Engines", []string{"duckduckgo", "brave", "startpage", "ecosia"}},
		{"Independent Engines", []string{"mojeek"}},
		{"International", []string{"yandex"}},
	}

	for _, cat := range categories {
		fmt.Fprintf(&sb, "## %s\n", cat.name)
		for _, eng := range cat.engines {
			if tmpl, ok := engine.SearchEngineURLs[eng]; ok {
				fmt.Fprintf(&sb, "- **%s**: `%s`\n", eng, tmpl)
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Usage\n")
	sb.WriteString("- By default, `web_search` searches ALL engines in parallel\n")
	sb.WriteString("- Use `engine` parameter to search a specific engine\n")
	fmt.Fprintf(&sb, "- When using 'all', returns up to %d results from each engine\n", engine.DefaultMaxResults)
	sb.WriteString("- Parallel execution significantly speeds up multi-engine searches\n")

	return sb.String()
}

// formatArchiveListing renders the static archive-service catalog.
func formatArchiveListing() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Available Archives Services (%d total)\n\n", len(engine.ArchiveOrder))
	sb.WriteString("These services store archived versions of web pages.\n\n")

	categories := []struct {
		name     string
		services []string
	}{
		{"Long-term Archives", []string{"wayback", "archive_today", "ghostarchive"}},
		{"Search Engine Caches", []string{"google_cache", "bing_cache", "yandex_cache"}},
		{"Aggregators", []string{"cachedview"}},
	}

	for _, cat := range categories {
		fmt.Fprintf(&sb, "## %s\n\n", cat.name)
		for _, id := range cat.services {
			svc, ok := engine.ArchiveServices[id]
			if !ok {
				continue
			}
			fmt.Fprintf(&sb, "### %s\n", svc.Name)
			fmt.Fprintf(&sb, "%s\n", svc.Description)
			fmt.Fprintf(&sb, "**Service ID**: `%s`\n\n", id)
		}
	}

	sb.WriteString("## Key Features by Service\n\n")
	sb.WriteString("**Wayback Machine (wayback)**: 800+ billion pages archived since 1996\n")
	sb.WriteString("**archive.today**: On-demand archiving with permanent snapshots\n")
	sb.WriteString("**Google Cache**: Temporary cache updated regularly\n")
	sb.WriteString("**CachedView**: Meta-search across multiple archives\n")
	sb.WriteString("**GhostArchive**: Specialized in social media and video content\n")

	return sb.String()
}
