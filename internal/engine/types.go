package engine

// --- Core search types ---

// Result is a single search hit produced by one engine's extractor.
// Immutable once produced.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
	Engine  string `json:"engine"`
}

// SearchOutcome is the aggregate of one SearchParallel dispatch.
// Results are grouped by engine in the caller's engine order.
// Timestamp is assigned once at dispatch start and shared by the whole call.
type SearchOutcome struct {
	Results   []Result
	Succeeded []string
	Failed    []string
	Timestamp string
}

// --- Tool input types ---

type WebSearchInput struct {
	Query      string `json:"query" jsonschema:"Search query (max 500 characters)"`
	Engine     string `json:"engine,omitempty" jsonschema:"Search engine to use, or 'all' to search across all engines in parallel (default: all)"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"Maximum results per engine, 1-50 (default: 20)"`
}

type SocialSearchInput struct {
	Query    string `json:"query" jsonschema:"Search query (max 500 characters)"`
	Platform string `json:"platform,omitempty" jsonschema:"Social platform to search, or 'all' for all platforms (default: all)"`
}

type ArchivesSearchInput struct {
	URL               string `json:"url" jsonschema:"Complete URL to search in archives (must include http:// or https://)"`
	Service           string `json:"service,omitempty" jsonschema:"Archives service to use, or 'all' to check all services (default: all)"`
	CheckAvailability bool   `json:"check_availability,omitempty" jsonschema:"For Wayback Machine, check the API to verify archives exist (default: false)"`
}
