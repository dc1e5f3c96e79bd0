package searchserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all search tools on the given MCP server:
// web_search, social_search, archives_search, list_engines,
// list_archives_services, clear_cache.
func RegisterTools(server *mcp.Server) {
	registerWebSearch(server)
	registerSocialSearch(server)
	registerArchivesSearch(server)
	registerListEngines(server)
	registerListArchivesServices(server)
	registerClearCache(server)
}

// emptyInput is the argument type for tools that take no parameters.
type emptyInput struct{}

// textResult wraps a formatted text block as a tool result. All tools on this
// server return a single human-readable text block.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
