package searchserver

import (
	"context"

	"github.com/anatolykoptev/go_websearch/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerClearCache(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "clear_cache",
		Description: "Clear the search results cache.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
		return textResult(handleClearCache()), nil, nil
	})
}

func handleClearCache() string {
	engine.ClearCache()
	return "Search cache cleared successfully"
}
