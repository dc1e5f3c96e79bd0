package searchserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerListEngines(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_engines",
		Description: "List all available search engines with their details.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
		return textResult(formatEngineListing()), nil, nil
	})
}

func registerListArchivesServices(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_archives_services",
		Description: "List all available archives services with their details.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
		return textResult(formatArchiveListing()), nil, nil
	})
}
