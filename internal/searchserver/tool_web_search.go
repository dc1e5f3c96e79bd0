package searchserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_websearch/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerWebSearch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "web_search",
		Description: fmt.Sprintf("Search the web using %d privacy-focused search engines in parallel. By default searches ALL engines simultaneously and returns up to %d results from each. Returns titles, snippets, and URLs.", len(engine.EngineOrder), engine.DefaultMaxResults),
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.WebSearchInput) (*mcp.CallToolResult, any, error) {
		out, err := handleWebSearch(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		return textResult(out), nil, nil
	})
}

func handleWebSearch(ctx context.Context, input engine.WebSearchInput) (string, error) {
	if input.Query == "" {
		return "", invalidParams("required parameter missing: query")
	}

	query, err := engine.SanitizeQuery(input.Query)
	if err != nil {
		return "", invalidParams("invalid query: %v", err)
	}

	maxResults := input.MaxResults
	switch {
	case maxResults == 0:
		maxResults = engine.DefaultMaxResults
	case maxResults < 0:
		return "", invalidParams("max_results must be between 1 and %d", engine.Cfg.MaxPerEngineCap)
	case maxResults > engine.Cfg.MaxPerEngineCap:
		maxResults = engine.Cfg.MaxPerEngineCap
	}

	engines, rpcErr := resolveEngines(input.Engine)
	if rpcErr != nil {
		return "", rpcErr
	}

	outcome := engine.SearchParallel(ctx, query, engines, maxResults)
	return formatWebSearchResults(query, engines, outcome), nil
}

// resolveEngines expands an engine argument into the ordered engine list:
// empty or "all" means every configured engine.
func resolveEngines(arg string) ([]string, *RPCError) {
	arg = strings.ToLower(strings.TrimSpace(arg))
	if arg == "" || arg == "all" {
		return engine.EngineOrder, nil
	}
	if _, ok := engine.SearchEngineURLs[arg]; ok {
		return []string{arg}, nil
	}
	return nil, invalidParams("unsupported search engine: %s", arg)
}
