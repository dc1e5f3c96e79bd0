package searchserver

import (
	"context"
	"strings"

	"github.com/anatolykoptev/go_websearch/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerSocialSearch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "social_search",
		Description: "Search across popular social media platforms (Twitter, Reddit, YouTube, GitHub, StackOverflow, Medium, Pinterest, TikTok, Instagram, Facebook, LinkedIn). Public content only.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.SocialSearchInput) (*mcp.CallToolResult, any, error) {
		out, err := handleSocialSearch(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		return textResult(out), nil, nil
	})
}

func handleSocialSearch(_ context.Context, input engine.SocialSearchInput) (string, error) {
	if input.Query == "" {
		return "", invalidParams("required parameter missing: query")
	}

	query, err := engine.SanitizeQuery(input.Query)
	if err != nil {
		return "", invalidParams("invalid query: %v", err)
	}

	platforms, rpcErr := resolvePlatforms(input.Platform)
	if rpcErr != nil {
		return "", rpcErr
	}

	return formatSocialSearch(query, platforms), nil
}

func resolvePlatforms(arg string) ([]string, *RPCError) {
	arg = strings.ToLower(strings.TrimSpace(arg))
	if arg == "" || arg == "all" {
		return engine.PlatformOrder, nil
	}
	if _, ok := engine.SocialPlatformURLs[arg]; ok {
		return []string{arg}, nil
	}
	return nil, invalidParams("unsupported platform: %s", arg)
}
