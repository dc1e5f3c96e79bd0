package searchserver

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/anatolykoptev/go_websearch/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerArchivesSearch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "archives_search",
		Description: fmt.Sprintf("Search for archived versions of a URL across %d web archive services (Wayback Machine, archive.today, Google Cache, Bing Cache, Yandex Cache, CachedView, GhostArchive). Useful for accessing removed content or viewing historical versions.", len(engine.ArchiveOrder)),
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.ArchivesSearchInput) (*mcp.CallToolResult, any, error) {
		out, err := handleArchivesSearch(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		return textResult(out), nil, nil
	})
}

func handleArchivesSearch(ctx context.Context, input engine.ArchivesSearchInput) (string, error) {
	if input.URL == "" {
		return "", invalidParams("required parameter missing: url")
	}

	targetURL, err := engine.ValidateURL(input.URL)
	if err != nil {
		return "", invalidParams("invalid URL: %v", err)
	}

	services, rpcErr := resolveArchiveServices(input.Service)
	if rpcErr != nil {
		return "", rpcErr
	}

	var wayback *engine.WaybackStatus
	checked := false
	if input.CheckAvailability && slices.Contains(services, "wayback") {
		checked = true
		wayback, err = engine.CheckWaybackAvailability(ctx, targetURL)
		if err != nil {
			// Availability is an enrichment; the archive links still stand.
			slog.Warn("wayback availability check failed", slog.Any("error", err))
			checked = false
		}
	}

	return formatArchiveResults(targetURL, services, wayback, checked), nil
}

func resolveArchiveServices(arg string) ([]string, *RPCError) {
	arg = strings.ToLower(strings.TrimSpace(arg))
	if arg == "" || arg == "all" {
		return engine.ArchiveOrder, nil
	}
	if _, ok := engine.ArchiveServices[arg]; ok {
		return []string{arg}, nil
	}
	return nil, invalidParams("unsupported archives service: %s", arg)
}
