package searchserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/anatolykoptev/go_websearch/internal/engine"
)

// Route dispatches a tool call by name to the same handlers the MCP
// registrations use. It is the programmatic entry for callers that already
// hold decoded tools/call parameters: unknown tools and bad arguments come
// back as -32602, unexpected handler failures as -32603.
func Route(ctx context.Context, tool string, args map[string]any) (string, *RPCError) {
	switch tool {
	case "web_search":
		var input engine.WebSearchInput
		if rpcErr := decodeArgs(args, &input); rpcErr != nil {
			return "", rpcErr
		}
		return finish(handleWebSearch(ctx, input))

	case "social_search":
		var input engine.SocialSearchInput
		if rpcErr := decodeArgs(args, &input); rpcErr != nil {
			return "", rpcErr
		}
		return finish(handleSocialSearch(ctx, input))

	case "archives_search":
		var input engine.ArchivesSearchInput
		if rpcErr := decodeArgs(args, &input); rpcErr != nil {
			return "", rpcErr
		}
		return finish(handleArchivesSearch(ctx, input))

	case "list_engines":
		return formatEngineListing(), nil

	case "list_archives_services":
		return formatArchiveListing(), nil

	case "clear_cache":
		return handleClearCache(), nil

	default:
		return "", invalidParams("unknown tool: %s", tool)
	}
}

// decodeArgs maps a raw argument object onto a typed tool input.
func decodeArgs(args map[string]any, out any) *RPCError {
	data, err := json.Marshal(args)
	if err != nil {
		return invalidParams("invalid arguments: %v", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return invalidParams("invalid arguments: %v", err)
	}
	return nil
}

// finish normalizes handler errors: RPCError passes through, anything else is
// an internal error, logged with context and surfaced with a generic message.
func finish(out string, err error) (string, *RPCError) {
	if err == nil {
		return out, nil
	}
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return "", rpcErr
	}
	slog.Error("tool handler failed", slog.Any("error", err))
	return "", internalError("internal error: %v", err)
}
