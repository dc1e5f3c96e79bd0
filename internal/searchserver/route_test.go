package searchserver

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_websearch/internal/engine"
)

// stubFetcher serves one canned page for every engine, failing for URLs that
// contain failFor.
type stubFetcher struct {
	page    string
	failFor string
}

func (s stubFetcher) Fetch(_ context.Context, rawURL string) (string, error) {
	if s.failFor != "" && strings.Contains(rawURL, s.failFor) {
		return "", errors.New("connection reset")
	}
	return s.page, nil
}

const stubPage = `<html><body>
<div><a href="http://example.com/hit">a result title long enough</a></div>
</body></html>`

func setupServer(t *testing.T, f engine.Fetcher) {
	t.Helper()
	engine.Init(engine.Config{Fetcher: f})
	require.NoError(t, engine.InitCache(50))
}

func TestRouteUnknownTool(t *testing.T) {
	_, rpcErr := Route(context.Background(), "doesnotexist", nil)
	require.NotNil(t, rpcErr)
	assert.Equal(t, CodeInvalidParams, rpcErr.Code)
	assert.Contains(t, rpcErr.Message, "unknown tool")
}

func TestRouteWebSearch(t *testing.T) {
	setupServer(t, stubFetcher{page: stubPage})
	ctx := context.Background()

	t.Run("missing query", func(t *testing.T) {
		_, rpcErr := Route(ctx, "web_search", map[string]any{})
		require.NotNil(t, rpcErr)
		assert.Equal(t, CodeInvalidParams, rpcErr.Code)
		assert.Contains(t, rpcErr.Message, "query")
	})

	t.Run("unsupported engine", func(t *testing.T) {
		_, rpcErr := Route(ctx, "web_search", map[string]any{
			"query":  "golang",
			"engine": "doesnotexist",
		})
		require.NotNil(t, rpcErr)
		assert.Equal(t, CodeInvalidParams, rpcErr.Code)
		assert.Contains(t, rpcErr.Message, "unsupported search engine")
	})

	t.Run("wrong argument type", func(t *testing.T) {
		_, rpcErr := Route(ctx, "web_search", map[string]any{"query": 12})
		require.NotNil(t, rpcErr)
		assert.Equal(t, CodeInvalidParams, rpcErr.Code)
	})

	t.Run("negative max_results", func(t *testing.T) {
		_, rpcErr := Route(ctx, "web_search", map[string]any{
			"query":       "golang",
			"max_results": -1,
		})
		require.NotNil(t, rpcErr)
		assert.Equal(t, CodeInvalidParams, rpcErr.Code)
	})

	t.Run("single engine", func(t *testing.T) {
		out, rpcErr := Route(ctx, "web_search", map[string]any{
			"query":  "golang concurrency",
			"engine": "ecosia",
		})
		require.Nil(t, rpcErr)
		assert.Contains(t, out, "# Search Results for 'golang concurrency'")
		assert.Contains(t, out, "Results from Ecosia")
		assert.Contains(t, out, "http://example.com/hit")
	})

	t.Run("markup stripped before dispatch", func(t *testing.T) {
		out, rpcErr := Route(ctx, "web_search", map[string]any{
			"query":  "<b>golang</b>",
			"engine": "ecosia",
		})
		require.Nil(t, rpcErr)
		assert.Contains(t, out, "'golang'")
		assert.NotContains(t, out, "<b>")
	})
}

func TestRouteWebSearchPartialFailure(t *testing.T) {
	setupServer(t, stubFetcher{page: stubPage, failFor: "mojeek"})

	out, rpcErr := Route(context.Background(), "web_search", map[string]any{"query": "partial"})
	require.Nil(t, rpcErr, "per-engine failures must not fail the call")
	assert.Contains(t, out, "**Failed Engines**: mojeek")
	assert.Contains(t, out, "5/6 successful")
}

func TestRouteSocialSearch(t *testing.T) {
	setupServer(t, stubFetcher{page: stubPage})
	ctx := context.Background()

	t.Run("missing query", func(t *testing.T) {
		_, rpcErr := Route(ctx, "social_search", map[string]any{})
		require.NotNil(t, rpcErr)
		assert.Equal(t, CodeInvalidParams, rpcErr.Code)
	})

	t.Run("unsupported platform", func(t *testing.T) {
		_, rpcErr := Route(ctx, "social_search", map[string]any{
			"query":    "golang",
			"platform": "myspace",
		})
		require.NotNil(t, rpcErr)
		assert.Equal(t, CodeInvalidParams, rpcErr.Code)
		assert.Contains(t, rpcErr.Message, "unsupported platform")
	})

	t.Run("single platform link", func(t *testing.T) {
		out, rpcErr := Route(ctx, "social_search", map[string]any{
			"query":    "go generics",
			"platform": "github",
		})
		require.Nil(t, rpcErr)
		assert.Contains(t, out, "https://github.com/search?q=go+generics&type=repositories")
	})

	t.Run("all platforms", func(t *testing.T) {
		out, rpcErr := Route(ctx, "social_search", map[string]any{"query": "golang"})
		require.Nil(t, rpcErr)
		for _, platform := range engine.PlatformOrder {
			assert.Contains(t, out, "**"+platform+"**: ")
		}
	})
}

func TestRouteArchivesSearch(t *testing.T) {
	setupServer(t, stubFetcher{page: stubPage})
	ctx := context.Background()

	t.Run("missing url", func(t *testing.T) {
		_, rpcErr := Route(ctx, "archives_search", map[string]any{})
		require.NotNil(t, rpcErr)
		assert.Equal(t, CodeInvalidParams, rpcErr.Code)
	})

	t.Run("rejected scheme", func(t *testing.T) {
		_, rpcErr := Route(ctx, "archives_search", map[string]any{"url": "ftp://x.com"})
		require.NotNil(t, rpcErr)
		assert.Equal(t, CodeInvalidParams, rpcErr.Code)
		assert.Contains(t, rpcErr.Message, "invalid URL")
	})

	t.Run("unsupported service", func(t *testing.T) {
		_, rpcErr := Route(ctx, "archives_search", map[string]any{
			"url":     "https://x.com",
			"service": "timecapsule",
		})
		require.NotNil(t, rpcErr)
		assert.Equal(t, CodeInvalidParams, rpcErr.Code)
	})

	t.Run("all services without availability check", func(t *testing.T) {
		out, rpcErr := Route(ctx, "archives_search", map[string]any{"url": "https://x.com/page"})
		require.Nil(t, rpcErr)
		assert.Contains(t, out, "**Original URL**: https://x.com/page")
		assert.Contains(t, out, "Wayback Machine (Internet Archive)")
		assert.Contains(t, out, "https://archive.ph/https%3A%2F%2Fx.com%2Fpage")
		assert.NotContains(t, out, "Wayback Machine Status")
	})
}

func TestRouteListings(t *testing.T) {
	out, rpcErr := Route(context.Background(), "list_engines", nil)
	require.Nil(t, rpcErr)
	for _, eng := range engine.EngineOrder {
		assert.Contains(t, out, eng)
	}

	out, rpcErr = Route(context.Background(), "list_archives_services", nil)
	require.Nil(t, rpcErr)
	for _, id := range engine.ArchiveOrder {
		assert.Contains(t, out, "`"+id+"`")
	}
}

func TestRouteClearCache(t *testing.T) {
	setupServer(t, stubFetcher{page: stubPage})

	out, rpcErr := Route(context.Background(), "clear_cache", nil)
	require.Nil(t, rpcErr)
	assert.Contains(t, out, "cache cleared")
}
