// go_websearch — multi-engine web search MCP server.
//
// Exposes six MCP tools: web_search, social_search, archives_search,
// list_engines, list_archives_services, clear_cache.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	stealth "github.com/anatolykoptev/go-stealth"
	"github.com/anatolykoptev/go-stealth/proxypool"
	"github.com/anatolykoptev/go_websearch/internal/engine"
	"github.com/anatolykoptev/go_websearch/internal/searchserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8892")
)

func main() {
	initEngine()
	defer engine.Close()

	slog.Info("starting go_websearch",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_websearch",
		Version: version,
	}, nil)

	searchserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 6))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_websearch",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	fetchTimeout := env.Duration("FETCH_TIMEOUT", 10*time.Second)

	c := engine.Config{
		FetchTimeout:    fetchTimeout,
		MaxConcurrent:   env.Int("MAX_CONCURRENT_SEARCHES", 6),
		MaxPerEngineCap: env.Int("MAX_RESULTS_CAP", 50),
		HTTPClient: &http.Client{
			Timeout: fetchTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	var opts []stealth.ClientOption
	opts = append(opts, stealth.WithTimeout(int(fetchTimeout/time.Second)))

	if apiKey := env.Str("WEBSHARE_API_KEY", ""); apiKey != "" {
		pool, err := proxypool.NewWebshare(apiKey)
		if err != nil {
			slog.Warn("proxy pool init failed, running without proxy", slog.Any("error", err))
		} else {
			opts = append(opts, stealth.WithProxyPool(pool))
			slog.Info("proxy pool initialized", slog.Int("proxies", pool.Len()))
		}
	}

	bc, err := stealth.NewClient(opts...)
	if err != nil {
		slog.Warn("stealth client init failed, engine fetches use plain HTTP", slog.Any("error", err))
	} else {
		c.BrowserClient = bc
		slog.Info("stealth browser client initialized")
	}

	engine.Init(c)

	if err := engine.InitCache(env.Int("CACHE_MAX_ENTRIES", engine.DefaultCacheEntries)); err != nil {
		slog.Error("cache init failed", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("search server initialized",
		slog.Int("engines", len(engine.EngineOrder)),
		slog.Int("archive_services", len(engine.ArchiveOrder)),
	)
}
