package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	HTTPClient      *http.Client
	BrowserClient   *BrowserClient // nil = engine fetches use HTTPClient only
	Fetcher         Fetcher        // nil = default HTTP fetcher; override for tests
	FetchTimeout    time.Duration  // total budget per engine fetch
	MaxConcurrent   int            // process-wide in-flight fetch ceiling
	MaxPerEngineCap int            // hard upper bound for max_results
}

var cfg Config

// Cfg exposes the engine configuration for the server layer.
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 10 * time.Second
	}
	if c.MaxConcurrent <= 0 {
		c.MaxConcurrent = 6
	}
	if c.MaxPerEngineCap <= 0 {
		c.MaxPerEngineCap = 50
	}
	cfg = c
	Cfg = &cfg
	initGate(cfg.MaxConcurrent)
}

// Close releases engine-owned network resources. Called on shutdown;
// in-flight fetches are abandoned.
func Close() {
	if cfg.HTTPClient != nil {
		cfg.HTTPClient.CloseIdleConnections()
	}
}
