package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/semaphore"
)

// gate bounds in-flight search units process-wide. Concurrent SearchParallel
// calls contend for the same slots.
var gate *semaphore.Weighted

func initGate(n int) {
	gate = semaphore.NewWeighted(int64(n))
}

// SearchParallel runs one search unit per engine concurrently and aggregates
// the outcome. Engines must be distinct, sanitized ids; query must already be
// sanitized. A failing unit is recorded in Failed and never aborts siblings.
// Results preserve the caller's engine order, not completion order.
func SearchParallel(ctx context.Context, query string, engines []string, maxPerEngine int) SearchOutcome {
	timestamp := time.Now().Format(time.RFC3339)

	metrics.SearchRequests.Add(1)
	slog.Info("starting parallel search",
		slog.Int("engines", len(engines)),
		slog.Int("max_per_engine", maxPerEngine),
	)

	type unitResult struct {
		engine  string
		results []Result
		err     error
	}

	ch := make(chan unitResult, len(engines))
	for _, eng := range engines {
		go func(eng string) {
			results, err := searchWithCache(ctx, eng, query, maxPerEngine, timestamp)
			ch <- unitResult{engine: eng, results: results, err: err}
		}(eng)
	}

	byEngine := make(map[string]unitResult, len(engines))
	for range engines {
		r := <-ch
		byEngine[r.engine] = r
	}

	out := SearchOutcome{Timestamp: timestamp}
	for _, eng := range engines {
		r := byEngine[eng]
		if r.err != nil {
			slog.Warn("search failed", slog.String("engine", eng), slog.Any("error", r.err))
			out.Failed = append(out.Failed, eng)
			continue
		}
		slog.Info("engine results", slog.String("engine", eng), slog.Int("count", len(r.results)))
		out.Results = append(out.Results, r.results...)
		out.Succeeded = append(out.Succeeded, eng)
	}
	return out
}

// searchWithCache is one search unit: acquire an admission slot, consult the
// cache, fetch+extract on miss. The cache stores the full fetched list; the
// per-call limit is applied only to the returned slice, so calls with
// different limits share one entry.
func searchWithCache(ctx context.Context, engineID, query string, maxPerEngine int, timestamp string) ([]Result, error) {
	if err := gate.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer gate.Release(1)

	key := CacheKey(engineID, query)
	if results, _, ok := CacheGet(key); ok {
		slog.Debug("results from cache", slog.String("engine", engineID))
		return truncateResults(results, maxPerEngine), nil
	}

	results, err := searchEngine(ctx, engineID, query)
	if err != nil {
		return nil, err
	}
	CacheSet(key, results, timestamp)
	return truncateResults(results, maxPerEngine), nil
}

// searchEngine fetches an engine's result page and extracts tagged records.
func searchEngine(ctx context.Context, engineID, query string) ([]Result, error) {
	searchURL, ok := SearchURL(engineID, query)
	if !ok {
		return nil, fmt.Errorf("%w: unknown engine %q", ErrFetch, engineID)
	}

	raw, err := fetcher().Fetch(ctx, searchURL)
	if err != nil {
		metrics.FetchErrors.Add(1)
		return nil, err
	}

	results, err := Extract(raw, engineID)
	if err != nil {
		return nil, err
	}

	for i := range results {
		results[i].Engine = engineID
	}
	return results, nil
}

func truncateResults(results []Result, limit int) []Result {
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}
