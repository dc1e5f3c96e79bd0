package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
)

// Wayback endpoints. Package vars so archive tests can point them at a local
// server.
var (
	waybackAPIBase   = "https://archive.org"
	waybackStatsBase = "https://web.archive.org"
)

// WaybackStatus summarizes Wayback Machine coverage for one URL.
type WaybackStatus struct {
	Snapshots       int
	FirstTimestamp  string
	LatestTimestamp string
	LatestURL       string
}

type waybackAvailableResponse struct {
	ArchivedSnapshots struct {
		Closest *struct {
			URL       string `json:"url"`
			Timestamp string `json:"timestamp"`
			Status    string `json:"status"`
			Available bool   `json:"available"`
		} `json:"closest"`
	} `json:"archived_snapshots"`
}

type waybackSparklineResponse struct {
	Years   map[string][]int `json:"years"`
	FirstTS string           `json:"first_ts"`
	LastTS  string           `json:"last_ts"`
}

// CheckWaybackAvailability queries the Wayback availability API for url.
// Returns nil without error when no snapshot exists. The sparkline stats call
// is best-effort; on failure the status degrades to the closest snapshot only.
func CheckWaybackAvailability(ctx context.Context, rawURL string) (*WaybackStatus, error) {
	metrics.WaybackRequests.Add(1)

	apiURL := waybackAPIBase + "/wayback/available?url=" + url.QueryEscape(rawURL)
	var avail waybackAvailableResponse
	if err := getJSON(ctx, apiURL, &avail); err != nil {
		return nil, err
	}

	closest := avail.ArchivedSnapshots.Closest
	if closest == nil {
		return nil, nil
	}

	status := &WaybackStatus{
		Snapshots:       1,
		FirstTimestamp:  FormatWaybackTimestamp(closest.Timestamp),
		LatestTimestamp: FormatWaybackTimestamp(closest.Timestamp),
		LatestURL:       closest.URL,
	}

	statsURL := waybackStatsBase + "/__wb/sparkline?url=" + url.QueryEscape(rawURL) + "&collection=web&output=json"
	var stats waybackSparklineResponse
	if err := getJSON(ctx, statsURL, &stats); err != nil {
		slog.Debug("wayback sparkline unavailable", slog.Any("error", err))
		return status, nil
	}

	total := 0
	for _, months := range stats.Years {
		for _, n := range months {
			total += n
		}
	}
	if total > 0 {
		status.Snapshots = total
	}
	if stats.FirstTS != "" {
		status.FirstTimestamp = FormatWaybackTimestamp(stats.FirstTS)
	}
	if stats.LastTS != "" {
		status.LatestTimestamp = FormatWaybackTimestamp(stats.LastTS)
	}
	return status, nil
}

// FormatWaybackTimestamp renders a Wayback YYYYMMDDhhmmss stamp as a readable
// date. Short or unknown stamps pass through unchanged.
func FormatWaybackTimestamp(ts string) string {
	if ts == "" || ts == "Unknown" {
		return "Unknown"
	}
	if len(ts) >= 14 {
		return fmt.Sprintf("%s-%s-%s %s:%s:%s UTC", ts[0:4], ts[4:6], ts[6:8], ts[8:10], ts[10:12], ts[12:14])
	}
	if len(ts) >= 8 {
		return fmt.Sprintf("%s-%s-%s", ts[0:4], ts[4:6], ts[6:8])
	}
	return ts
}

func getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", RandomUserAgent())
	req.Header.Set("Accept", "application/json")

	resp, err := cfg.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wayback api status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
