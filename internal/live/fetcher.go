// Package live fetches the upstream dashboard feed and overlays it onto the
// state store. Fetching is best-effort: any transport, status, or decode
// failure leaves the store untouched and the session keeps running on seed
// or previously merged data.
package live

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/claude/cycleboard/internal/models"
	"github.com/claude/cycleboard/internal/state"
)

// Fetcher pulls the live feed and applies it through the store's normal
// mutation path, so feed-originated updates obey the same ordering rules
// as user actions.
type Fetcher struct {
	dataURL    string
	httpClient *http.Client
	store      *state.Store
	log        *slog.Logger
}

// New creates a Fetcher for the given feed URL.
func New(dataURL string, timeout time.Duration, store *state.Store, log *slog.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Fetcher{
		dataURL:    dataURL,
		httpClient: &http.Client{Timeout: timeout},
		store:      store,
		log:        log,
	}
}

// FetchOnce retrieves and decodes the feed without applying it.
func (f *Fetcher) FetchOnce(ctx context.Context) (*models.LiveData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.dataURL, nil)
	if err != nil {
		return nil, fmt.Errorf("live: create request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("live: fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("live: feed returned %d: %s", resp.StatusCode, body)
	}

	var ld models.LiveData
	if err := json.NewDecoder(resp.Body).Decode(&ld); err != nil {
		return nil, fmt.Errorf("live: decode feed: %w", err)
	}
	return &ld, nil
}

// FetchRaw retrieves the feed body without decoding it. Used by the
// /api/data pass-through proxy, which forwards upstream JSON untouched.
func (f *Fetcher) FetchRaw(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.dataURL, nil)
	if err != nil {
		return nil, fmt.Errorf("live: create request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("live: fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("live: feed returned %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("live: read body: %w", err)
	}
	return body, nil
}

// Refresh fetches the feed and overlays it onto the store. Failures are
// logged and swallowed; the previous state stays in effect.
func (f *Fetcher) Refresh(ctx context.Context) {
	ld, err := f.FetchOnce(ctx)
	if err != nil {
		f.log.Warn("live data refresh failed, keeping current data", "error", err)
		return
	}
	f.store.ApplyLiveData(ld)
	f.log.Info("live data applied", "last_updated", ld.LastUpdated)
}

// Run refreshes once immediately, then on every interval tick until the
// context is cancelled. Intended to run on its own goroutine from main.
func (f *Fetcher) Run(ctx context.Context, interval time.Duration) {
	f.Refresh(ctx)
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.Refresh(ctx)
		}
	}
}
