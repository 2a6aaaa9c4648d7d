package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/claude/cycleboard/internal/view"
)

// HTTPClient implements DataSource by calling the CycleBoard REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but the
// dashboard runs elsewhere (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("httpclient: decode %s: %w", path, err)
	}
	return nil
}

func (c *HTTPClient) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("httpclient: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("httpclient: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, respBody)
	}
	return nil
}

func (c *HTTPClient) Workout(ctx context.Context, day string) (view.WorkoutList, error) {
	params := url.Values{}
	if day != "" {
		params.Set("day", day)
	}
	var list view.WorkoutList
	err := c.get(ctx, "/api/v1/views/workout", params, &list)
	return list, err
}

func (c *HTTPClient) CycleBadge(ctx context.Context) (view.CycleBadge, error) {
	var badge view.CycleBadge
	err := c.get(ctx, "/api/v1/views/cycle", nil, &badge)
	return badge, err
}

func (c *HTTPClient) CoachingNotes(ctx context.Context) (view.CoachingNotes, error) {
	var notes view.CoachingNotes
	err := c.get(ctx, "/api/v1/views/notes", nil, &notes)
	return notes, err
}

func (c *HTTPClient) Recovery(ctx context.Context) (view.Recovery, error) {
	var rec view.Recovery
	err := c.get(ctx, "/api/v1/views/recovery", nil, &rec)
	return rec, err
}

func (c *HTTPClient) Progress(ctx context.Context) (view.Progress, error) {
	var p view.Progress
	err := c.get(ctx, "/api/v1/views/progress", nil, &p)
	return p, err
}

func (c *HTTPClient) Nutrition(ctx context.Context) (view.NutritionSummary, error) {
	var sum view.NutritionSummary
	err := c.get(ctx, "/api/v1/views/nutrition", nil, &sum)
	return sum, err
}

func (c *HTTPClient) CompleteExercise(ctx context.Context, day string, index int) error {
	return c.post(ctx, "/api/v1/state/complete", map[string]any{
		"day":   day,
		"index": index,
	})
}
