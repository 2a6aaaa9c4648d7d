package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultModel is the generation model used when config doesn't name one.
const DefaultModel = "gemini-3-flash-preview"

// ConnectFallbackReply is the response text carried in the chat proxy's
// error body when the upstream call fails entirely.
const ConnectFallbackReply = "Sorry, I'm having trouble connecting. Please try again in a moment!"

// EmptyReplyFallback stands in for a successful response that carries no
// candidate text.
const EmptyReplyFallback = "I'm having trouble responding right now. Please try again!"

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"

// Generator produces one assistant reply for a user message plus its
// context block. Satisfied by *GeminiClient; tests substitute fakes.
type Generator interface {
	Generate(ctx context.Context, message, contextBlock string) (string, error)
}

// GeminiClient calls the Gemini generateContent REST endpoint directly.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: GeminiClient satisfies Generator.
var _ Generator = (*GeminiClient)(nil)

// NewGeminiClient creates a client for the given API key and model.
func NewGeminiClient(apiKey, model string) *GeminiClient {
	if model == "" {
		model = DefaultModel
	}
	return &GeminiClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    geminiEndpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ErrNoAPIKey is returned when no Gemini credential is configured.
var ErrNoAPIKey = fmt.Errorf("gemini: API key not configured")

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
	Config   geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends the context block and user message as a single prompt and
// returns the first candidate's text.
func (c *GeminiClient) Generate(ctx context.Context, message, contextBlock string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{
			Text: fmt.Sprintf("%s\n\nUser question: %s", contextBlock, message),
		}}}},
		Config: geminiGenConfig{MaxOutputTokens: 1024, Temperature: 0.7},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("gemini: returned %d: %s", resp.StatusCode, detail)
	}

	var gr geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}

	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 ||
		gr.Candidates[0].Content.Parts[0].Text == "" {
		return EmptyReplyFallback, nil
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}
