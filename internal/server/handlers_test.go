package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/claude/cycleboard/internal/chat"
	"github.com/claude/cycleboard/internal/live"
	"github.com/claude/cycleboard/internal/models"
	"github.com/claude/cycleboard/internal/plan"
	"github.com/claude/cycleboard/internal/state"
	"github.com/claude/cycleboard/internal/view"
)

type stubGenerator struct {
	reply string
	err   error
}

func (g *stubGenerator) Generate(ctx context.Context, message, contextBlock string) (string, error) {
	return g.reply, g.err
}

func newTestServer(t *testing.T, gen chat.Generator, upstream string) *Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := state.New(state.Seed{
		Plan:         plan.Default(),
		CyclePhase:   models.CyclePhase{Phase: "Follicular", Day: 8, Energy: "HIGH", TrainingTip: "push"},
		Notes:        models.NewCoachingNotes(plan.DefaultNotes),
		Recovery:     models.RecoveryMetrics{SleepScore: 81, SleepHours: 7.7, SleepQuality: "Excellent", BodyBattery: 23, HRVStatus: "BALANCED", RecoveryReady: true},
		CurrentWeek:  2,
		Weekdays:     plan.Weekdays(),
		MaxChatTurns: 50,
	})
	session := chat.NewSession(store, gen, chat.Profile{Name: "Lianna"}, log)
	fetcher := live.New(upstream, time.Second, store, log)
	return New(store, session, gen, fetcher, log)
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

// TestDataProxyPassThrough verifies /api/data forwards upstream JSON
// verbatim with no-store caching headers.
func TestDataProxyPassThrough(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"last_updated":"2026-01-05"}`))
	}))
	defer upstream.Close()

	s := newTestServer(t, &stubGenerator{}, upstream.URL)
	rec := doJSON(t, s, http.MethodGet, "/api/data", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"last_updated":"2026-01-05"}` {
		t.Errorf("body = %q, not passed through", got)
	}
	if cc := rec.Header().Get("Cache-Control"); !strings.Contains(cc, "no-store") {
		t.Errorf("Cache-Control = %q, want no-store", cc)
	}
}

// TestDataProxyUpstreamFailure verifies a failing upstream yields a
// structured 500 body.
func TestDataProxyUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer upstream.Close()

	s := newTestServer(t, &stubGenerator{}, upstream.URL)
	rec := doJSON(t, s, http.MethodGet, "/api/data", "")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "Failed to fetch dashboard data" {
		t.Errorf("error = %q", body["error"])
	}
}

// TestChatProxySuccess verifies /api/chat forwards message+context and
// returns the generated response.
func TestChatProxySuccess(t *testing.T) {
	s := newTestServer(t, &stubGenerator{reply: "You got this!"}, "http://unused")
	rec := doJSON(t, s, http.MethodPost, "/api/chat", `{"message":"hi","context":"ctx"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&body)
	if body["response"] != "You got this!" {
		t.Errorf("response = %q", body["response"])
	}
}

// TestChatProxyMissingMessage verifies an empty message is a 400.
func TestChatProxyMissingMessage(t *testing.T) {
	s := newTestServer(t, &stubGenerator{reply: "x"}, "http://unused")
	rec := doJSON(t, s, http.MethodPost, "/api/chat", `{"context":"ctx"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestChatProxyMissingKey verifies an unconfigured credential surfaces as a
// structured 500, matching the missing-configuration failure class.
func TestChatProxyMissingKey(t *testing.T) {
	s := newTestServer(t, &stubGenerator{err: chat.ErrNoAPIKey}, "http://unused")
	rec := doJSON(t, s, http.MethodPost, "/api/chat", `{"message":"hi"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&body)
	if body["error"] != "API key not configured" {
		t.Errorf("error = %q", body["error"])
	}
}

// TestChatProxyUpstreamFailure verifies upstream errors return the fixed
// connection-trouble text in the structured 500 body.
func TestChatProxyUpstreamFailure(t *testing.T) {
	s := newTestServer(t, &stubGenerator{err: errors.New("boom")}, "http://unused")
	rec := doJSON(t, s, http.MethodPost, "/api/chat", `{"message":"hi"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&body)
	if body["error"] != "Failed to get response" {
		t.Errorf("error = %q", body["error"])
	}
	if body["response"] != chat.ConnectFallbackReply {
		t.Errorf("response = %q, want connect fallback", body["response"])
	}
}

// TestCompleteFlow verifies the end-to-end completion scenario: complete
// Monday index 2, then the workout view marks exactly that card done and
// progress reports 1/6.
func TestCompleteFlow(t *testing.T) {
	s := newTestServer(t, &stubGenerator{}, "http://unused")

	rec := doJSON(t, s, http.MethodPost, "/api/v1/state/complete", `{"day":"Monday","index":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("complete status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/views/workout", "")
	var list view.WorkoutList
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode workout: %v", err)
	}
	if len(list.Cards) != 6 {
		t.Fatalf("cards = %d, want 6", len(list.Cards))
	}
	for i, card := range list.Cards {
		if want := i == 2; card.Done != want {
			t.Errorf("card %d done = %v, want %v", i, card.Done, want)
		}
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/views/progress", "")
	var progress view.Progress
	if err := json.NewDecoder(rec.Body).Decode(&progress); err != nil {
		t.Fatalf("decode progress: %v", err)
	}
	if progress.CompletedToday != 1 || progress.TotalToday != 6 {
		t.Errorf("progress = %d/%d, want 1/6", progress.CompletedToday, progress.TotalToday)
	}
}

// TestCompleteRejectsUnknownTarget verifies out-of-range targets are 400s.
func TestCompleteRejectsUnknownTarget(t *testing.T) {
	s := newTestServer(t, &stubGenerator{}, "http://unused")
	for _, body := range []string{
		`{"day":"Monday","index":99}`,
		`{"day":"Sunday","index":0}`,
		`{"day":"Monday","index":-1}`,
	} {
		if rec := doJSON(t, s, http.MethodPost, "/api/v1/state/complete", body); rec.Code != http.StatusBadRequest {
			t.Errorf("complete(%s) status = %d, want 400", body, rec.Code)
		}
	}
}

// TestNutritionLenient verifies the documented lenient round trip through
// the HTTP surface.
func TestNutritionLenient(t *testing.T) {
	s := newTestServer(t, &stubGenerator{}, "http://unused")
	rec := doJSON(t, s, http.MethodPost, "/api/v1/state/nutrition",
		`{"calories":"500","protein":"40","carbs":"abc","fat":""}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/views/nutrition", "")
	var sum view.NutritionSummary
	if err := json.NewDecoder(rec.Body).Decode(&sum); err != nil {
		t.Fatalf("decode: %v", err)
	}
	wantValues := map[string]int{"Calories": 500, "Protein": 40, "Carbs": 0, "Fat": 0}
	for _, m := range sum.Macros {
		if m.Value != wantValues[m.Name] {
			t.Errorf("%s = %d, want %d", m.Name, m.Value, wantValues[m.Name])
		}
	}
}

// TestSelectDayEndpoint verifies switching days returns the affected views
// and rejects weekends.
func TestSelectDayEndpoint(t *testing.T) {
	s := newTestServer(t, &stubGenerator{}, "http://unused")

	rec := doJSON(t, s, http.MethodPost, "/api/v1/state/day", `{"day":"Thursday"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Workout view.WorkoutList `json:"workout"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Workout.Day != "Thursday" {
		t.Errorf("workout day = %s, want Thursday", resp.Workout.Day)
	}

	if rec := doJSON(t, s, http.MethodPost, "/api/v1/state/day", `{"day":"Sunday"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("Sunday status = %d, want 400", rec.Code)
	}
}

// TestSetTabEndpoint verifies tab switching and rejection of unknown tabs.
func TestSetTabEndpoint(t *testing.T) {
	s := newTestServer(t, &stubGenerator{}, "http://unused")
	if rec := doJSON(t, s, http.MethodPost, "/api/v1/state/tab", `{"tab":"recovery"}`); rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec := doJSON(t, s, http.MethodPost, "/api/v1/state/tab", `{"tab":"bogus"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestChatSessionEndpoint verifies the coach session round trip appends a
// user and assistant entry, with the fallback on upstream failure.
func TestChatSessionEndpoint(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream 500")}
	s := newTestServer(t, gen, "http://unused")

	rec := doJSON(t, s, http.MethodPost, "/api/v1/chat/messages", `{"message":"help"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Reply  models.ChatMessage `json:"reply"`
		Typing bool               `json:"typing"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Reply.Text != chat.FallbackReply {
		t.Errorf("reply = %q, want fallback", resp.Reply.Text)
	}
	if resp.Typing {
		t.Error("typing still true after send")
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/chat/transcript", "")
	var transcript struct {
		Messages []models.ChatMessage `json:"messages"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&transcript); err != nil {
		t.Fatalf("decode transcript: %v", err)
	}
	if len(transcript.Messages) != 2 {
		t.Errorf("transcript = %d entries, want 2", len(transcript.Messages))
	}
}

// TestLogSetEndpoint verifies logging a set marks the exercise done and
// returns a toast.
func TestLogSetEndpoint(t *testing.T) {
	s := newTestServer(t, &stubGenerator{}, "http://unused")
	rec := doJSON(t, s, http.MethodPost, "/api/v1/state/log",
		`{"day":"Monday","index":0,"weight":"145 lbs","reps":"10","rpe":"8"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Toast   string           `json:"toast"`
		Workout view.WorkoutList `json:"workout"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Toast == "" {
		t.Error("missing toast")
	}
	if !resp.Workout.Cards[0].Done {
		t.Error("logged card not marked done")
	}
}

// TestCORSPreflight verifies OPTIONS requests short-circuit with CORS
// headers.
func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, &stubGenerator{}, "http://unused")
	rec := doJSON(t, s, http.MethodOptions, "/api/data", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS origin header")
	}
}
