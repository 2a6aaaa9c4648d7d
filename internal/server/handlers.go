package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/claude/cycleboard/internal/chat"
	"github.com/claude/cycleboard/internal/models"
	"github.com/claude/cycleboard/internal/view"
)

// handleData proxies the upstream feed verbatim. Fetching through the
// server avoids CORS and stale-cache issues with raw repository URLs.
func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	body, err := s.fetcher.FetchRaw(r.Context())
	if err != nil {
		s.log.Error("data proxy fetch failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to fetch dashboard data",
			"message": err.Error(),
		})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// handleChatProxy forwards {message, context} to the generation API and
// returns {response}. This is the stateless pass-through used by the hosted
// page; the stateful coach session lives under /api/v1/chat.
func (s *Server) handleChatProxy(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
		Context string `json:"context"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Message == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Message is required"})
		return
	}

	reply, err := s.gen.Generate(r.Context(), req.Message, req.Context)
	if err != nil {
		if errors.Is(err, chat.ErrNoAPIKey) {
			s.log.Error("chat proxy: missing credential")
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "API key not configured"})
			return
		}
		s.log.Error("chat proxy upstream failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":    "Failed to get response",
			"response": chat.ConnectFallbackReply,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"response": reply})
}

func (s *Server) handleViewCycle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, view.RenderCycleBadge(s.store.Snapshot()))
}

func (s *Server) handleViewDays(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, view.RenderDaySelector(s.store.Snapshot(), time.Now()))
}

func (s *Server) handleViewNotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, view.RenderCoachingNotes(s.store.Snapshot()))
}

func (s *Server) handleViewWorkout(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Snapshot()
	// An explicit ?day= renders that day without moving the selection.
	if day := r.URL.Query().Get("day"); day != "" {
		snap.SelectedDay = day
	}
	writeJSON(w, http.StatusOK, view.RenderWorkoutList(snap))
}

func (s *Server) handleViewNutrition(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, view.RenderNutritionSummary(s.store.Snapshot()))
}

func (s *Server) handleViewRecovery(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, view.RenderRecovery(s.store.Snapshot()))
}

func (s *Server) handleViewProgress(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, view.RenderProgress(s.store.Snapshot()))
}

func (s *Server) handleSetTab(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tab string `json:"tab"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := s.store.SetActiveTab(req.Tab); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"active_tab": req.Tab})
}

func (s *Server) handleSelectDay(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Day string `json:"day"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := s.store.SelectDay(req.Day); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	// Day switch affects the workout list and progress counters only.
	snap := s.store.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"workout":  view.RenderWorkoutList(snap),
		"progress": view.RenderProgress(snap),
	})
}

type completeRequest struct {
	Day   string `json:"day"`
	Index int    `json:"index"`
}

// validTarget checks that (day, index) addresses an exercise in the current
// plan. The store itself doesn't validate, so the handler does.
func (s *Server) validTarget(day string, index int) bool {
	snap := s.store.Snapshot()
	list, ok := snap.Plan[day]
	return ok && index >= 0 && index < len(list)
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	var req completeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !s.validTarget(req.Day, req.Index) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no such exercise"})
		return
	}
	s.store.MarkExerciseComplete(req.Day, req.Index)

	snap := s.store.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"workout":  view.RenderWorkoutList(snap),
		"progress": view.RenderProgress(snap),
	})
}

func (s *Server) handleLogSet(w http.ResponseWriter, r *http.Request) {
	var req struct {
		completeRequest
		Weight string `json:"weight"`
		Reps   string `json:"reps"`
		RPE    string `json:"rpe"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !s.validTarget(req.Day, req.Index) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no such exercise"})
		return
	}
	s.store.LogExerciseSet(req.Day, req.Index, req.Weight, req.Reps, req.RPE)

	snap := s.store.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"toast":    "Exercise logged!",
		"workout":  view.RenderWorkoutList(snap),
		"progress": view.RenderProgress(snap),
	})
}

func (s *Server) handleNutrition(w http.ResponseWriter, r *http.Request) {
	// Lenient decode: non-numeric fields become zero, never a rejection.
	var req struct {
		Calories models.FlexInt `json:"calories"`
		Protein  models.FlexInt `json:"protein"`
		Carbs    models.FlexInt `json:"carbs"`
		Fat      models.FlexInt `json:"fat"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	s.store.SetNutritionLog(models.NutritionLog{
		Calories: int(req.Calories),
		Protein:  int(req.Protein),
		Carbs:    int(req.Carbs),
		Fat:      int(req.Fat),
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"toast":     "Nutrition saved!",
		"nutrition": view.RenderNutritionSummary(s.store.Snapshot()),
	})
}

func (s *Server) handleChatMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	reply, err := s.session.Send(r.Context(), req.Message)
	switch {
	case errors.Is(err, chat.ErrBusy):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		return
	case err != nil:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"reply":  reply,
		"typing": s.session.Typing(),
	})
}

func (s *Server) handleChatTranscript(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"messages": snap.Transcript,
		"typing":   s.session.Typing(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
