package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGetWorkout = mcp.NewTool("get_workout",
	mcp.WithDescription("Get the exercise list for a weekday, including sets, reps, rest, target weights, form cues, and completion state. Defaults to the currently selected day."),
	mcp.WithString("day", mcp.Description("Weekday name (Monday through Friday). Saturday and Sunday are rest days."), mcp.Enum("Monday", "Tuesday", "Wednesday", "Thursday", "Friday")),
)

var toolGetCyclePhase = mcp.NewTool("get_cycle_phase",
	mcp.WithDescription("Get the current menstrual cycle phase, cycle day, expected energy level, and the phase-specific training tip."),
)

var toolGetCoachingNotes = mcp.NewTool("get_coaching_notes",
	mcp.WithDescription("Get this week's coaching notes."),
)

var toolGetRecovery = mcp.NewTool("get_recovery",
	mcp.WithDescription("Get wearable recovery metrics (sleep score, sleep hours, body battery, HRV status) plus the yoga, stretching, and rest day catalog."),
)

var toolGetProgress = mcp.NewTool("get_progress",
	mcp.WithDescription("Get completion counts for the selected day and the week, plus the current program week."),
)

var toolGetNutrition = mcp.NewTool("get_nutrition",
	mcp.WithDescription("Get today's logged macros against the daily targets."),
)

var toolCompleteExercise = mcp.NewTool("complete_exercise",
	mcp.WithDescription("Mark one exercise complete by weekday and list position. Idempotent."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Weekday name (Monday through Friday)")),
	mcp.WithNumber("index", mcp.Required(), mcp.Description("Zero-based position in the day's exercise list")),
)

// --- Tool handlers ---

func (h *handlers) getWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day := req.GetString("day", "")

	list, err := h.ds.Workout(ctx, day)
	if err != nil {
		h.log.Error("mcp get_workout", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(list)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getCyclePhase(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	badge, err := h.ds.CycleBadge(ctx)
	if err != nil {
		h.log.Error("mcp get_cycle_phase", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(badge)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getCoachingNotes(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	notes, err := h.ds.CoachingNotes(ctx)
	if err != nil {
		h.log.Error("mcp get_coaching_notes", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(notes)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getRecovery(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rec, err := h.ds.Recovery(ctx)
	if err != nil {
		h.log.Error("mcp get_recovery", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(rec)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgress(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := h.ds.Progress(ctx)
	if err != nil {
		h.log.Error("mcp get_progress", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(p)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getNutrition(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sum, err := h.ds.Nutrition(ctx)
	if err != nil {
		h.log.Error("mcp get_nutrition", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(sum)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) completeExercise(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := req.RequireString("day")
	if err != nil {
		return mcp.NewToolResultError("day parameter is required"), nil
	}
	index, err := req.RequireInt("index")
	if err != nil {
		return mcp.NewToolResultError("index parameter is required"), nil
	}

	if err := h.ds.CompleteExercise(ctx, day, index); err != nil {
		h.log.Error("mcp complete_exercise", "error", err)
		return mcp.NewToolResultError("update failed: " + err.Error()), nil
	}

	// Return the refreshed day so the caller sees the new completion state.
	list, err := h.ds.Workout(ctx, day)
	if err != nil {
		h.log.Error("mcp complete_exercise refresh", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(list)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
