package mcp

import (
	"context"
	"fmt"

	"github.com/claude/cycleboard/internal/state"
	"github.com/claude/cycleboard/internal/view"
)

// DataSource abstracts the dashboard state for MCP tools. Both Local
// (in-process store) and HTTPClient (remote via REST API) satisfy this
// interface.
type DataSource interface {
	Workout(ctx context.Context, day string) (view.WorkoutList, error)
	CycleBadge(ctx context.Context) (view.CycleBadge, error)
	CoachingNotes(ctx context.Context) (view.CoachingNotes, error)
	Recovery(ctx context.Context) (view.Recovery, error)
	Progress(ctx context.Context) (view.Progress, error)
	Nutrition(ctx context.Context) (view.NutritionSummary, error)
	CompleteExercise(ctx context.Context, day string, index int) error
}

// Local serves MCP tools straight from the in-process state store.
type Local struct {
	store *state.Store
}

// Compile-time check: *Local satisfies DataSource.
var _ DataSource = (*Local)(nil)

// NewLocal creates a Local source over the given store.
func NewLocal(store *state.Store) *Local {
	return &Local{store: store}
}

func (l *Local) Workout(_ context.Context, day string) (view.WorkoutList, error) {
	snap := l.store.Snapshot()
	if day != "" {
		snap.SelectedDay = day
	}
	return view.RenderWorkoutList(snap), nil
}

func (l *Local) CycleBadge(_ context.Context) (view.CycleBadge, error) {
	return view.RenderCycleBadge(l.store.Snapshot()), nil
}

func (l *Local) CoachingNotes(_ context.Context) (view.CoachingNotes, error) {
	return view.RenderCoachingNotes(l.store.Snapshot()), nil
}

func (l *Local) Recovery(_ context.Context) (view.Recovery, error) {
	return view.RenderRecovery(l.store.Snapshot()), nil
}

func (l *Local) Progress(_ context.Context) (view.Progress, error) {
	return view.RenderProgress(l.store.Snapshot()), nil
}

func (l *Local) Nutrition(_ context.Context) (view.NutritionSummary, error) {
	return view.RenderNutritionSummary(l.store.Snapshot()), nil
}

// CompleteExercise validates the target against the current plan before
// recording it, the same contract the REST mutation endpoint enforces.
func (l *Local) CompleteExercise(_ context.Context, day string, index int) error {
	snap := l.store.Snapshot()
	list, ok := snap.Plan[day]
	if !ok || index < 0 || index >= len(list) {
		return fmt.Errorf("mcp: no exercise at %s index %d", day, index)
	}
	l.store.MarkExerciseComplete(day, index)
	return nil
}
