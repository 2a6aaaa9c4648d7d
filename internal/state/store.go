// Package state holds the session's application state behind named mutation
// operations. Handlers, the live-data fetcher, and the MCP transport all run
// on separate goroutines, so the store serializes access with a mutex and
// hands out deep-copied snapshots for rendering.
package state

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/claude/cycleboard/internal/models"
)

// Tab identifiers accepted by SetActiveTab.
const (
	TabWorkout   = "workout"
	TabNutrition = "nutrition"
	TabRecovery  = "recovery"
	TabProgress  = "progress"
)

var knownTabs = map[string]bool{
	TabWorkout:   true,
	TabNutrition: true,
	TabRecovery:  true,
	TabProgress:  true,
}

// Key builds the composite completion key for one exercise occurrence.
func Key(day string, index int) string {
	return fmt.Sprintf("%s-%d", day, index)
}

// Store is the mutable application state root.
type Store struct {
	mu sync.Mutex

	activeTab   string
	selectedDay string
	weekdays    []string

	plan        models.WorkoutPlan
	cyclePhase  models.CyclePhase
	notes       *models.CoachingNotes
	recovery    models.RecoveryMetrics
	currentWeek int
	lastUpdated string

	completed map[string]bool
	nutrition models.NutritionLog
	setLogs   []models.SetLog

	transcript   []models.ChatMessage
	maxChatTurns int
}

// Seed carries the immutable defaults the store starts from.
type Seed struct {
	Plan         models.WorkoutPlan
	CyclePhase   models.CyclePhase
	Notes        *models.CoachingNotes
	Recovery     models.RecoveryMetrics
	CurrentWeek  int
	Weekdays     []string
	SelectedDay  string
	MaxChatTurns int
}

// New creates a store seeded with defaults. Live data overlays later via
// ApplyLiveData.
func New(seed Seed) *Store {
	s := &Store{
		activeTab:    TabWorkout,
		selectedDay:  seed.SelectedDay,
		weekdays:     seed.Weekdays,
		plan:         clonePlan(seed.Plan),
		cyclePhase:   seed.CyclePhase,
		notes:        seed.Notes,
		recovery:     seed.Recovery,
		currentWeek:  seed.CurrentWeek,
		completed:    make(map[string]bool),
		maxChatTurns: seed.MaxChatTurns,
	}
	if s.selectedDay == "" && len(s.weekdays) > 0 {
		s.selectedDay = s.weekdays[0]
	}
	return s
}

// SetActiveTab switches the active tab. Unknown identifiers are rejected;
// no other state is touched.
func (s *Store) SetActiveTab(tab string) error {
	if !knownTabs[tab] {
		return fmt.Errorf("unknown tab %q", tab)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeTab = tab
	return nil
}

// SelectDay switches the selected weekday. Completion markers and the
// nutrition log are left untouched.
func (s *Store) SelectDay(day string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.weekdays {
		if d == day {
			s.selectedDay = day
			return nil
		}
	}
	return fmt.Errorf("unknown day %q", day)
}

// MarkExerciseComplete records the (day, index) occurrence as done.
// Idempotent: marking an already-complete exercise is a no-op. The pair is
// not validated against the plan; callers validate upstream if they care.
func (s *Store) MarkExerciseComplete(day string, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completed[Key(day, index)] = true
}

// LogExerciseSet records a set log entry from the exercise modal and marks
// the exercise complete. Session-only; entries are never persisted.
func (s *Store) LogExerciseSet(day string, index int, weight, reps, rpe string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLogs = append(s.setLogs, models.SetLog{
		Day: day, Index: index, Weight: weight, Reps: reps, RPE: rpe, At: time.Now(),
	})
	s.completed[Key(day, index)] = true
}

// SetNutritionLog replaces the nutrition log wholesale. Invalid fields have
// already been defaulted to zero by the lenient decoder.
func (s *Store) SetNutritionLog(log models.NutritionLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nutrition = log
}

// AppendChatMessage appends one transcript entry and returns it. When the
// transcript exceeds the configured cap, the oldest entries are dropped so
// a long session cannot grow without bound.
func (s *Store) AppendChatMessage(role, text string) models.ChatMessage {
	msg := models.NewChatMessage(role, text)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, msg)
	if s.maxChatTurns > 0 && len(s.transcript) > s.maxChatTurns {
		drop := len(s.transcript) - s.maxChatTurns
		s.transcript = append(s.transcript[:0:0], s.transcript[drop:]...)
	}
	return msg
}

// ApplyLiveData overlays a live feed payload onto the current state.
// Each section is applied independently; absent sections leave the current
// value untouched. Per-day workout lists are replaced wholesale for days
// present in the payload. Completion markers, the nutrition log, and the
// chat transcript are never touched, so a fetch resolving after user
// interaction overlays rather than resets.
func (s *Store) ApplyLiveData(ld *models.LiveData) {
	if ld == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if ld.Recovery != nil {
		s.recovery = *ld.Recovery
	}
	if ld.CyclePhase != nil {
		s.cyclePhase = *ld.CyclePhase
	}
	for day, exercises := range ld.Workouts {
		s.plan[day] = append([]models.Exercise(nil), exercises...)
	}
	if ld.CoachingNotes != nil {
		s.notes = ld.CoachingNotes
	}
	if ld.CurrentWeek > 0 {
		s.currentWeek = ld.CurrentWeek
	}
	if ld.LastUpdated != "" {
		s.lastUpdated = ld.LastUpdated
	}
}

// Snapshot is a deep copy of the state for rendering. Mutating a snapshot
// never affects the store.
type Snapshot struct {
	ActiveTab   string
	SelectedDay string
	Weekdays    []string

	Plan          models.WorkoutPlan
	CyclePhase    models.CyclePhase
	CoachingNotes string
	Recovery      models.RecoveryMetrics
	CurrentWeek   int
	LastUpdated   string

	Completed map[string]bool
	Nutrition models.NutritionLog
	SetLogs   []models.SetLog

	Transcript []models.ChatMessage
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	completed := make(map[string]bool, len(s.completed))
	for k := range s.completed {
		completed[k] = true
	}

	return Snapshot{
		ActiveTab:     s.activeTab,
		SelectedDay:   s.selectedDay,
		Weekdays:      append([]string(nil), s.weekdays...),
		Plan:          clonePlan(s.plan),
		CyclePhase:    s.cyclePhase,
		CoachingNotes: s.notes.Normalize(),
		Recovery:      s.recovery,
		CurrentWeek:   s.currentWeek,
		LastUpdated:   s.lastUpdated,
		Completed:     completed,
		Nutrition:     s.nutrition,
		SetLogs:       append([]models.SetLog(nil), s.setLogs...),
		Transcript:    append([]models.ChatMessage(nil), s.transcript...),
	}
}

// CompletedForDay counts completed exercises for one day in a snapshot.
func (snap Snapshot) CompletedForDay(day string) int {
	n := 0
	prefix := day + "-"
	for k := range snap.Completed {
		if strings.HasPrefix(k, prefix) {
			n++
		}
	}
	return n
}

func clonePlan(p models.WorkoutPlan) models.WorkoutPlan {
	out := make(models.WorkoutPlan, len(p))
	for day, exercises := range p {
		out[day] = append([]models.Exercise(nil), exercises...)
	}
	return out
}
