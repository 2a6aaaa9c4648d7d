package state

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/claude/cycleboard/internal/models"
	"github.com/claude/cycleboard/internal/plan"
)

func newTestStore() *Store {
	return New(Seed{
		Plan:         plan.Default(),
		CyclePhase:   models.CyclePhase{Phase: "Follicular", Day: 8, Energy: "high", TrainingTip: "push"},
		Notes:        models.NewCoachingNotes(plan.DefaultNotes),
		Recovery:     models.RecoveryMetrics{SleepScore: 81, SleepHours: 7.7, SleepQuality: "Excellent", BodyBattery: 23, HRVStatus: "BALANCED", RecoveryReady: true},
		CurrentWeek:  plan.DefaultWeek,
		Weekdays:     plan.Weekdays(),
		MaxChatTurns: 50,
	})
}

// TestMarkExerciseCompleteIdempotent verifies marking the same exercise
// twice leaves a single completion entry.
func TestMarkExerciseCompleteIdempotent(t *testing.T) {
	s := newTestStore()
	s.MarkExerciseComplete("Monday", 2)
	s.MarkExerciseComplete("Monday", 2)

	snap := s.Snapshot()
	if len(snap.Completed) != 1 {
		t.Errorf("completed set size = %d, want 1", len(snap.Completed))
	}
	if !snap.Completed["Monday-2"] {
		t.Error("Monday-2 not in completion set")
	}
}

// TestSelectDayPreservesCompletionAndNutrition verifies switching days never
// mutates the completion set or nutrition log.
func TestSelectDayPreservesCompletionAndNutrition(t *testing.T) {
	s := newTestStore()
	s.MarkExerciseComplete("Monday", 0)
	s.SetNutritionLog(models.NutritionLog{Calories: 500, Protein: 40})

	if err := s.SelectDay("Wednesday"); err != nil {
		t.Fatalf("SelectDay: %v", err)
	}

	snap := s.Snapshot()
	if snap.SelectedDay != "Wednesday" {
		t.Errorf("selected day = %s, want Wednesday", snap.SelectedDay)
	}
	if !snap.Completed["Monday-0"] {
		t.Error("completion marker lost on day switch")
	}
	if snap.Nutrition.Calories != 500 || snap.Nutrition.Protein != 40 {
		t.Errorf("nutrition log mutated: %+v", snap.Nutrition)
	}
}

// TestSelectDayRejectsUnknown verifies weekend and garbage day names are
// rejected without changing the selection.
func TestSelectDayRejectsUnknown(t *testing.T) {
	s := newTestStore()
	for _, day := range []string{"Saturday", "Funday", ""} {
		if err := s.SelectDay(day); err == nil {
			t.Errorf("SelectDay(%q) succeeded, want error", day)
		}
	}
	if got := s.Snapshot().SelectedDay; got != "Monday" {
		t.Errorf("selected day = %s, want Monday", got)
	}
}

// TestSetActiveTab verifies known tabs switch and unknown tabs are rejected.
func TestSetActiveTab(t *testing.T) {
	s := newTestStore()
	if err := s.SetActiveTab(TabNutrition); err != nil {
		t.Fatalf("SetActiveTab: %v", err)
	}
	if got := s.Snapshot().ActiveTab; got != TabNutrition {
		t.Errorf("active tab = %s, want %s", got, TabNutrition)
	}
	if err := s.SetActiveTab("settings"); err == nil {
		t.Error("SetActiveTab(settings) succeeded, want error")
	}
}

// TestNutritionLogLenientRoundTrip verifies the documented round trip:
// numeric strings parse, garbage and empties default to zero.
func TestNutritionLogLenientRoundTrip(t *testing.T) {
	var req struct {
		Calories models.FlexInt `json:"calories"`
		Protein  models.FlexInt `json:"protein"`
		Carbs    models.FlexInt `json:"carbs"`
		Fat      models.FlexInt `json:"fat"`
	}
	payload := `{"calories":"500","protein":"40","carbs":"abc","fat":""}`
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("decode: %v", err)
	}

	s := newTestStore()
	s.SetNutritionLog(models.NutritionLog{
		Calories: int(req.Calories), Protein: int(req.Protein),
		Carbs: int(req.Carbs), Fat: int(req.Fat),
	})

	want := models.NutritionLog{Calories: 500, Protein: 40, Carbs: 0, Fat: 0}
	if got := s.Snapshot().Nutrition; got != want {
		t.Errorf("nutrition = %+v, want %+v", got, want)
	}
}

// TestApplyLiveDataPartialOverlay verifies merging a payload containing only
// recovery data leaves workouts and coaching notes untouched.
func TestApplyLiveDataPartialOverlay(t *testing.T) {
	s := newTestStore()
	before := s.Snapshot()

	s.ApplyLiveData(&models.LiveData{
		Recovery: &models.RecoveryMetrics{SleepScore: 50, SleepHours: 5.5, SleepQuality: "Poor", BodyBattery: 10, HRVStatus: "LOW", RecoveryReady: false},
	})

	after := s.Snapshot()
	if after.Recovery.SleepScore != 50 || after.Recovery.RecoveryReady {
		t.Errorf("recovery not overlaid: %+v", after.Recovery)
	}
	if !reflect.DeepEqual(before.Plan, after.Plan) {
		t.Error("workout plan changed by recovery-only merge")
	}
	if before.CoachingNotes != after.CoachingNotes {
		t.Errorf("coaching notes changed: %q -> %q", before.CoachingNotes, after.CoachingNotes)
	}
	if before.CyclePhase != after.CyclePhase {
		t.Errorf("cycle phase changed: %+v -> %+v", before.CyclePhase, after.CyclePhase)
	}
}

// TestApplyLiveDataReplacesDayList verifies a day present in the payload has
// its exercise list replaced wholesale while other days keep theirs.
func TestApplyLiveDataReplacesDayList(t *testing.T) {
	s := newTestStore()
	tuesdayBefore := s.Snapshot().Plan["Tuesday"]

	s.ApplyLiveData(&models.LiveData{
		Workouts: map[string][]models.Exercise{
			"Monday": {{Category: "Test", Exercise: "Goblet Squat", Sets: 3, Reps: "10", Rest: "60s", TargetWeight: "40 lbs", Cues: "brace"}},
		},
	})

	snap := s.Snapshot()
	if len(snap.Plan["Monday"]) != 1 || snap.Plan["Monday"][0].Exercise != "Goblet Squat" {
		t.Errorf("Monday list not replaced: %+v", snap.Plan["Monday"])
	}
	if !reflect.DeepEqual(snap.Plan["Tuesday"], tuesdayBefore) {
		t.Error("Tuesday list changed by Monday-only merge")
	}
}

// TestApplyLiveDataPreservesSessionState verifies a merge resolving after
// user interaction never resets completion markers or the nutrition log.
func TestApplyLiveDataPreservesSessionState(t *testing.T) {
	s := newTestStore()
	s.MarkExerciseComplete("Monday", 1)
	s.SetNutritionLog(models.NutritionLog{Calories: 900})

	s.ApplyLiveData(&models.LiveData{
		CyclePhase: &models.CyclePhase{Phase: "Luteal", Day: 21, Energy: "moderate", TrainingTip: "rest more"},
		Workouts: map[string][]models.Exercise{
			"Monday": {{Category: "X", Exercise: "Y", Sets: 1, Reps: "1", Rest: "1s", TargetWeight: "1", Cues: "z"}},
		},
	})

	snap := s.Snapshot()
	if !snap.Completed["Monday-1"] {
		t.Error("completion marker reset by merge")
	}
	if snap.Nutrition.Calories != 900 {
		t.Errorf("nutrition reset by merge: %+v", snap.Nutrition)
	}
	if snap.CyclePhase.Phase != "Luteal" {
		t.Errorf("cycle phase override not applied: %+v", snap.CyclePhase)
	}
}

// TestApplyLiveDataIdempotent verifies re-applying the same payload yields
// the same state.
func TestApplyLiveDataIdempotent(t *testing.T) {
	s := newTestStore()
	ld := &models.LiveData{
		Recovery:    &models.RecoveryMetrics{SleepScore: 70, SleepHours: 7},
		CurrentWeek: 3,
		LastUpdated: "2026-01-05T06:00:00Z",
	}
	s.ApplyLiveData(ld)
	first := s.Snapshot()
	s.ApplyLiveData(ld)
	second := s.Snapshot()

	if !reflect.DeepEqual(first, second) {
		t.Error("second identical merge changed state")
	}
}

// TestAppendChatMessageCapped verifies old transcript entries are dropped
// once the cap is exceeded.
func TestAppendChatMessageCapped(t *testing.T) {
	s := New(Seed{Weekdays: plan.Weekdays(), MaxChatTurns: 4})
	for i := 0; i < 6; i++ {
		s.AppendChatMessage(models.RoleUser, "message")
	}
	snap := s.Snapshot()
	if len(snap.Transcript) != 4 {
		t.Errorf("transcript length = %d, want 4", len(snap.Transcript))
	}
}

// TestSnapshotIsolation verifies mutating a snapshot does not leak back
// into the store.
func TestSnapshotIsolation(t *testing.T) {
	s := newTestStore()
	snap := s.Snapshot()
	snap.Completed["Monday-5"] = true
	snap.Plan["Monday"][0].Exercise = "tampered"

	fresh := s.Snapshot()
	if fresh.Completed["Monday-5"] {
		t.Error("snapshot completion map shared with store")
	}
	if fresh.Plan["Monday"][0].Exercise == "tampered" {
		t.Error("snapshot plan shared with store")
	}
}

// TestLogExerciseSetMarksComplete verifies logging a set records the entry
// and flags the exercise done.
func TestLogExerciseSetMarksComplete(t *testing.T) {
	s := newTestStore()
	s.LogExerciseSet("Friday", 3, "95 lbs", "12", "8")

	snap := s.Snapshot()
	if !snap.Completed["Friday-3"] {
		t.Error("logged exercise not marked complete")
	}
	if len(snap.SetLogs) != 1 {
		t.Fatalf("set logs = %d, want 1", len(snap.SetLogs))
	}
	if got := snap.SetLogs[0]; got.Weight != "95 lbs" || got.Reps != "12" || got.RPE != "8" {
		t.Errorf("set log = %+v", got)
	}
}

// TestCompletedForDay verifies per-day counting only matches that day's keys.
func TestCompletedForDay(t *testing.T) {
	s := newTestStore()
	s.MarkExerciseComplete("Monday", 0)
	s.MarkExerciseComplete("Monday", 3)
	s.MarkExerciseComplete("Tuesday", 0)

	snap := s.Snapshot()
	if got := snap.CompletedForDay("Monday"); got != 2 {
		t.Errorf("CompletedForDay(Monday) = %d, want 2", got)
	}
	if got := snap.CompletedForDay("Wednesday"); got != 0 {
		t.Errorf("CompletedForDay(Wednesday) = %d, want 0", got)
	}
}
