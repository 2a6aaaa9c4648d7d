package models

import (
	"time"

	"github.com/google/uuid"
)

// Exercise is one entry in a day's workout. Exercises carry no stable ID;
// they are addressed positionally as (day, index), so list order within a
// day must not change between renders.
type Exercise struct {
	Category     string `json:"category"`
	Exercise     string `json:"exercise"`
	Sets         int    `json:"sets"`
	Reps         string `json:"reps"`
	Rest         string `json:"rest"`
	TargetWeight string `json:"target_weight"`
	URL          string `json:"url,omitempty"`
	Cues         string `json:"cues"`
}

// WorkoutPlan maps weekday name to that day's ordered exercise list.
type WorkoutPlan map[string][]Exercise

// CyclePhase is the menstrual-cycle training phase for a given day.
// Either computed locally (see internal/cycle) or supplied precomputed by
// the live data feed, which takes precedence.
type CyclePhase struct {
	Phase       string `json:"phase"`
	Day         int    `json:"day"`
	Energy      string `json:"energy"`
	TrainingTip string `json:"training_tip"`
}

// RecoveryMetrics holds wearable-sourced recovery data. All fields are
// labels or raw device numbers, not derived values; absent fields render
// as placeholders.
type RecoveryMetrics struct {
	SleepScore    int     `json:"sleep_score"`
	SleepHours    float64 `json:"sleep_hours"`
	SleepQuality  string  `json:"sleep_quality"`
	BodyBattery   int     `json:"body_battery"`
	HRVStatus     string  `json:"hrv_status"`
	RecoveryReady bool    `json:"recovery_ready"`
}

// NutritionLog is the session's logged macro totals.
type NutritionLog struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// NutritionTargets are the fixed daily macro targets.
type NutritionTargets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// SetLog records one logged set from the exercise modal. Session-only,
// never persisted.
type SetLog struct {
	Day    string    `json:"day"`
	Index  int       `json:"index"`
	Weight string    `json:"weight"`
	Reps   string    `json:"reps"`
	RPE    string    `json:"rpe"`
	At     time.Time `json:"at"`
}

// Chat message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one transcript entry.
type ChatMessage struct {
	ID   uuid.UUID `json:"id"`
	Role string    `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// NewChatMessage creates a transcript entry stamped with a fresh ID.
func NewChatMessage(role, text string) ChatMessage {
	return ChatMessage{ID: uuid.New(), Role: role, Text: text, At: time.Now()}
}
