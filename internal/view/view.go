// Package view renders state snapshots into the view models the page
// adapter displays. Renderers are pure functions of a snapshot: they never
// mutate state and tolerate missing data by emitting placeholders.
package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/claude/cycleboard/internal/plan"
	"github.com/claude/cycleboard/internal/state"
)

// Placeholder rendered for absent recovery metrics.
const metricPlaceholder = "--"

// CycleBadge is the phase badge shown in the header.
type CycleBadge struct {
	Label       string `json:"label"`
	StyleClass  string `json:"style_class"`
	Energy      string `json:"energy"`
	TrainingTip string `json:"training_tip"`
}

// RenderCycleBadge formats the phase name and day, and derives the style
// classifier from the phase name.
func RenderCycleBadge(snap state.Snapshot) CycleBadge {
	p := snap.CyclePhase
	return CycleBadge{
		Label:       fmt.Sprintf("%s Day %d", p.Phase, p.Day),
		StyleClass:  strings.ToLower(p.Phase),
		Energy:      p.Energy,
		TrainingTip: p.TrainingTip,
	}
}

// CoachingNotes is the coach's note panel.
type CoachingNotes struct {
	Text string `json:"text"`
}

const emptyNotesText = "No coaching notes for this week."

// RenderCoachingNotes returns the normalized note text or a fixed
// placeholder when absent.
func RenderCoachingNotes(snap state.Snapshot) CoachingNotes {
	if snap.CoachingNotes == "" {
		return CoachingNotes{Text: emptyNotesText}
	}
	return CoachingNotes{Text: snap.CoachingNotes}
}

// ExerciseCard is one workout list entry.
type ExerciseCard struct {
	Index        int    `json:"index"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Sets         int    `json:"sets"`
	Reps         string `json:"reps"`
	Rest         string `json:"rest"`
	TargetWeight string `json:"target_weight"`
	Cues         string `json:"cues"`
	URL          string `json:"url,omitempty"`
	VideoID      string `json:"video_id,omitempty"`
	Done         bool   `json:"done"`
}

// WorkoutList is the selected day's exercise list.
type WorkoutList struct {
	Day          string         `json:"day"`
	Cards        []ExerciseCard `json:"cards"`
	Empty        bool           `json:"empty"`
	EmptyMessage string         `json:"empty_message,omitempty"`
}

// RenderWorkoutList renders the selected day's exercises, flagging each card
// done when its composite key is in the completion set. Category underscores
// become spaces for display. An empty day renders a fixed empty-state
// message naming the day.
func RenderWorkoutList(snap state.Snapshot) WorkoutList {
	day := snap.SelectedDay
	exercises := snap.Plan[day]
	if len(exercises) == 0 {
		return WorkoutList{
			Day:          day,
			Empty:        true,
			EmptyMessage: fmt.Sprintf("No workout scheduled for %s", day),
		}
	}

	cards := make([]ExerciseCard, 0, len(exercises))
	for i, ex := range exercises {
		cards = append(cards, ExerciseCard{
			Index:        i,
			Name:         ex.Exercise,
			Category:     strings.ReplaceAll(ex.Category, "_", " "),
			Sets:         ex.Sets,
			Reps:         ex.Reps,
			Rest:         ex.Rest,
			TargetWeight: ex.TargetWeight,
			Cues:         ex.Cues,
			URL:          ex.URL,
			VideoID:      ExtractYouTubeID(ex.URL),
			Done:         snap.Completed[state.Key(day, i)],
		})
	}
	return WorkoutList{Day: day, Cards: cards}
}

// DayTab is one entry in the weekday selector.
type DayTab struct {
	Day      string `json:"day"`
	Selected bool   `json:"selected"`
	IsToday  bool   `json:"is_today"`
}

// RenderDaySelector renders the weekday tabs, marking the selection and the
// actual current weekday.
func RenderDaySelector(snap state.Snapshot, now time.Time) []DayTab {
	today := now.Weekday().String()
	tabs := make([]DayTab, 0, len(snap.Weekdays))
	for _, d := range snap.Weekdays {
		tabs = append(tabs, DayTab{Day: d, Selected: d == snap.SelectedDay, IsToday: d == today})
	}
	return tabs
}

// Macro is one nutrition summary entry with its fixed target.
type Macro struct {
	Name   string `json:"name"`
	Value  int    `json:"value"`
	Target int    `json:"target"`
	Unit   string `json:"unit,omitempty"`
}

// NutritionSummary pairs today's log with the fixed targets.
type NutritionSummary struct {
	Macros []Macro `json:"macros"`
}

// RenderNutritionSummary renders the four macros against their targets.
func RenderNutritionSummary(snap state.Snapshot) NutritionSummary {
	targets := plan.Targets()
	return NutritionSummary{Macros: []Macro{
		{Name: "Calories", Value: snap.Nutrition.Calories, Target: targets.Calories},
		{Name: "Protein", Value: snap.Nutrition.Protein, Target: targets.Protein, Unit: "g"},
		{Name: "Carbs", Value: snap.Nutrition.Carbs, Target: targets.Carbs, Unit: "g"},
		{Name: "Fat", Value: snap.Nutrition.Fat, Target: targets.Fat, Unit: "g"},
	}}
}

// RecoveryStatus messages keyed off the recovery_ready flag.
const (
	readyMessage   = "Recovery looks good - ready for intense training!"
	cautionMessage = "Recovery metrics suggest taking it easier today"
)

// Metrics is the live recovery metric panel. Absent values render as "--".
type Metrics struct {
	SleepScore    string `json:"sleep_score"`
	SleepHours    string `json:"sleep_hours"`
	BodyBattery   string `json:"body_battery"`
	HRVStatus     string `json:"hrv_status"`
	SleepQuality  string `json:"sleep_quality"`
	Ready         bool   `json:"ready"`
	StatusClass   string `json:"status_class"`
	StatusMessage string `json:"status_message"`
}

// RenderMetrics formats the wearable metrics with placeholders for anything
// missing and a binary ready/caution status line.
func RenderMetrics(snap state.Snapshot) Metrics {
	rec := snap.Recovery
	m := Metrics{
		SleepScore:   metricPlaceholder,
		SleepHours:   metricPlaceholder,
		BodyBattery:  metricPlaceholder,
		HRVStatus:    metricPlaceholder,
		SleepQuality: metricPlaceholder,
		Ready:        rec.RecoveryReady,
	}
	if rec.SleepScore > 0 {
		m.SleepScore = fmt.Sprintf("%d/100", rec.SleepScore)
	}
	if rec.SleepHours > 0 {
		m.SleepHours = fmt.Sprintf("%.1fh", rec.SleepHours)
	}
	if rec.BodyBattery > 0 {
		m.BodyBattery = fmt.Sprintf("%d%%", rec.BodyBattery)
	}
	if rec.HRVStatus != "" {
		m.HRVStatus = rec.HRVStatus
	}
	if rec.SleepQuality != "" {
		m.SleepQuality = rec.SleepQuality
	}
	if rec.RecoveryReady {
		m.StatusClass = "ready"
		m.StatusMessage = readyMessage
	} else {
		m.StatusClass = "caution"
		m.StatusMessage = cautionMessage
	}
	return m
}

// Recovery is the recovery tab: static catalog plus live metrics.
type Recovery struct {
	Catalog plan.RecoveryCatalog `json:"catalog"`
	Metrics Metrics              `json:"metrics"`
}

// RenderRecovery renders the recovery tab.
func RenderRecovery(snap state.Snapshot) Recovery {
	return Recovery{Catalog: plan.Recovery(), Metrics: RenderMetrics(snap)}
}

// Stat is one progress grid cell.
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Progress is the progress/stats tab.
type Progress struct {
	CompletedToday int     `json:"completed_today"`
	TotalToday     int     `json:"total_today"`
	CompletedTotal int     `json:"completed_total"`
	CurrentWeek    int     `json:"current_week"`
	LastUpdated    string  `json:"last_updated,omitempty"`
	Stats          []Stat  `json:"stats"`
	Metrics        Metrics `json:"metrics"`
}

// RenderProgress renders completion counts for the selected day, the
// session total, the program week, and the recovery metric panel.
func RenderProgress(snap state.Snapshot) Progress {
	completedToday := snap.CompletedForDay(snap.SelectedDay)
	totalToday := len(snap.Plan[snap.SelectedDay])
	p := Progress{
		CompletedToday: completedToday,
		TotalToday:     totalToday,
		CompletedTotal: len(snap.Completed),
		CurrentWeek:    snap.CurrentWeek,
		LastUpdated:    snap.LastUpdated,
		Metrics:        RenderMetrics(snap),
	}
	p.Stats = []Stat{
		{Value: fmt.Sprintf("%d/%d", completedToday, totalToday), Label: "Today's Exercises"},
		{Value: fmt.Sprintf("%d", len(snap.Completed)), Label: "Exercises This Week"},
		{Value: fmt.Sprintf("Week %d", snap.CurrentWeek), Label: "Current Week"},
	}
	return p
}
