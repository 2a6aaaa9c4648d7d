// Package cycle computes the menstrual-cycle training phase from a reference
// period start date and an average cycle length.
package cycle

import (
	"math"
	"time"

	"github.com/claude/cycleboard/internal/models"
)

// Phase names.
const (
	PhaseMenstrual  = "Menstrual"
	PhaseFollicular = "Follicular"
	PhaseOvulation  = "Ovulation"
	PhaseLuteal     = "Luteal"
)

// Phase day boundaries. These are absolute day thresholds regardless of
// cycle length; with a cycle shorter than 18 days the Luteal range is
// empty, which callers accept rather than rescaling the boundaries.
const (
	menstrualEnd  = 5
	follicularEnd = 14
	ovulationEnd  = 17
)

// ComputePhase maps (periodStart, cycleLength, now) to the current phase.
// Elapsed days are normalized into [0, cycleLength) with a non-negative
// modulo, so a now before periodStart still yields a valid day in
// [1, cycleLength]. Deterministic: pass a fixed now in tests.
func ComputePhase(periodStart time.Time, cycleLength int, now time.Time) models.CyclePhase {
	if cycleLength <= 0 {
		cycleLength = 28
	}

	// Floor, not truncate: a now a few hours before periodStart is day -1,
	// which wraps to the cycle's last day.
	elapsed := int(math.Floor(now.Sub(periodStart).Hours() / 24))
	day := ((elapsed%cycleLength)+cycleLength)%cycleLength + 1

	p := models.CyclePhase{Day: day}
	switch {
	case day <= menstrualEnd:
		p.Phase = PhaseMenstrual
		p.Energy = "Variable - listen to your body"
		p.TrainingTip = "Lighter weights OK. Focus on form. Rest if needed."
	case day <= follicularEnd:
		p.Phase = PhaseFollicular
		p.Energy = "HIGH - rising estrogen = strength gains!"
		p.TrainingTip = "BEST time for heavy lifts & PRs! Push hard, increase weights."
	case day <= ovulationEnd:
		p.Phase = PhaseOvulation
		p.Energy = "PEAK energy but injury risk higher"
		p.TrainingTip = "Strong lifts possible. Extra warm-up recommended."
	default:
		p.Phase = PhaseLuteal
		p.Energy = "Moderate - may feel more fatigued"
		p.TrainingTip = "Maintain volume but listen to body. Longer rest periods OK."
	}
	return p
}
