// Package plan supplies the built-in weekly program, recovery catalog, and
// nutrition targets. This is the seed data the state store starts from; the
// live feed overlays it once fetched.
package plan

import "github.com/claude/cycleboard/internal/models"

// DefaultWeek is the program week reported until the feed supplies one.
const DefaultWeek = 1

// Weekdays returns the five scheduled training days in display order.
func Weekdays() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
}

// IsTrainingDay reports whether day is one of the scheduled weekday keys.
func IsTrainingDay(day string) bool {
	for _, d := range Weekdays() {
		if d == day {
			return true
		}
	}
	return false
}

// Targets returns the fixed daily macro targets.
func Targets() models.NutritionTargets {
	return models.NutritionTargets{Calories: 1800, Protein: 120, Carbs: 180, Fat: 60}
}

// DefaultNotes is the seed coaching note shown before the first feed merge.
const DefaultNotes = "This week focuses on progressive overload. Heavy compounds " +
	"with isolation finishers. Adjust intensity based on how you're feeling."

// Default returns the built-in weekly workout plan. Each day's slice order
// is display order and doubles as the exercise identity, so entries must
// not be reordered.
func Default() models.WorkoutPlan {
	return models.WorkoutPlan{
		"Monday": {
			{Category: "Glute_Compound_Heavy", Exercise: "Barbell Hip Thrust", Sets: 4, Reps: "8-10", Rest: "90s", TargetWeight: "145 lbs", URL: "https://youtube.com/shorts/42lU8xsumBo", Cues: "Drive through heels. Chin tucked. Full lockout at top."},
			{Category: "Hinge_Pattern", Exercise: "Romanian Deadlift", Sets: 4, Reps: "10-12", Rest: "75s", TargetWeight: "105 lbs", URL: "https://youtube.com/shorts/_TchJLlBO-4", Cues: "Push hips back until hamstrings limit you. Soft knees."},
			{Category: "Glute_Shortened_Iso", Exercise: "Cable Kickbacks", Sets: 3, Reps: "12-15", Rest: "60s", TargetWeight: "RPE 8", URL: "https://youtube.com/shorts/n-cgsNePyFo", Cues: "Do not rotate hips. Pure hip extension."},
			{Category: "Hamstring_Lengthened", Exercise: "Seated Leg Curl", Sets: 3, Reps: "10-12", Rest: "60s", TargetWeight: "RPE 8", URL: "https://youtube.com/shorts/Lh3iMIcbkBQ", Cues: "Lean forward for stretch. Control the negative."},
			{Category: "Unilateral_Leg", Exercise: "B-Stance RDL", Sets: 3, Reps: "10 each side", Rest: "60s", TargetWeight: "25 lb DBs", URL: "https://www.youtube.com/shorts/qC0aLz61m9Y", Cues: "90% load on working leg. Feel hamstring stretch."},
			{Category: "Finisher", Exercise: "Frog Pumps", Sets: 2, Reps: "25", Rest: "45s", TargetWeight: "Bodyweight", URL: "https://youtu.be/MQ62r2V7Lw8", Cues: "Soles together. Squeeze glutes at top."},
		},
		"Tuesday": {
			{Category: "Vertical_Pull_Heavy", Exercise: "Lat Pulldown (Wide Grip)", Sets: 4, Reps: "8-10", Rest: "90s", TargetWeight: "80 lbs", URL: "https://youtube.com/shorts/Oa1ta2lU3ZI", Cues: "Pull elbows to pockets. Don't lean back too far."},
			{Category: "Overhead_Press_Heavy", Exercise: "Seated Dumbbell Press", Sets: 4, Reps: "8-10", Rest: "90s", TargetWeight: "20 lbs each", URL: "https://youtube.com/shorts/osEKVtXBLlU", Cues: "Full ROM. Touch DBs to shoulders."},
			{Category: "Horizontal_Row_Volume", Exercise: "Chest Supported Row", Sets: 3, Reps: "10-12", Rest: "60s", TargetWeight: "25 lb DBs", URL: "https://youtube.com/shorts/czoQ_ncuqqI", Cues: "Eliminate momentum. Isolate the back."},
			{Category: "Lateral_Delt", Exercise: "Cable Lateral Raises", Sets: 3, Reps: "12-15", Rest: "60s", TargetWeight: "RPE 8", URL: "https://youtube.com/shorts/xrBcuPNTxLg", Cues: "Cross body for better stretch. Lead with elbows."},
			{Category: "Tricep_Iso", Exercise: "Tricep Rope Pushdowns", Sets: 3, Reps: "12-15", Rest: "45s", TargetWeight: "RPE 8", URL: "https://youtube.com/shorts/IKQ_bKGT3LQ", Cues: "Spread rope at bottom. Keep elbows pinned."},
			{Category: "Rear_Delt", Exercise: "Face Pulls", Sets: 3, Reps: "15-20", Rest: "45s", TargetWeight: "RPE 7", URL: "https://youtube.com/shorts/8686PLZB_1Q", Cues: "Pull to forehead. External rotation at end."},
		},
		"Wednesday": {
			{Category: "Squat_Pattern_Heavy", Exercise: "Smith Machine Squat", Sets: 4, Reps: "8-10", Rest: "2 mins", TargetWeight: "95 lbs", URL: "https://youtube.com/shorts/iKCJCydYYrE", Cues: "Feet slightly forward. Keep torso upright."},
			{Category: "Lunge_Pattern", Exercise: "Walking Lunges", Sets: 3, Reps: "10 each leg", Rest: "60s", TargetWeight: "20 lb DBs", URL: "https://youtube.com/shorts/2ea3_b9rFdM", Cues: "Slight forward lean. Drive off front heel."},
			{Category: "Quad_Isolation_Shortened", Exercise: "Leg Extensions", Sets: 3, Reps: "12-15", Rest: "60s", TargetWeight: "RPE 8", URL: "https://youtube.com/shorts/ztNBgrGy6FQ", Cues: "Pause at the top. Squeeze quads hard."},
			{Category: "Calves", Exercise: "Standing Calf Raise", Sets: 4, Reps: "12-15", Rest: "45s", TargetWeight: "RPE 8", URL: "https://youtube.com/shorts/a-x_NR-ibos", Cues: "Deep stretch at bottom. Pause 2s at peak."},
			{Category: "Core_Stability", Exercise: "Plank", Sets: 3, Reps: "45 seconds", Rest: "30s", TargetWeight: "Bodyweight", URL: "https://youtube.com/shorts/xe2MXatLTUw", Cues: "Squeeze glutes. Don't let hips sag or pike."},
			{Category: "Core_Rotation", Exercise: "Cable Woodchoppers", Sets: 3, Reps: "12 each side", Rest: "45s", TargetWeight: "RPE 7", URL: "https://youtube.com/shorts/YIU0U_B57rU", Cues: "Rotate through thoracic spine, not hips."},
		},
		"Thursday": {
			{Category: "Horizontal_Push", Exercise: "Incline Dumbbell Press", Sets: 4, Reps: "10-12", Rest: "75s", TargetWeight: "22.5 lbs each", URL: "https://www.youtube.com/watch?v=8iPEnn-ltC8", Cues: "Focus on upper chest. 30 degree bench."},
			{Category: "Bicep_Isolation", Exercise: "Bayesian Curls", Sets: 3, Reps: "10-12", Rest: "60s", TargetWeight: "RPE 8", URL: "https://youtube.com/shorts/BaSd7C58L3o", Cues: "Cable behind back. Maximal stretch on bicep."},
			{Category: "Tricep_Overhead", Exercise: "Overhead Cable Extension", Sets: 3, Reps: "12-15", Rest: "60s", TargetWeight: "RPE 8", URL: "https://youtube.com/shorts/9Ark9S11uXw", Cues: "Stretch the long head. Keep elbows in."},
			{Category: "Lateral_Delt", Exercise: "Lu Raises", Sets: 3, Reps: "10-12", Rest: "60s", TargetWeight: "8 lb DBs", URL: "https://youtube.com/shorts/oZgHeEFY8pc", Cues: "Full overhead range. Control eccentric."},
			{Category: "Bicep_Hammer", Exercise: "Hammer Curls", Sets: 3, Reps: "10-12", Rest: "45s", TargetWeight: "15 lbs", URL: "https://youtube.com/shorts/lmIo_gVE8T4", Cues: "Neutral grip. Hits brachialis for arm width."},
			{Category: "Core_Obliques", Exercise: "Russian Twists", Sets: 3, Reps: "20 total", Rest: "45s", TargetWeight: "10 lb DB", URL: "https://youtube.com/shorts/-BzNffL_6YE", Cues: "Slow and controlled. Feet up if possible."},
		},
		"Friday": {
			{Category: "Glute_Bridge_Volume", Exercise: "B-Stance Hip Thrust", Sets: 4, Reps: "12 each side", Rest: "60s", TargetWeight: "105 lbs", URL: "https://youtu.be/9rDq2uQdau0", Cues: "90% load on working leg. Kickstand only."},
			{Category: "Hinge_Unilateral", Exercise: "Single Leg RDL", Sets: 3, Reps: "10 each leg", Rest: "60s", TargetWeight: "25 lb DB", URL: "https://youtube.com/shorts/Iq1LP6dnf1U", Cues: "Use wall for balance if needed. Hips square."},
			{Category: "Abductor_Iso", Exercise: "Seated Abductor Machine", Sets: 3, Reps: "15-20", Rest: "45s", TargetWeight: "RPE 9", URL: "https://youtube.com/shorts/tu4o4quPv2k", Cues: "Lean forward for glutes. Hold 1s at peak."},
			{Category: "Vertical_Pull", Exercise: "Straight Arm Pulldown", Sets: 3, Reps: "12-15", Rest: "60s", TargetWeight: "RPE 8", URL: "https://youtube.com/shorts/hAMcfubonDc", Cues: "Keep elbows slightly bent but locked. Squeeze lats."},
			{Category: "Rear_Delt", Exercise: "Reverse Pec Deck", Sets: 3, Reps: "15-20", Rest: "45s", TargetWeight: "RPE 8", URL: "https://youtube.com/shorts/7tgx6QHB0-A", Cues: "Push back of hands away. Don't squeeze early."},
			{Category: "Glute_Burnout", Exercise: "Cable Pull Through", Sets: 2, Reps: "15-20", Rest: "45s", TargetWeight: "RPE 8", URL: "https://youtube.com/shorts/d3sH6fbCBP0", Cues: "Hip hinge. Squeeze glutes to stand."},
		},
	}
}
