package plan

// YogaFlow is one guided flow in the recovery catalog.
type YogaFlow struct {
	Name        string   `json:"name"`
	Duration    string   `json:"duration"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Poses       []string `json:"poses"`
}

// StretchExercise is one stretch within a routine.
type StretchExercise struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
	URL      string `json:"url"`
	Cues     string `json:"cues"`
}

// StretchRoutine is a named cool-down sequence.
type StretchRoutine struct {
	Name        string            `json:"name"`
	Duration    string            `json:"duration"`
	Description string            `json:"description"`
	Exercises   []StretchExercise `json:"exercises"`
}

// RestDayActivity is a low-intensity rest-day suggestion.
type RestDayActivity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

// RecoveryCatalog is the static recovery content rendered on the recovery tab.
type RecoveryCatalog struct {
	YogaFlows  []YogaFlow        `json:"yoga_flows"`
	Stretching []StretchRoutine  `json:"stretching"`
	RestDay    []RestDayActivity `json:"rest_day"`
}

// Recovery returns the built-in recovery catalog.
func Recovery() RecoveryCatalog {
	return RecoveryCatalog{
		YogaFlows: []YogaFlow{
			{
				Name: "Morning Energize Flow", Duration: "12 mins",
				URL:         "https://www.youtube.com/watch?v=4pKly2JojMw",
				Description: "Wake up your body and mind - great for Follicular/Ovulation phase",
				Poses:       []string{"Sun Salutation A", "Warrior I to II", "Triangle Pose", "Chair Pose", "Forward Fold"},
			},
			{
				Name: "Evening Unwind", Duration: "15 mins",
				URL:         "https://www.youtube.com/watch?v=v7AYKMP6rOE",
				Description: "Gentle, restorative sequence to reduce stress and improve sleep",
				Poses:       []string{"Child's Pose", "Supine Twist", "Happy Baby", "Legs Up Wall", "Corpse Pose"},
			},
			{
				Name: "Deep Hip Opening", Duration: "20 mins",
				URL:         "https://www.youtube.com/watch?v=Ho8-3wbys5E",
				Description: "Target tight hips from sitting and training - great for rest days",
				Poses:       []string{"Butterfly", "Low Lunge", "Lizard Pose", "Frog Pose", "Pigeon Pose"},
			},
		},
		Stretching: []StretchRoutine{
			{
				Name: "Lower Body Cool Down", Duration: "10 mins",
				Description: "Essential stretches after leg day to improve recovery",
				Exercises: []StretchExercise{
					{Name: "90/90 Hip Stretch", Duration: "60s each side", URL: "https://youtube.com/shorts/yjGjT7JYVR4", Cues: "Keep chest tall, rotate towards front leg"},
					{Name: "Pigeon Pose", Duration: "90s each side", URL: "https://youtube.com/shorts/FBRVZbLFzjk", Cues: "Square hips, fold forward for deeper stretch"},
					{Name: "Standing Quad Stretch", Duration: "45s each side", URL: "https://youtube.com/shorts/GKe7eTdQmzs", Cues: "Squeeze glute, push hips forward"},
					{Name: "Seated Forward Fold", Duration: "60s", URL: "https://youtube.com/shorts/1uR5F_l3hc", Cues: "Hinge at hips, reach for toes"},
					{Name: "Figure Four Hip Stretch", Duration: "60s each side", URL: "https://youtube.com/shorts/cC8YWopAEYg", Cues: "Flex ankle, pull knee towards chest"},
				},
			},
			{
				Name: "Upper Body Cool Down", Duration: "8 mins",
				Description: "Release tension in shoulders, chest, and back",
				Exercises: []StretchExercise{
					{Name: "Doorway Chest Stretch", Duration: "45s each arm", URL: "https://youtube.com/shorts/2x8cP3zMzlg", Cues: "90 degree elbow, lean forward gently"},
					{Name: "Cross-Body Shoulder Stretch", Duration: "30s each arm", URL: "https://youtube.com/shorts/WvmIQ9J5TzE", Cues: "Pull arm across chest, keep shoulder down"},
					{Name: "Overhead Tricep Stretch", Duration: "30s each arm", URL: "https://youtube.com/shorts/jqF8wrR5xko", Cues: "Elbow points to ceiling, gentle press"},
					{Name: "Cat-Cow Stretch", Duration: "60s (10 reps)", URL: "https://youtube.com/shorts/OqWybnAbTI8", Cues: "Flow with breath, full spinal movement"},
					{Name: "Thread the Needle", Duration: "45s each side", URL: "https://youtube.com/shorts/HoCN7Wq5pZo", Cues: "Rotate through thoracic spine"},
				},
			},
		},
		RestDay: []RestDayActivity{
			{Name: "20-30 min Walk", Description: "Easy pace, preferably outdoors for fresh air"},
			{Name: "15 min Foam Rolling", Description: "Full body routine for muscle recovery", URL: "https://www.youtube.com/watch?v=bxQ68D4YEFQ"},
			{Name: "Epsom Salt Bath", Description: "20 mins - magnesium helps muscle relaxation"},
			{Name: "Meditation", Description: "10-15 mins - great for stress relief", URL: "https://www.youtube.com/watch?v=inpok4MKVLM"},
		},
	}
}
