package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// LiveData is the upstream dashboard feed. Every section is optional;
// absent sections leave the corresponding state untouched on merge.
type LiveData struct {
	Recovery      *RecoveryMetrics      `json:"recovery,omitempty"`
	CyclePhase    *CyclePhase           `json:"cycle_phase,omitempty"`
	Workouts      map[string][]Exercise `json:"workouts,omitempty"`
	CoachingNotes *CoachingNotes        `json:"coaching_notes,omitempty"`
	CurrentWeek   int                   `json:"current_week,omitempty"`
	LastUpdated   string                `json:"last_updated,omitempty"`
}

// CoachingNotes arrives from the feed as a plain string, a single note
// object, or a list of note objects. The raw shape is kept as a tagged
// variant; Normalize flattens it to one display string.
type CoachingNotes struct {
	kind  notesKind
	text  string
	notes []noteEntry
}

type notesKind int

const (
	notesString notesKind = iota
	notesObject
	notesList
)

// noteEntry is one structured note. Generated notes use either an
// "exercise" or a "text" field for their content.
type noteEntry struct {
	Exercise string `json:"exercise"`
	Text     string `json:"text"`
	raw      json.RawMessage
}

// NewCoachingNotes builds a plain-string notes value. Used for seed data.
func NewCoachingNotes(text string) *CoachingNotes {
	return &CoachingNotes{kind: notesString, text: text}
}

func (n *CoachingNotes) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	switch {
	case strings.HasPrefix(trimmed, "\""):
		n.kind = notesString
		return json.Unmarshal(data, &n.text)
	case strings.HasPrefix(trimmed, "["):
		n.kind = notesList
		var raws []json.RawMessage
		if err := json.Unmarshal(data, &raws); err != nil {
			return err
		}
		n.notes = make([]noteEntry, 0, len(raws))
		for _, r := range raws {
			n.notes = append(n.notes, parseNoteEntry(r))
		}
		return nil
	default:
		n.kind = notesObject
		n.notes = []noteEntry{parseNoteEntry(data)}
		return nil
	}
}

func (n CoachingNotes) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Normalize())
}

func parseNoteEntry(raw json.RawMessage) noteEntry {
	e := noteEntry{raw: raw}
	// A list element may itself be a bare string.
	if err := json.Unmarshal(raw, &e.Text); err == nil {
		return e
	}
	e.Text = ""
	_ = json.Unmarshal(raw, &e)
	return e
}

// Normalize flattens the notes to a single display string. Structured
// notes contribute their exercise or text field; entries with neither
// fall back to their raw JSON rendering.
func (n *CoachingNotes) Normalize() string {
	if n == nil {
		return ""
	}
	if n.kind == notesString {
		return n.text
	}
	parts := make([]string, 0, len(n.notes))
	for _, e := range n.notes {
		switch {
		case e.Exercise != "":
			parts = append(parts, e.Exercise)
		case e.Text != "":
			parts = append(parts, e.Text)
		default:
			parts = append(parts, string(e.raw))
		}
	}
	return strings.Join(parts, " ")
}

// FlexInt decodes a JSON number, numeric string, or anything else into an
// int, defaulting to zero instead of failing. Nutrition submissions arrive
// from a free-form form, so invalid values must not reject the update.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), "\"")
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		// Tolerate decimals like "120.5" by truncating.
		fv, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			*f = 0
			return nil
		}
		v = int(fv)
	}
	*f = FlexInt(v)
	return nil
}
