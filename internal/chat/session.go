// Package chat runs the AI coach session: an append-only transcript kept in
// the state store, a per-message context block rebuilt from live state, and
// one upstream generation call per user message.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/claude/cycleboard/internal/models"
	"github.com/claude/cycleboard/internal/state"
)

// FallbackReply is appended verbatim whenever the upstream call fails.
// The raw error is logged, never shown.
const FallbackReply = "Sorry, I couldn't process that. Please try again!"

// ErrBusy is returned when a send arrives while another is in flight.
// Submissions are serialized so typing indicators cannot overlap.
var ErrBusy = fmt.Errorf("chat: a message is already awaiting a response")

// Profile is the fixed coached-athlete context included in every prompt.
type Profile struct {
	Name      string
	StatsLine string
	GymLine   string
	GoalsLine string
}

// Session manages the chat lifecycle: idle -> awaiting-response -> idle per
// message, with the typing flag raised for exactly the in-flight window.
type Session struct {
	mu     sync.Mutex
	typing bool

	store   *state.Store
	gen     Generator
	profile Profile
	now     func() time.Time
	log     *slog.Logger
}

// NewSession creates a chat session on top of the store and generator.
func NewSession(store *state.Store, gen Generator, profile Profile, log *slog.Logger) *Session {
	return &Session{store: store, gen: gen, profile: profile, now: time.Now, log: log}
}

// Typing reports whether a message is awaiting a response.
func (s *Session) Typing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.typing
}

func (s *Session) beginSend() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.typing {
		return ErrBusy
	}
	s.typing = true
	return nil
}

func (s *Session) endSend() {
	s.mu.Lock()
	s.typing = false
	s.mu.Unlock()
}

// Send appends the user message, calls the generator with a freshly built
// context block, and appends the assistant reply, substituting the fallback
// text on any failure. Exactly one assistant entry is appended per accepted
// send, and the typing flag clears on every path.
func (s *Session) Send(ctx context.Context, message string) (models.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return models.ChatMessage{}, fmt.Errorf("chat: empty message")
	}
	if err := s.beginSend(); err != nil {
		return models.ChatMessage{}, err
	}
	defer s.endSend()

	s.store.AppendChatMessage(models.RoleUser, message)

	reply, err := s.gen.Generate(ctx, message, s.BuildContext())
	if err != nil {
		s.log.Warn("chat generation failed, using fallback", "error", err)
		reply = FallbackReply
	}
	return s.store.AppendChatMessage(models.RoleAssistant, reply), nil
}

// BuildContext assembles the coaching context block. Regenerated for every
// message so the weekday, phase, and workout always reflect current state.
func (s *Session) BuildContext() string {
	snap := s.store.Snapshot()
	today := s.now().Weekday().String()

	names := make([]string, 0, len(snap.Plan[today]))
	for _, ex := range snap.Plan[today] {
		names = append(names, ex.Exercise)
	}
	workout := strings.Join(names, ", ")
	if workout == "" {
		workout = "Rest day"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are %s's personal AI fitness coach. Be friendly, concise, and helpful.\n", s.profile.Name)
	b.WriteString("Current context:\n")
	fmt.Fprintf(&b, "- Today is %s\n", today)
	fmt.Fprintf(&b, "- Cycle phase: %s (Day %d)\n", snap.CyclePhase.Phase, snap.CyclePhase.Day)
	fmt.Fprintf(&b, "- Energy level: %s\n", snap.CyclePhase.Energy)
	fmt.Fprintf(&b, "- Training tip: %s\n", snap.CyclePhase.TrainingTip)
	fmt.Fprintf(&b, "- Today's workout: %s\n", workout)
	if s.profile.StatsLine != "" {
		fmt.Fprintf(&b, "- Her stats: %s\n", s.profile.StatsLine)
	}
	if s.profile.GymLine != "" {
		fmt.Fprintf(&b, "- Gym: %s\n", s.profile.GymLine)
	}
	if s.profile.GoalsLine != "" {
		fmt.Fprintf(&b, "- Goals: %s\n", s.profile.GoalsLine)
	}
	b.WriteString("Respond in 2-3 sentences max. Be supportive and knowledgeable.\n")
	return b.String()
}
