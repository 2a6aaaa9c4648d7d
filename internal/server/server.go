package server

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/claude/cycleboard/internal/chat"
	"github.com/claude/cycleboard/internal/live"
	"github.com/claude/cycleboard/internal/state"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store   *state.Store
	session *chat.Session
	gen     chat.Generator
	fetcher *live.Fetcher
	log     *slog.Logger
	router  chi.Router
}

// New creates a new Server with all routes configured.
func New(store *state.Store, session *chat.Session, gen chat.Generator, fetcher *live.Fetcher, log *slog.Logger) *Server {
	s := &Server{
		store:   store,
		session: session,
		gen:     gen,
		fetcher: fetcher,
		log:     log,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Collaborator pass-through endpoints consumed by the hosted page.
	s.router.Get("/api/data", s.handleData)
	s.router.Post("/api/chat", s.handleChatProxy)

	// View endpoints: pure projections of the current state.
	s.router.Route("/api/v1/views", func(r chi.Router) {
		r.Get("/cycle", s.handleViewCycle)
		r.Get("/days", s.handleViewDays)
		r.Get("/notes", s.handleViewNotes)
		r.Get("/workout", s.handleViewWorkout)
		r.Get("/nutrition", s.handleViewNutrition)
		r.Get("/recovery", s.handleViewRecovery)
		r.Get("/progress", s.handleViewProgress)
	})

	// Mutation endpoints: each applies one named state operation and
	// returns the view models it affects.
	s.router.Route("/api/v1/state", func(r chi.Router) {
		r.Post("/tab", s.handleSetTab)
		r.Post("/day", s.handleSelectDay)
		r.Post("/complete", s.handleComplete)
		r.Post("/nutrition", s.handleNutrition)
		r.Post("/log", s.handleLogSet)
	})

	// Coach chat session.
	s.router.Post("/api/v1/chat/messages", s.handleChatMessage)
	s.router.Get("/api/v1/chat/transcript", s.handleChatTranscript)
}

// SetMCP mounts the MCP streamable HTTP transport at /mcp.
func (s *Server) SetMCP(h http.Handler) {
	s.router.Handle("/mcp", h)
}

// SetFrontend mounts the page assets filesystem. Unmatched routes serve
// index.html for client-side routing.
func (s *Server) SetFrontend(webFS fs.FS) {
	fileServer := http.FileServerFS(webFS)

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		f, err := webFS.Open(r.URL.Path[1:]) // strip leading /
		if err == nil {
			f.Close()
			fileServer.ServeHTTP(w, r)
			return
		}
		r.URL.Path = "/"
		fileServer.ServeHTTP(w, r)
	})
}
