// Package mcp exposes the dashboard to AI assistants over the Model
// Context Protocol: read tools for the workout, cycle, recovery,
// nutrition, and progress views, one mutation tool for completing
// exercises, and a daily briefing resource.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("CycleBoard", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("CycleBoard fitness dashboard server. Query the weekly workout plan, menstrual cycle phase, recovery metrics, nutrition log, and training progress, or mark exercises complete."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetWorkout, Handler: h.getWorkout},
		server.ServerTool{Tool: toolGetCyclePhase, Handler: h.getCyclePhase},
		server.ServerTool{Tool: toolGetCoachingNotes, Handler: h.getCoachingNotes},
		server.ServerTool{Tool: toolGetRecovery, Handler: h.getRecovery},
		server.ServerTool{Tool: toolGetProgress, Handler: h.getProgress},
		server.ServerTool{Tool: toolGetNutrition, Handler: h.getNutrition},
		server.ServerTool{Tool: toolCompleteExercise, Handler: h.completeExercise},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resDailyBriefing, Handler: h.dailyBriefing},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resDailyBriefing = mcp.NewResource(
	"cycleboard://daily_briefing",
	"Daily Briefing",
	mcp.WithResourceDescription("Today's cycle phase, coaching notes, workout, recovery metrics, and completion progress in one document"),
	mcp.WithMIMEType("application/json"),
)
