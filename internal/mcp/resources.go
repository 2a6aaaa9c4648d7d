package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) dailyBriefing(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	badge, err := h.ds.CycleBadge(ctx)
	if err != nil {
		return nil, err
	}

	notes, err := h.ds.CoachingNotes(ctx)
	if err != nil {
		h.log.Warn("daily_briefing: notes failed", "error", err)
	}

	workout, err := h.ds.Workout(ctx, "")
	if err != nil {
		h.log.Warn("daily_briefing: workout failed", "error", err)
	}

	recovery, err := h.ds.Recovery(ctx)
	if err != nil {
		h.log.Warn("daily_briefing: recovery failed", "error", err)
	}

	progress, err := h.ds.Progress(ctx)
	if err != nil {
		h.log.Warn("daily_briefing: progress failed", "error", err)
	}

	briefing := map[string]any{
		"cycle_phase":    badge,
		"coaching_notes": notes,
		"workout":        workout,
		"recovery":       recovery.Metrics,
		"progress":       progress,
	}

	data, err := json.Marshal(briefing)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
