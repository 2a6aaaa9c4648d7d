package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/claude/cycleboard/internal/chat"
	"github.com/claude/cycleboard/internal/config"
	"github.com/claude/cycleboard/internal/cycle"
	"github.com/claude/cycleboard/internal/live"
	"github.com/claude/cycleboard/internal/mcp"
	"github.com/claude/cycleboard/internal/models"
	"github.com/claude/cycleboard/internal/plan"
	"github.com/claude/cycleboard/internal/server"
	"github.com/claude/cycleboard/internal/state"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// seedRecovery is shown until the first live feed merge overlays real
// wearable data.
var seedRecovery = models.RecoveryMetrics{
	SleepScore:    81,
	SleepHours:    7.7,
	SleepQuality:  "Excellent",
	BodyBattery:   23,
	HRVStatus:     "BALANCED",
	RecoveryReady: true,
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("CycleBoard starting", "version", Version)

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Seed state from the built-in plan; the live feed overlays on top.
	phase := models.CyclePhase{Phase: cycle.PhaseFollicular, Day: 1}
	if cfg.Profile.PeriodStart != "" {
		start, err := cfg.Profile.PeriodStartDate()
		if err != nil {
			log.Error("invalid period start", "error", err)
			os.Exit(1)
		}
		phase = cycle.ComputePhase(start, cfg.Profile.CycleLengthDays, time.Now())
	}

	store := state.New(state.Seed{
		Plan:         plan.Default(),
		CyclePhase:   phase,
		Notes:        models.NewCoachingNotes(plan.DefaultNotes),
		Recovery:     seedRecovery,
		CurrentWeek:  plan.DefaultWeek,
		Weekdays:     plan.Weekdays(),
		MaxChatTurns: cfg.Chat.MaxTurns,
	})

	// Live feed fetcher
	fetcher := live.New(cfg.Upstream.DataURL, cfg.Upstream.Timeout, store, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go fetcher.Run(ctx, cfg.Upstream.RefreshInterval)

	// AI coach
	gen := chat.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
	session := chat.NewSession(store, gen, chat.Profile{
		Name:      cfg.Profile.Name,
		StatsLine: cfg.Profile.StatsLine,
		GymLine:   cfg.Profile.GymLine,
		GoalsLine: cfg.Profile.GoalsLine,
	}, log)

	// Create server
	srv := server.New(store, session, gen, fetcher, log)

	// MCP over streamable HTTP, backed by the in-process store.
	mcpSrv := mcp.New(mcp.NewLocal(store), Version, log)
	srv.SetMCP(mcpserver.NewStreamableHTTPServer(mcpSrv))

	// Serve page assets when configured
	if cfg.Web.Dir != "" {
		srv.SetFrontend(os.DirFS(cfg.Web.Dir))
		log.Info("serving page assets", "dir", cfg.Web.Dir)
	}

	// Start server — tsnet or plain HTTP
	var listener net.Listener
	var tsServer *tsnet.Server

	if cfg.Tailscale.Enabled {
		tsServer = &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}
