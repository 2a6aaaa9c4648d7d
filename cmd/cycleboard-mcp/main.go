// Command cycleboard-mcp runs the MCP server on stdio, proxying tool calls
// to a running CycleBoard instance over its REST API. Point AI assistants at
// this binary to read the dashboard and mark exercises complete.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/claude/cycleboard/internal/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "base URL of the CycleBoard server")
	flag.Parse()

	// stdout carries the MCP protocol stream, so logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ds := mcp.NewHTTPClient(*serverURL)
	s := mcp.New(ds, Version, log)

	log.Info("MCP server starting", "server", *serverURL)
	if err := server.ServeStdio(s); err != nil {
		log.Error("MCP server stopped", "error", err)
		os.Exit(1)
	}
}
