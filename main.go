// go_transcript — YouTube transcript MCP server.
//
// Exposes three MCP tools: get_transcript, list_transcripts, summarize_transcript.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/transcriptserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	initEngine()

	slog.Info("starting go_transcript",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_transcript",
		Version: version,
	}, nil)

	transcriptserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 3))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_transcript",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	fetchTimeout := env.Duration("FETCH_TIMEOUT", 15*time.Second)
	engine.Init(engine.Config{
		DefaultLanguages:   env.List("DEFAULT_LANGUAGES", "en"),
		FetchTimeout:       fetchTimeout,
		MaxTranscriptChars: env.Int("MAX_TRANSCRIPT_CHARS", 0),
		HTTPClient: &http.Client{
			Timeout: fetchTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	})
}
