// Package transcriptserver registers the YouTube transcript MCP tools:
// get_transcript, list_transcripts, summarize_transcript.
package transcriptserver

import (
	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all transcript tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerGetTranscript(server)
	registerListTranscripts(server)
	registerSummarizeTranscript(server)
}

// textResult wraps a string as an unstructured tool result.
func textResult(s string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: s}},
	}
}

// normLangs applies the configured default when the caller omits languages.
func normLangs(langs []string) []string {
	if len(langs) == 0 {
		return engine.Cfg.DefaultLanguages
	}
	return langs
}
