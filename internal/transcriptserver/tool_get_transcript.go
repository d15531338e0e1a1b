package transcriptserver

import (
	"context"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/engine/youtube"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerGetTranscript(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_transcript",
		Description: "Fetch a YouTube video's transcript. Accepts a video URL or bare video ID, a language priority list (default English), and an output format: text, json, pretty, webvtt, srt. On failure returns a descriptive error string, never a protocol fault.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.GetTranscriptInput) (*mcp.CallToolResult, any, error) {
		videoID, err := youtube.ExtractVideoID(input.URL)
		if err != nil {
			return textResult(errorText(err, "")), nil, nil
		}

		transcript, err := youtube.Fetch(ctx, videoID, normLangs(input.Languages))
		if err != nil {
			return textResult(errorText(err, videoID)), nil, nil
		}

		out, err := youtube.Render(transcript, input.Format, input.PreserveFormatting)
		if err != nil {
			return textResult(errorText(err, videoID)), nil, nil
		}
		return textResult(out), nil, nil
	})
}
