package transcriptserver

import (
	"context"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/engine/youtube"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerSummarizeTranscript(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "summarize_transcript",
		Description: "Fetch a YouTube video's transcript and return it paired with summarization instructions. No summarization happens server-side — the calling LLM uses the returned instructions and transcript to produce the summary.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.SummarizeTranscriptInput) (*mcp.CallToolResult, any, error) {
		videoID, err := youtube.ExtractVideoID(input.URL)
		if err != nil {
			return textResult(errorText(err, "")), nil, nil
		}

		transcript, err := youtube.Fetch(ctx, videoID, normLangs(input.Languages))
		if err != nil {
			return textResult(errorText(err, videoID)), nil, nil
		}

		text, err := youtube.Render(transcript, youtube.FormatText, false)
		if err != nil {
			return textResult(errorText(err, videoID)), nil, nil
		}

		instructions := input.Prompt
		if instructions == "" {
			instructions = engine.DefaultSummaryPrompt
		}

		track := transcript.Track
		payload := engine.SummaryPayload(instructions, videoID,
			track.LanguageName, track.LanguageCode, track.IsGenerated, text)
		return textResult(payload), nil, nil
	})
}
