package transcriptserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/engine/youtube"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerListTranscripts(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_transcripts",
		Description: "List available transcript languages for a YouTube video: language tag, display name, manual vs auto-generated, and whether the track can be translated on demand.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.ListTranscriptsInput) (*mcp.CallToolResult, any, error) {
		videoID, err := youtube.ExtractVideoID(input.URL)
		if err != nil {
			return textResult(errorText(err, "")), nil, nil
		}

		tracks, err := youtube.ListTracks(ctx, videoID)
		if err != nil {
			return textResult(errorText(err, videoID)), nil, nil
		}

		return textResult(renderTrackList(videoID, tracks)), nil, nil
	})
}

func renderTrackList(videoID string, tracks []youtube.Track) string {
	if len(tracks) == 0 {
		return fmt.Sprintf("No transcripts found for video '%s'.", videoID)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Available transcripts for video '%s':\n", videoID)
	for _, t := range tracks {
		kind := "manual"
		if t.IsGenerated {
			kind = "auto-generated"
		}
		translatable := "not translatable"
		if t.IsTranslatable {
			translatable = "translatable"
		}
		fmt.Fprintf(&sb, "\n  - %s (%s) [%s, %s]", t.LanguageName, t.LanguageCode, kind, translatable)
	}
	return sb.String()
}
