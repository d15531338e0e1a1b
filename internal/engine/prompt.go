package engine

import "fmt"

// Summarization prompt templates — data only, no logic.

// DefaultSummaryPrompt is used when a summarize_transcript call carries no custom prompt.
const DefaultSummaryPrompt = "Summarize the following YouTube video transcript. " +
	"Provide a concise overview of the main topics, key points, and conclusions."

// summaryPayload — instructions, track metadata, and transcript text for the client LLM.
// Args: instructions, video ID, language name, language code, track type, transcript text.
const summaryPayload = `[INSTRUCTIONS]
%s

[METADATA]
Video ID: %s
Language: %s (%s)
Type: %s

[TRANSCRIPT]
%s`

// SummaryPayload assembles the summarize_transcript result. No summarization happens
// here — the caller's LLM does that with the returned instructions.
func SummaryPayload(instructions, videoID, language, languageCode string, generated bool, text string) string {
	kind := "manual"
	if generated {
		kind = "auto-generated"
	}
	if cfg.MaxTranscriptChars > 0 {
		text = TruncateRunes(text, cfg.MaxTranscriptChars, "\n[transcript truncated]")
	}
	return fmt.Sprintf(summaryPayload, instructions, videoID, language, languageCode, kind, text)
}
