package transcriptserver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine/youtube"
)

// errorText converts a pipeline failure into the diagnostic sentence returned
// as the tool's text result. Tools never surface pipeline failures as protocol
// errors — the caller inspects the returned string and decides whether to
// retry with different parameters or give up.
func errorText(err error, videoID string) string {
	var invalidRef *youtube.InvalidReferenceError
	if errors.As(err, &invalidRef) {
		return fmt.Sprintf("Error: Could not extract a YouTube video ID from: %s", invalidRef.Input)
	}

	var disabled *youtube.TranscriptsDisabledError
	if errors.As(err, &disabled) {
		return fmt.Sprintf("Error: Transcripts are disabled for video '%s'.", disabled.VideoID)
	}

	var noLang *youtube.NoMatchingLanguageError
	if errors.As(err, &noLang) {
		return fmt.Sprintf(
			"Error: No transcript found for video '%s' in language(s): %s. Available languages: %s. Use list_transcripts to see available languages.",
			noLang.VideoID, strings.Join(noLang.Requested, ", "), strings.Join(noLang.Available, ", "))
	}

	var unavailable *youtube.VideoUnavailableError
	if errors.As(err, &unavailable) {
		return fmt.Sprintf("Error: Video '%s' is unavailable.", unavailable.VideoID)
	}

	var badFormat *youtube.UnsupportedFormatError
	if errors.As(err, &badFormat) {
		return fmt.Sprintf("Error: Unknown format '%s'. Choose from: %s.",
			badFormat.Format, strings.Join(youtube.Formats, ", "))
	}

	return fmt.Sprintf("Error fetching transcript for '%s': %v", videoID, err)
}
