package youtube

import (
	"fmt"
	"strings"
)

// Failure taxonomy for the transcript pipeline. Every stage converts its own
// failure into one of these types; the tool layer branches with errors.As and
// renders them as diagnostic strings instead of protocol errors.

// InvalidReferenceError — the normalizer could not extract a video ID.
type InvalidReferenceError struct {
	Input string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("could not extract a YouTube video ID from: %s", e.Input)
}

// VideoUnavailableError — the video itself cannot be found or played.
type VideoUnavailableError struct {
	VideoID string
	Reason  string
}

func (e *VideoUnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("video %q is unavailable: %s", e.VideoID, e.Reason)
	}
	return fmt.Sprintf("video %q is unavailable", e.VideoID)
}

// TranscriptsDisabledError — the video exists but captions are turned off.
type TranscriptsDisabledError struct {
	VideoID string
}

func (e *TranscriptsDisabledError) Error() string {
	return fmt.Sprintf("transcripts are disabled for video %q", e.VideoID)
}

// NoMatchingLanguageError — no track matched any requested language tag.
// Carries the available tags so the caller can retry with a corrected list.
type NoMatchingLanguageError struct {
	VideoID   string
	Requested []string
	Available []string
}

func (e *NoMatchingLanguageError) Error() string {
	return fmt.Sprintf("no transcript for video %q in language(s): %s (available: %s)",
		e.VideoID, strings.Join(e.Requested, ", "), strings.Join(e.Available, ", "))
}

// UnsupportedFormatError — the render format selector is not one of the known set.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unknown format %q, choose from: %s", e.Format, strings.Join(Formats, ", "))
}

// ProviderError — opaque network or provider failure.
type ProviderError struct {
	VideoID string
	Err     error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error for video %q: %v", e.VideoID, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
