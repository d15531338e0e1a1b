package youtube

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// Render formats: a fixed, closed set switched in one function.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatPretty = "pretty"
	FormatWebVTT = "webvtt"
	FormatSRT    = "srt"
)

// Formats lists the supported render formats, in the order reported to callers.
var Formats = []string{FormatText, FormatJSON, FormatPretty, FormatWebVTT, FormatSRT}

// minCueDuration is substituted for zero/absent durations in the timed
// formats so every block stays well-formed (end strictly after start).
const minCueDuration = 0.001

// Render converts a transcript into the requested textual representation.
// When preserveFormatting is false, inline markup tags are stripped from cue
// text — identically across every format that renders raw text.
func Render(t *Transcript, format string, preserveFormatting bool) (string, error) {
	if format == "" {
		format = FormatText
	}
	cues := t.Cues
	if !preserveFormatting {
		cues = stripCueTags(cues)
	}

	switch format {
	case FormatText:
		return renderText(cues), nil
	case FormatJSON:
		return renderJSON(cues)
	case FormatPretty:
		return renderPretty(cues), nil
	case FormatWebVTT:
		return renderWebVTT(cues), nil
	case FormatSRT:
		return renderSRT(cues), nil
	}
	return "", &UnsupportedFormatError{Format: format}
}

func stripCueTags(cues []Cue) []Cue {
	out := make([]Cue, len(cues))
	for i, c := range cues {
		c.Text = engine.StripTags(c.Text)
		out[i] = c
	}
	return out
}

// renderText: one cue per line, chronological order, no timestamps.
func renderText(cues []Cue) string {
	var sb strings.Builder
	for i, c := range cues {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(c.Text)
	}
	return sb.String()
}

// renderJSON: top-level array of {start, duration, text} records.
func renderJSON(cues []Cue) (string, error) {
	data, err := json.Marshal(cues)
	if err != nil {
		return "", fmt.Errorf("marshal cues: %w", err)
	}
	return string(data), nil
}

// renderPretty: human-oriented output grouping cues under mm:ss headers, one
// header per minute of the timeline.
func renderPretty(cues []Cue) string {
	var sb strings.Builder
	lastMinute := -1
	for _, c := range cues {
		minute := int(c.Start) / 60
		if minute != lastMinute {
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			fmt.Fprintf(&sb, "[%02d:%02d]\n", minute, int(c.Start)%60)
			lastMinute = minute
		}
		sb.WriteString(c.Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// renderWebVTT: WEBVTT signature plus one cue block per entry,
// HH:MM:SS.mmm timestamps.
func renderWebVTT(cues []Cue) string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")
	for i, c := range cues {
		if i > 0 {
			sb.WriteByte('\n')
		}
		start, end := cueInterval(c)
		fmt.Fprintf(&sb, "%s --> %s\n%s\n", vttTimestamp(start), vttTimestamp(end), c.Text)
	}
	return sb.String()
}

// renderSRT: 1-based block numbers, HH:MM:SS,mmm timestamps (comma decimal
// separator), blank line between blocks.
func renderSRT(cues []Cue) string {
	var sb strings.Builder
	for i, c := range cues {
		if i > 0 {
			sb.WriteByte('\n')
		}
		start, end := cueInterval(c)
		fmt.Fprintf(&sb, "%d\n%s --> %s\n%s\n", i+1, srtTimestamp(start), srtTimestamp(end), c.Text)
	}
	return sb.String()
}

// cueInterval computes the [start, end] pair from the cue's own offset and
// duration. Overlapping or out-of-order source cues are rendered as-is.
func cueInterval(c Cue) (float64, float64) {
	d := c.Duration
	if d <= 0 {
		d = minCueDuration
	}
	return c.Start, c.Start + d
}

func vttTimestamp(seconds float64) string {
	h, m, s, ms := splitTimestamp(seconds)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

func srtTimestamp(seconds float64) string {
	h, m, s, ms := splitTimestamp(seconds)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

func splitTimestamp(seconds float64) (h, m, s, ms int) {
	if seconds < 0 {
		seconds = 0
	}
	totalMs := int(seconds*1000 + 0.5)
	ms = totalMs % 1000
	totalSec := totalMs / 1000
	s = totalSec % 60
	m = totalSec / 60 % 60
	h = totalSec / 3600
	return h, m, s, ms
}
