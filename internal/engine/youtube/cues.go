package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// Cue is one caption unit: start offset and duration in seconds, plus text
// that may contain inline formatting markup.
type Cue struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
}

// FetchCues fetches and parses the timedtext XML for a caption track.
// For tracks accepted as translation sources the provider synthesizes the
// target language server-side via the tlang parameter.
func FetchCues(ctx context.Context, videoID string, track Track) ([]Cue, error) {
	engine.IncrCueFetchRequests()

	cueURL := track.baseURL
	if track.translateTo != "" {
		engine.IncrTranslatedFetches()
		cueURL += "&tlang=" + track.translateTo
	}

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, cueURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", engine.UserAgentBot)
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		engine.IncrProviderErrors()
		return nil, &ProviderError{VideoID: videoID, Err: fmt.Errorf("fetch timedtext: %w", err)}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		engine.IncrProviderErrors()
		return nil, &ProviderError{VideoID: videoID, Err: fmt.Errorf("timedtext: HTTP %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2*1024*1024))
	if err != nil {
		engine.IncrProviderErrors()
		return nil, &ProviderError{VideoID: videoID, Err: fmt.Errorf("read timedtext: %w", err)}
	}

	cues, err := parseTimedText(body)
	if err != nil {
		engine.IncrProviderErrors()
		return nil, &ProviderError{VideoID: videoID, Err: err}
	}
	return cues, nil
}

// parseTimedText decodes timedtext XML into cues. Entities inside the
// chardata are escaped a second time by the provider, so the XML decode is
// followed by an HTML unescape.
func parseTimedText(body []byte) ([]Cue, error) {
	var tt ytTimedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}

	cues := make([]Cue, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		text := html.UnescapeString(line.Text)
		if strings.TrimSpace(text) == "" {
			continue
		}
		cues = append(cues, Cue{
			Start:    line.Start,
			Duration: line.Dur,
			Text:     text,
		})
	}
	return cues, nil
}
