package youtube

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// Track describes one available caption track for a video.
// Read-only snapshot fetched per request, never cached across calls.
type Track struct {
	LanguageCode   string `json:"language_code"`
	LanguageName   string `json:"language_name"`
	IsGenerated    bool   `json:"is_generated"`
	IsTranslatable bool   `json:"is_translatable"`

	// translateTo is set by the resolver when this track was accepted as a
	// translation source; the cue fetch appends it as tlang.
	translateTo string
	baseURL     string
}

// ytInitialPlayerResponseMarker marks the start of the player response JSON in watch page HTML.
const ytInitialPlayerResponseMarker = "ytInitialPlayerResponse = "

// ListTracks returns all caption tracks for a video.
// Primary:  scrape watch page ytInitialPlayerResponse (works from any IP)
// Fallback: ANDROID Innertube /player (works from non-blocked IPs)
func ListTracks(ctx context.Context, videoID string) ([]Track, error) {
	engine.IncrTrackListRequests()

	tracks, scrapeErr := listTracksViaPageScrape(ctx, videoID)
	if scrapeErr == nil {
		return tracks, nil
	}
	if isTerminal(scrapeErr) {
		return nil, scrapeErr
	}
	slog.Warn("youtube: page scrape failed, trying player",
		slog.String("id", videoID), slog.Any("err", scrapeErr))

	engine.IncrPlayerFallbacks()
	tracks, playerErr := listTracksViaPlayer(ctx, videoID)
	if playerErr == nil {
		return tracks, nil
	}
	if isTerminal(playerErr) {
		return nil, playerErr
	}
	engine.IncrProviderErrors()
	return nil, &ProviderError{VideoID: videoID, Err: playerErr}
}

// isTerminal reports whether err is a definitive provider answer that no
// fallback strategy can change.
func isTerminal(err error) bool {
	switch err.(type) {
	case *VideoUnavailableError, *TranscriptsDisabledError:
		return true
	}
	return false
}

func listTracksViaPageScrape(ctx context.Context, videoID string) ([]Track, error) {
	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, watchEndpoint+videoID, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", engine.RandomUserAgent())
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 6*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read watch page: %w", err)
	}

	idx := strings.Index(string(body), ytInitialPlayerResponseMarker)
	if idx < 0 {
		return nil, fmt.Errorf("ytInitialPlayerResponse not found in watch page")
	}
	jsonData := extractJSON(body[idx+len(ytInitialPlayerResponseMarker):])
	if jsonData == nil {
		return nil, fmt.Errorf("failed to extract ytInitialPlayerResponse JSON")
	}
	return tracksFromPlayerResponse(jsonData, videoID)
}

func listTracksViaPlayer(ctx context.Context, videoID string) ([]Track, error) {
	playerResp, err := postPlayer(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return tracksFromPlayer(playerResp, videoID)
}

// tracksFromPlayer maps a decoded player response to the Track list, turning
// playability failures into the typed conditions the resolver distinguishes.
func tracksFromPlayer(playerResp *innertubePlayerResp, videoID string) ([]Track, error) {
	if ps := playerResp.PlayabilityStatus; ps != nil {
		switch ps.Status {
		case "ERROR":
			return nil, &VideoUnavailableError{VideoID: videoID, Reason: ps.Reason}
		case "LOGIN_REQUIRED", "UNPLAYABLE":
			// Not definitive: another strategy may still see the video.
			reason := ps.Reason
			if reason == "" {
				reason = ps.Status
			}
			return nil, fmt.Errorf("player: %s", reason)
		}
	}
	if playerResp.Captions == nil {
		return nil, &TranscriptsDisabledError{VideoID: videoID}
	}
	raw := playerResp.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(raw) == 0 {
		return nil, &TranscriptsDisabledError{VideoID: videoID}
	}

	tracks := make([]Track, 0, len(raw))
	for _, ct := range raw {
		tracks = append(tracks, Track{
			LanguageCode:   ct.LanguageCode,
			LanguageName:   ct.Name.String(),
			IsGenerated:    ct.Kind == "asr",
			IsTranslatable: ct.IsTranslatable,
			baseURL:        ct.BaseURL,
		})
	}
	return tracks, nil
}

func tracksFromPlayerResponse(jsonData []byte, videoID string) ([]Track, error) {
	playerResp, err := decodePlayerResponse(jsonData)
	if err != nil {
		return nil, err
	}
	return tracksFromPlayer(playerResp, videoID)
}
