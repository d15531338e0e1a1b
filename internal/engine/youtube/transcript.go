package youtube

import "context"

// Transcript is the ordered cue sequence plus the track it came from.
// Request-scoped: built, rendered once, discarded.
type Transcript struct {
	VideoID string
	Track   Track
	Cues    []Cue
}

// Fetch resolves and fetches the transcript for a video: list the available
// tracks, select one under the language priority policy, fetch its cues.
// Exactly two provider round trips on the happy path.
func Fetch(ctx context.Context, videoID string, langs []string) (*Transcript, error) {
	tracks, err := ListTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}

	track, err := SelectTrack(videoID, tracks, langs)
	if err != nil {
		return nil, err
	}

	cues, err := FetchCues(ctx, videoID, track)
	if err != nil {
		return nil, err
	}

	return &Transcript{VideoID: videoID, Track: track, Cues: cues}, nil
}
