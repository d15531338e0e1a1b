package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

const samplePlayerJSON = `{
  "playabilityStatus": {"status": "OK"},
  "captions": {
    "playerCaptionsTracklistRenderer": {
      "captionTracks": [
        {
          "baseUrl": "https://example.com/api/timedtext?lang=fr",
          "name": {"simpleText": "French"},
          "languageCode": "fr",
          "isTranslatable": true
        },
        {
          "baseUrl": "https://example.com/api/timedtext?lang=en&kind=asr",
          "name": {"runs": [{"text": "English (auto-generated)"}]},
          "languageCode": "en",
          "kind": "asr",
          "isTranslatable": true
        }
      ]
    }
  }
}`

func TestTracksFromPlayerResponse(t *testing.T) {
	tracks, err := tracksFromPlayerResponse([]byte(samplePlayerJSON), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("tracksFromPlayerResponse() error: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("track count = %d, want 2", len(tracks))
	}

	fr := tracks[0]
	if fr.LanguageCode != "fr" || fr.LanguageName != "French" || fr.IsGenerated || !fr.IsTranslatable {
		t.Errorf("fr track = %+v", fr)
	}
	en := tracks[1]
	if en.LanguageCode != "en" || !en.IsGenerated {
		t.Errorf("en track = %+v", en)
	}
	if en.LanguageName != "English (auto-generated)" {
		t.Errorf("runs-shaped name = %q", en.LanguageName)
	}
}

func TestTracksFromPlayerResponseUnavailable(t *testing.T) {
	data := []byte(`{"playabilityStatus": {"status": "ERROR", "reason": "Video unavailable"}}`)
	_, err := tracksFromPlayerResponse(data, "gone0000000")
	if err == nil {
		t.Fatal("want VideoUnavailableError")
	}
	if _, ok := err.(*VideoUnavailableError); !ok {
		t.Errorf("error = %T, want *VideoUnavailableError", err)
	}
}

func TestTracksFromPlayerResponseDisabled(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "no captions object", data: `{"playabilityStatus": {"status": "OK"}}`},
		{name: "empty track list", data: `{"playabilityStatus": {"status": "OK"}, "captions": {"playerCaptionsTracklistRenderer": {"captionTracks": []}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tracksFromPlayerResponse([]byte(tt.data), "dQw4w9WgXcQ")
			if err == nil {
				t.Fatal("want TranscriptsDisabledError")
			}
			if _, ok := err.(*TranscriptsDisabledError); !ok {
				t.Errorf("error = %T, want *TranscriptsDisabledError", err)
			}
		})
	}
}

func TestExtractJSONHandlesNestedBracesAndStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trailing script text",
			input: `{"a": {"b": 1}};var next = 2;`,
			want:  `{"a": {"b": 1}}`,
		},
		{
			name:  "braces inside strings",
			input: `{"reason": "use { and } freely", "x": "\"}"};`,
			want:  `{"reason": "use { and } freely", "x": "\"}"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractJSON([]byte(tt.input))
			if string(got) != tt.want {
				t.Errorf("extractJSON() = %q, want %q", got, tt.want)
			}
		})
	}

	if got := extractJSON([]byte(`not json`)); got != nil {
		t.Errorf("extractJSON(non-object) = %q, want nil", got)
	}
	if got := extractJSON([]byte(`{"unterminated": 1`)); got != nil {
		t.Errorf("extractJSON(unterminated) = %q, want nil", got)
	}
}

func TestListTracksViaPageScrape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><script>var ytInitialPlayerResponse = ` + samplePlayerJSON + `;var meta = {};</script></html>`))
	}))
	defer srv.Close()
	engine.Init(engine.Config{HTTPClient: srv.Client()})

	oldWatch := watchEndpoint
	watchEndpoint = srv.URL + "/watch?v="
	defer func() { watchEndpoint = oldWatch }()

	tracks, err := ListTracks(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("ListTracks() error: %v", err)
	}
	if len(tracks) != 2 {
		t.Errorf("track count = %d, want 2", len(tracks))
	}
}

func TestListTracksFallsBackToPlayer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/watch", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>consent wall, no player response here</html>`))
	})
	mux.HandleFunc("/youtubei/v1/player", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePlayerJSON))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	engine.Init(engine.Config{HTTPClient: srv.Client()})

	oldWatch, oldPlayer := watchEndpoint, playerEndpoint
	watchEndpoint = srv.URL + "/watch?v="
	playerEndpoint = srv.URL + "/youtubei/v1/player"
	defer func() { watchEndpoint, playerEndpoint = oldWatch, oldPlayer }()

	tracks, err := ListTracks(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("ListTracks() error: %v", err)
	}
	if len(tracks) != 2 {
		t.Errorf("track count = %d, want 2", len(tracks))
	}
}
