package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

const sampleTimedText = `<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0.08" dur="2.36">[Music]</text>
  <text start="2.44" dur="3.2">hello &amp;amp; welcome to the show</text>
  <text start="5.64" dur="0">it&amp;#39;s a point-in-time cue</text>
  <text start="9.1" dur="1.5">   </text>
</transcript>`

func TestParseTimedText(t *testing.T) {
	cues, err := parseTimedText([]byte(sampleTimedText))
	if err != nil {
		t.Fatalf("parseTimedText() error: %v", err)
	}
	if len(cues) != 3 {
		t.Fatalf("cue count = %d, want 3 (blank cue dropped)", len(cues))
	}

	if cues[0].Start != 0.08 || cues[0].Duration != 2.36 {
		t.Errorf("cue 0 timing = (%v, %v), want (0.08, 2.36)", cues[0].Start, cues[0].Duration)
	}
	if cues[0].Text != "[Music]" {
		t.Errorf("cue 0 text = %q", cues[0].Text)
	}
	// Provider double-escapes entities; both decode steps must apply.
	if cues[1].Text != "hello & welcome to the show" {
		t.Errorf("cue 1 text = %q, want %q", cues[1].Text, "hello & welcome to the show")
	}
	if cues[2].Text != "it's a point-in-time cue" {
		t.Errorf("cue 2 text = %q, want %q", cues[2].Text, "it's a point-in-time cue")
	}
	if cues[2].Duration != 0 {
		t.Errorf("cue 2 duration = %v, want 0", cues[2].Duration)
	}
}

func TestParseTimedTextInvalid(t *testing.T) {
	if _, err := parseTimedText([]byte("not xml at all <")); err == nil {
		t.Fatal("parseTimedText() succeeded on invalid input")
	}
}

func TestFetchCues(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(sampleTimedText))
	}))
	defer srv.Close()
	engine.Init(engine.Config{HTTPClient: srv.Client()})

	track := Track{LanguageCode: "en", baseURL: srv.URL + "/api/timedtext?v=dQw4w9WgXcQ&lang=en"}
	cues, err := FetchCues(context.Background(), "dQw4w9WgXcQ", track)
	if err != nil {
		t.Fatalf("FetchCues() error: %v", err)
	}
	if len(cues) != 3 {
		t.Errorf("cue count = %d, want 3", len(cues))
	}
	if gotPath != "/api/timedtext?v=dQw4w9WgXcQ&lang=en" {
		t.Errorf("request path = %q", gotPath)
	}
}

func TestFetchCuesTranslated(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(sampleTimedText))
	}))
	defer srv.Close()
	engine.Init(engine.Config{HTTPClient: srv.Client()})

	track := Track{LanguageCode: "de", baseURL: srv.URL + "/api/timedtext?lang=en", translateTo: "de"}
	if _, err := FetchCues(context.Background(), "dQw4w9WgXcQ", track); err != nil {
		t.Fatalf("FetchCues() error: %v", err)
	}
	if gotQuery != "lang=en&tlang=de" {
		t.Errorf("query = %q, want tlang appended", gotQuery)
	}
}

func TestFetchCuesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()
	engine.Init(engine.Config{HTTPClient: srv.Client()})

	track := Track{LanguageCode: "en", baseURL: srv.URL + "/api/timedtext"}
	_, err := FetchCues(context.Background(), "dQw4w9WgXcQ", track)
	if err == nil {
		t.Fatal("FetchCues() succeeded, want ProviderError")
	}
	if _, ok := err.(*ProviderError); !ok {
		t.Errorf("error = %T, want *ProviderError", err)
	}
}
