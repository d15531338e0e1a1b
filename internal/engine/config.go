package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	DefaultLanguages   []string // preference list used when a tool call omits languages
	FetchTimeout       time.Duration
	MaxTranscriptChars int // rune cap for transcript text in summarize payloads (0 = no cap)
	HTTPClient         *http.Client
}

var cfg Config

// Cfg exposes the engine configuration for the youtube sub-package.
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
