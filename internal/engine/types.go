package engine

// --- Tool input types ---

type GetTranscriptInput struct {
	URL                string   `json:"url" jsonschema:"YouTube video URL or bare 11-character video ID"`
	Languages          []string `json:"languages,omitempty" jsonschema:"Preferred languages in priority order, e.g. [\"en\", \"de\"]. Defaults to English."`
	Format             string   `json:"format,omitempty" jsonschema:"Output format: text, json, pretty, webvtt, srt. Default: text"`
	PreserveFormatting bool     `json:"preserve_formatting,omitempty" jsonschema:"Keep inline HTML formatting tags in caption text"`
}

type ListTranscriptsInput struct {
	URL string `json:"url" jsonschema:"YouTube video URL or bare 11-character video ID"`
}

type SummarizeTranscriptInput struct {
	URL       string   `json:"url" jsonschema:"YouTube video URL or bare 11-character video ID"`
	Prompt    string   `json:"prompt,omitempty" jsonschema:"Custom summarization instructions. If omitted, a default summary prompt is used."`
	Languages []string `json:"languages,omitempty" jsonschema:"Preferred languages in priority order, e.g. [\"en\", \"de\"]. Defaults to English."`
}
