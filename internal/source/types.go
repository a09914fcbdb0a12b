package source

// logEntry represents a single line in a session JSONL file. Only the
// fields the analysis cares about are declared; everything else is
// ignored by the decoder.
type logEntry struct {
	Type      string       `json:"type"`
	Timestamp string       `json:"timestamp,omitempty"`
	Summary   string       `json:"summary,omitempty"`
	Text      string       `json:"text,omitempty"`
	Cwd       string       `json:"cwd,omitempty"`
	CostUSD   *float64     `json:"costUSD,omitempty"`
	Message   *rawMessage  `json:"message,omitempty"`
	Metadata  *rawMetadata `json:"metadata,omitempty"`
}

// rawMetadata carries the title and working-directory hints attached to
// summary entries.
type rawMetadata struct {
	WorkingDirectory string `json:"workingDirectory,omitempty"`
	Cwd              string `json:"cwd,omitempty"`
	ThreadSummary    string `json:"thread_summary,omitempty"`
	Summary          string `json:"summary,omitempty"`
}

// rawMessage represents the assistant's message envelope.
type rawMessage struct {
	Model string    `json:"model"`
	Usage *rawUsage `json:"usage,omitempty"`
}

// rawUsage holds token counts from the API response. Missing fields
// decode to zero, which the cost formula treats as zero tokens.
type rawUsage struct {
	InputTokens              int64 `json:"input_tokens"`
	OutputTokens             int64 `json:"output_tokens"`
	CacheCreationInputTokens int64 `json:"cache_creation_input_tokens"`
	CacheReadInputTokens     int64 `json:"cache_read_input_tokens"`
}

// DiscoveredFile represents a session JSONL file found during scanning.
type DiscoveredFile struct {
	Path      string
	Project   string // enclosing directory name, the grouping key
	SessionID string // file base name without extension
}
