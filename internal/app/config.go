package app

import "time"

// Config carries everything the pipeline needs. It is constructed once in
// main from flags, environment, and an optional config file, then passed
// explicitly into the components that need it; there is no process-wide
// singleton.
type Config struct {
	// URLs is the ordered list of documentation URLs to process.
	URLs []string

	// OutputDir is where improved documents are written. It must already
	// exist; empty means the current directory.
	OutputDir string

	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// MaxOutputTokens bounds each model completion. Zero means the default.
	MaxOutputTokens int
	// MaxContentChars caps how much fetched content is embedded in a prompt.
	// Zero means the default.
	MaxContentChars int

	// LanguageHint, when set, asks the model to respond in that language.
	LanguageHint string
	// DetectLanguage derives a per-document hint from the content when no
	// explicit LanguageHint is configured.
	DetectLanguage bool

	FetchTimeout time.Duration

	// EnablePDF additionally renders each improved document to PDF.
	EnablePDF bool

	Verbose bool
}
