package gateway

// Config holds generation settings per operation class.
type Config struct {
	// Extraction drives full-document transformation and needs a
	// large output window.
	ExtractionMaxTokens int

	// Analysis covers subject profiling and course intelligence.
	AnalysisMaxTokens int

	// Chat covers Q&A and concept simplification.
	ChatMaxTokens int

	// Generation covers quizzes and visualizations.
	GenerationMaxTokens int

	Temperature float64
}

// DefaultConfig returns sensible defaults for content generation.
func DefaultConfig() Config {
	return Config{
		ExtractionMaxTokens: 32768,
		AnalysisMaxTokens:   4096,
		ChatMaxTokens:       2048,
		GenerationMaxTokens: 4096,
		Temperature:         0.4,
	}
}
