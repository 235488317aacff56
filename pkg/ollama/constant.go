package ollama

import "time"

const (
	// DefaultModel is the default Ollama model
	DefaultModel = "llama3.2"

	// DefaultBaseURL is the default local Ollama endpoint
	DefaultBaseURL = "http://localhost:11434"

	// DefaultTimeout is the default HTTP client timeout.
	// Local models can be slow to load on the first request.
	DefaultTimeout = 120 * time.Second

	generatePath = "/api/generate"
)
