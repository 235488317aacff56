package ollama

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Config holds Ollama client configuration
type Config struct {
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// Validate fills defaults and checks the configuration
func (c *Config) Validate() error {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("ollama: invalid base URL %q", c.BaseURL)
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// ollamaImpl is the internal implementation of IOllama
type ollamaImpl struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// Request represents a generation request
type Request struct {
	Prompt      string
	System      string
	Temperature float64
	MaxTokens   int
}

// Response represents a generation response
type Response struct {
	Text          string
	Model         string
	Usage         *Usage
	TotalDuration time.Duration
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Wire types for POST /api/generate
type generateRequest struct {
	Model   string           `json:"model"`
	Prompt  string           `json:"prompt"`
	System  string           `json:"system,omitempty"`
	Stream  bool             `json:"stream"`
	Options *generateOptions `json:"options,omitempty"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type generateResponse struct {
	Model           string  `json:"model"`
	CreatedAt       string  `json:"created_at"`
	Response        *string `json:"response"`
	Done            bool    `json:"done"`
	TotalDuration   int64   `json:"total_duration"`
	PromptEvalCount int     `json:"prompt_eval_count"`
	EvalCount       int     `json:"eval_count"`
	Error           string  `json:"error,omitempty"`
}
