package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"adhd-planner/pkg/gemini"
	"adhd-planner/pkg/ollama"
)

// OllamaAdapter adapts pkg/ollama to llmprovider.Provider interface
type OllamaAdapter struct {
	client ollama.IOllama
}

// NewOllamaAdapter creates a new Ollama adapter
func NewOllamaAdapter(client ollama.IOllama) *OllamaAdapter {
	return &OllamaAdapter{client: client}
}

// GenerateContent implements Provider interface.
// Ollama's generate endpoint is single-turn, so conversation turns are folded into one prompt.
func (a *OllamaAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	ollamaReq := &ollama.Request{
		Prompt:      flattenMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		ollamaReq.System = req.SystemInstruction.Text()
	}

	resp, err := a.client.Generate(ctx, ollamaReq)
	if err != nil {
		if errors.Is(err, ollama.ErrMissingResponse) {
			return nil, &ProviderError{Provider: a.Name(), Err: ErrEmptyResponse}
		}
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: resp.Text}}},
		ProviderName: a.Name(),
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OllamaAdapter) Name() string {
	return "ollama"
}

// Model returns model name
func (a *OllamaAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Messages:    convertToGeminiContents(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = req.SystemInstruction.Text()
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	content := convertFromGeminiContent(resp.Content)
	if content.Text() == "" {
		return nil, &ProviderError{
			Provider: a.Name(),
			Err:      fmt.Errorf("%w (finish reason %q)", ErrEmptyResponse, resp.FinishReason),
		}
	}

	return &Response{
		Content:      content,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i, msg := range msgs {
		role := msg.Role
		if role == RoleAssistant {
			role = "model"
		}
		parts := make([]gemini.Part, len(msg.Parts))
		for j, p := range msg.Parts {
			parts[j] = gemini.Part{Text: p.Text}
		}
		contents[i] = gemini.Content{Role: role, Parts: parts}
	}
	return contents
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: RoleAssistant, Parts: parts}
}

func flattenMessages(msgs []Message) string {
	if len(msgs) == 1 {
		return msgs[0].Text()
	}
	texts := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		if t := msg.Text(); t != "" {
			texts = append(texts, t)
		}
	}
	return strings.Join(texts, "\n\n")
}
