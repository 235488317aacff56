package llmprovider

import (
	"context"
	"net/http"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIAdapter talks to any OpenAI-compatible chat completions endpoint.
type OpenAIAdapter struct {
	client openai.Client
	model  string
}

// NewOpenAIAdapter creates a new OpenAI-compatible adapter.
// The SDK's own retries are disabled; retrying is the Manager's job.
func NewOpenAIAdapter(apiKey, baseURL, model string, httpClient *http.Client) *OpenAIAdapter {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}
	return &OpenAIAdapter{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		msgs = append(msgs, openai.SystemMessage(req.SystemInstruction.Text()))
	}
	for _, m := range req.Messages {
		switch m.Role {
		case RoleAssistant:
			msgs = append(msgs, openai.ChatCompletionMessageParamOfAssistant(m.Text()))
		case RoleSystem:
			msgs = append(msgs, openai.SystemMessage(m.Text()))
		default:
			msgs = append(msgs, openai.UserMessage(m.Text()))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(a.model),
		Messages: msgs,
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	resp, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, &ProviderError{Provider: a.Name(), Err: ErrEmptyResponse}
	}

	model := resp.Model
	if model == "" {
		model = a.model
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: resp.Choices[0].Message.Content}}},
		ProviderName: a.Name(),
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:  int(resp.Usage.TotalTokens),
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.model
}
