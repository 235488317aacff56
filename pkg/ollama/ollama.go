package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// newOllamaImpl creates a new Ollama implementation
func newOllamaImpl(cfg Config) *ollamaImpl {
	return &ollamaImpl{
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// Generate sends a non-streaming generation request to Ollama
func (o *ollamaImpl) Generate(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(o.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("ollama: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+generatePath, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("ollama: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ollama: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ollama: API error %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return nil, fmt.Errorf("ollama: failed to decode response: %w", err)
	}
	if genResp.Error != "" {
		return nil, fmt.Errorf("ollama: %s", genResp.Error)
	}
	if genResp.Response == nil || *genResp.Response == "" {
		return nil, ErrMissingResponse
	}

	return o.transformResponse(&genResp), nil
}

// Model returns the model being used
func (o *ollamaImpl) Model() string {
	return o.model
}

func (o *ollamaImpl) transformRequest(req *Request) generateRequest {
	genReq := generateRequest{
		Model:  o.model,
		Prompt: req.Prompt,
		System: req.System,
		Stream: false,
	}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		genReq.Options = &generateOptions{
			Temperature: req.Temperature,
			NumPredict:  req.MaxTokens,
		}
	}
	return genReq
}

func (o *ollamaImpl) transformResponse(resp *generateResponse) *Response {
	model := resp.Model
	if model == "" {
		model = o.model
	}
	return &Response{
		Text:  *resp.Response,
		Model: model,
		Usage: &Usage{
			InputTokens:  resp.PromptEvalCount,
			OutputTokens: resp.EvalCount,
			TotalTokens:  resp.PromptEvalCount + resp.EvalCount,
		},
		TotalDuration: time.Duration(resp.TotalDuration),
	}
}
