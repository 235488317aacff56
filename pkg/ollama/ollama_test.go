package ollama_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"adhd-planner/pkg/ollama"
)

func TestConfigValidate(t *testing.T) {
	cfg := ollama.Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != ollama.DefaultModel {
		t.Errorf("expected default model, got %s", cfg.Model)
	}
	if cfg.BaseURL != ollama.DefaultBaseURL {
		t.Errorf("expected default base URL, got %s", cfg.BaseURL)
	}

	bad := ollama.Config{BaseURL: "localhost:11434"}
	if err := bad.Validate(); err == nil {
		t.Errorf("expected error for base URL without scheme")
	}
}

func TestGenerate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var raw map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if stream, ok := raw["stream"].(bool); !ok || stream {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch raw["prompt"] {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"model crashed"}`))
		case "missing_response":
			w.Write([]byte(`{"model":"llama3.2","done":true}`))
		case "empty_response":
			w.Write([]byte(`{"model":"llama3.2","response":"","done":true}`))
		case "not_json":
			w.Write([]byte(`<html>oops</html>`))
		default:
			if raw["model"] != "llama3.2" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Write([]byte(`{
				"model": "llama3.2",
				"response": "Here you go • Step one • Step two",
				"done": true,
				"total_duration": 1500000000,
				"prompt_eval_count": 12,
				"eval_count": 30
			}`))
		}
	}))
	defer ts.Close()

	client, err := ollama.New(ollama.Config{BaseURL: ts.URL + "/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.Generate(context.Background(), &ollama.Request{Prompt: "plan my dentist visit"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "Here you go • Step one • Step two" {
			t.Errorf("unexpected text: %q", resp.Text)
		}
		if resp.Usage.TotalTokens != 42 {
			t.Errorf("expected 42 total tokens, got %d", resp.Usage.TotalTokens)
		}
		if resp.TotalDuration.Seconds() != 1.5 {
			t.Errorf("unexpected duration: %v", resp.TotalDuration)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		if _, err := client.Generate(context.Background(), &ollama.Request{Prompt: "cause_500"}); err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Missing Response Field", func(t *testing.T) {
		_, err := client.Generate(context.Background(), &ollama.Request{Prompt: "missing_response"})
		if !errors.Is(err, ollama.ErrMissingResponse) {
			t.Fatalf("expected ErrMissingResponse, got %v", err)
		}
	})

	t.Run("Empty Response Field", func(t *testing.T) {
		_, err := client.Generate(context.Background(), &ollama.Request{Prompt: "empty_response"})
		if !errors.Is(err, ollama.ErrMissingResponse) {
			t.Fatalf("expected ErrMissingResponse, got %v", err)
		}
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		if _, err := client.Generate(context.Background(), &ollama.Request{Prompt: "not_json"}); err == nil {
			t.Fatalf("expected decode error")
		}
	})

	t.Run("Unreachable Backend", func(t *testing.T) {
		dead, _ := ollama.New(ollama.Config{BaseURL: "http://127.0.0.1:1"})
		if _, err := dead.Generate(context.Background(), &ollama.Request{Prompt: "hi"}); err == nil {
			t.Fatalf("expected connection error")
		}
	})
}
