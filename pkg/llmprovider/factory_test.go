package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"

	"adhd-planner/config"
)

func TestInitializeProviders(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.LLMConfig
		wantNames []string
		wantErr   bool
	}{
		{
			name: "sorted by priority, disabled skipped",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 3, APIKey: "g", Model: "gemini-2.5-flash"},
				{Name: "ollama", Enabled: true, Priority: 1, Model: "llama3.2", Timeout: "90s"},
				{Name: "openai", Enabled: false, Priority: 2, APIKey: "o", Model: "gpt-4o-mini"},
			}},
			wantNames: []string{"ollama", "gemini"},
		},
		{
			name: "broken provider skipped",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 1, Model: "gpt-4o-mini"},
				{Name: "ollama", Enabled: true, Priority: 2, Model: "llama3.2"},
			}},
			wantNames: []string{"ollama"},
		},
		{
			name: "invalid timeout fails the only provider",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "ollama", Enabled: true, Priority: 1, Model: "llama3.2", Timeout: "soon"},
			}},
			wantErr: true,
		},
		{
			name: "unknown provider",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "qwen", Enabled: true, Priority: 1, APIKey: "k", Model: "qwen-plus"},
			}},
			wantErr: true,
		},
		{
			name:    "nil config",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers, err := InitializeProviders(context.Background(), tt.cfg, &mockLogger{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("InitializeProviders() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(providers) != len(tt.wantNames) {
				t.Fatalf("expected %d providers, got %d", len(tt.wantNames), len(providers))
			}
			for i, name := range tt.wantNames {
				if providers[i].Name() != name {
					t.Errorf("provider %d: want %s, got %s", i, name, providers[i].Name())
				}
			}
		})
	}
}

func TestInitializeProviders_NoneEnabled(t *testing.T) {
	cfg := &config.LLMConfig{Providers: []config.ProviderConfig{
		{Name: "ollama", Priority: 1, Model: "llama3.2"},
	}}
	_, err := InitializeProviders(context.Background(), cfg, &mockLogger{})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestNewManagerConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LLMConfig
		want    Config
		wantErr bool
	}{
		{
			name: "defaults",
			cfg:  config.LLMConfig{RetryAttempts: 1, RetryDelay: "1s", MaxTotalTimeout: "180s"},
			want: Config{RetryAttempts: 1, RetryDelay: time.Second, MaxTotalTimeout: 180 * time.Second},
		},
		{
			name: "empty durations",
			cfg:  config.LLMConfig{FallbackEnabled: true, RetryAttempts: 2},
			want: Config{FallbackEnabled: true, RetryAttempts: 2},
		},
		{name: "bad retry delay", cfg: config.LLMConfig{RetryDelay: "soon"}, wantErr: true},
		{name: "bad total timeout", cfg: config.LLMConfig{MaxTotalTimeout: "3 minutes"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewManagerConfig(&tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("got %+v, want %+v", *got, tt.want)
			}
		})
	}
}
