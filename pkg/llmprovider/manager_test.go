package llmprovider

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type mockProvider struct {
	name     string
	model    string
	err      error
	response *Response
	delay    time.Duration

	mu        sync.Mutex
	callCount int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.model }

func (m *mockProvider) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// mockLogger records the first argument of Info and Warn calls
type mockLogger struct {
	mu           sync.Mutex
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) record(dst *[]string, arg []any) {
	if len(arg) == 0 {
		return
	}
	if msg, ok := arg[0].(string); ok {
		m.mu.Lock()
		*dst = append(*dst, msg)
		m.mu.Unlock()
	}
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     { m.record(&m.infoMessages, arg) }
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     { m.record(&m.warnMessages, arg) }
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func textResponse(provider, text string) *Response {
	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: text}}},
		ProviderName: provider,
		ModelName:    provider + "-model",
		Usage:        &Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	}
}

var errBackendDown = errors.New("backend down")

func TestManager_GenerateContent(t *testing.T) {
	tests := []struct {
		name          string
		config        Config
		primaryErr    error
		secondaryErr  error
		wantProvider  string
		wantErr       error
		wantPrimary   int
		wantSecondary int
		wantInfoLogs  int
		wantWarnLogs  int
	}{
		{
			name:         "primary succeeds on single attempt",
			config:       Config{RetryAttempts: 1},
			wantProvider: "primary",
			wantPrimary:  1,
			wantInfoLogs: 1,
		},
		{
			name:         "single attempt without fallback stops at primary",
			config:       Config{RetryAttempts: 1},
			primaryErr:   errBackendDown,
			wantErr:      errBackendDown,
			wantPrimary:  1,
			wantWarnLogs: 1,
		},
		{
			name:          "fallback to secondary after retries",
			config:        Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond},
			primaryErr:    errBackendDown,
			wantProvider:  "secondary",
			wantPrimary:   2,
			wantSecondary: 1,
			wantInfoLogs:  1,
			wantWarnLogs:  1,
		},
		{
			name:          "all providers fail keeps the last cause",
			config:        Config{FallbackEnabled: true, RetryAttempts: 1},
			primaryErr:    errBackendDown,
			secondaryErr:  ErrEmptyResponse,
			wantErr:       ErrEmptyResponse,
			wantPrimary:   1,
			wantSecondary: 1,
			wantWarnLogs:  2,
		},
		{
			name:         "zero attempts is treated as one",
			config:       Config{},
			wantProvider: "primary",
			wantPrimary:  1,
			wantInfoLogs: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &mockProvider{name: "primary", model: "primary-model", err: tt.primaryErr, response: textResponse("primary", "• a")}
			secondary := &mockProvider{name: "secondary", model: "secondary-model", err: tt.secondaryErr, response: textResponse("secondary", "• b")}
			logger := &mockLogger{}
			cfg := tt.config

			manager := NewManager([]Provider{primary, secondary}, &cfg, logger)
			resp, err := manager.GenerateContent(context.Background(), UserPrompt("Hello"))

			if tt.wantErr != nil {
				if !errors.Is(err, ErrAllProvidersFailed) {
					t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
				}
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected wrapped %v, got %v", tt.wantErr, err)
				}
				if resp != nil {
					t.Errorf("expected nil response, got %+v", resp)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if resp.ProviderName != tt.wantProvider {
					t.Errorf("expected provider %s, got %s", tt.wantProvider, resp.ProviderName)
				}
			}

			if primary.calls() != tt.wantPrimary {
				t.Errorf("primary calls: want %d, got %d", tt.wantPrimary, primary.calls())
			}
			if secondary.calls() != tt.wantSecondary {
				t.Errorf("secondary calls: want %d, got %d", tt.wantSecondary, secondary.calls())
			}
			if len(logger.infoMessages) != tt.wantInfoLogs {
				t.Errorf("info logs: want %d, got %d", tt.wantInfoLogs, len(logger.infoMessages))
			}
			if len(logger.warnMessages) != tt.wantWarnLogs {
				t.Errorf("warn logs: want %d, got %d", tt.wantWarnLogs, len(logger.warnMessages))
			}
		})
	}
}

func TestManager_NoProvidersConfigured(t *testing.T) {
	manager := NewManager(nil, &Config{RetryAttempts: 1}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), UserPrompt("Hello"))
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestManager_MaxTotalTimeout(t *testing.T) {
	slow := &mockProvider{name: "slow", model: "slow-model", delay: time.Second, response: textResponse("slow", "x")}
	manager := NewManager([]Provider{slow}, &Config{RetryAttempts: 1, MaxTotalTimeout: 20 * time.Millisecond}, &mockLogger{})

	start := time.Now()
	_, err := manager.GenerateContent(context.Background(), UserPrompt("Hello"))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Errorf("timeout not enforced, took %v", time.Since(start))
	}
}

func TestResponseText(t *testing.T) {
	resp := &Response{Content: Message{Parts: []Part{{Text: "Intro "}, {Text: "• one"}}}}
	if resp.Text() != "Intro • one" {
		t.Errorf("unexpected text %q", resp.Text())
	}

	var nilResp *Response
	if nilResp.Text() != "" {
		t.Errorf("nil response should have empty text")
	}
}
