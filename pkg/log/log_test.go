package log_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"adhd-planner/pkg/log"
)

func TestTraceIDContext(t *testing.T) {
	ctx := log.WithTraceID(context.Background(), "abc-123")
	if got := log.TraceIDFromContext(ctx); got != "abc-123" {
		t.Errorf("expected trace id abc-123, got %q", got)
	}
	if got := log.TraceIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty trace id, got %q", got)
	}
}

func TestInit_WritesToOutputPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	logger := log.Init(log.ZapConfig{
		Level:       "info",
		Mode:        log.ModeProduction,
		Encoding:    log.EncodingJSON,
		OutputPaths: []string{path},
	})

	ctx := log.WithTraceID(context.Background(), "trace-1")
	logger.Debugf(ctx, "hidden %d", 1)
	logger.Infof(ctx, "visible %d", 2)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line should be filtered at info level: %s", out)
	}
	if !strings.Contains(out, "visible 2") {
		t.Errorf("expected info line in output: %s", out)
	}
	if !strings.Contains(out, `"trace_id":"trace-1"`) {
		t.Errorf("expected trace_id field in output: %s", out)
	}
}

func TestNewNop(t *testing.T) {
	l := log.NewNop()
	l.Info(context.Background(), "nothing")
	l.Errorf(context.Background(), "nothing %s", "either")
}
