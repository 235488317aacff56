package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"adhd-planner/config"
	"adhd-planner/pkg/datemath"
	"adhd-planner/pkg/log"
)

func TestNew(t *testing.T) {
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	badCreds := filepath.Join(t.TempDir(), "creds.json")
	if err := os.WriteFile(badCreds, []byte(`{"foo":"bar"}`), 0o600); err != nil {
		t.Fatalf("write creds: %v", err)
	}

	tests := []struct {
		name    string
		cfg     config.AppointmentsConfig
		gcal    config.GoogleCalendarConfig
		wantErr bool
	}{
		{name: "http", cfg: config.AppointmentsConfig{Source: SourceHTTP, URL: "http://127.0.0.1:5000/api/events", Timeout: "5s"}},
		{name: "empty source defaults to http", cfg: config.AppointmentsConfig{URL: "http://127.0.0.1:5000/api/events"}},
		{name: "ics", cfg: config.AppointmentsConfig{Source: SourceICS, URL: "http://example.com/cal.ics", Lookahead: "in 30 days"}},
		{name: "ics without url", cfg: config.AppointmentsConfig{Source: SourceICS}, wantErr: true},
		{name: "gcal missing credentials file", cfg: config.AppointmentsConfig{Source: SourceGCal}, gcal: config.GoogleCalendarConfig{CredentialsPath: "/does/not/exist.json"}, wantErr: true},
		{name: "gcal unsupported credentials", cfg: config.AppointmentsConfig{Source: SourceGCal}, gcal: config.GoogleCalendarConfig{CredentialsPath: badCreds}, wantErr: true},
		{name: "unknown source", cfg: config.AppointmentsConfig{Source: "caldav"}, wantErr: true},
		{name: "bad timeout", cfg: config.AppointmentsConfig{Source: SourceHTTP, Timeout: "ten seconds"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := New(context.Background(), log.NewNop(), tt.cfg, tt.gcal, dm)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo == nil {
				t.Fatal("expected repository")
			}
		})
	}
}
