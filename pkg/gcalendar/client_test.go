package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"adhd-planner/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

const installedCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func TestNewClient(t *testing.T) {
	t.Run("Broken credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Installed app with token", func(t *testing.T) {
		os.WriteFile(gcalendar.DefaultTokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)
		defer os.Remove(gcalendar.DefaultTokenPath)

		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(installedCreds)); err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Installed app with bad token", func(t *testing.T) {
		os.WriteFile(gcalendar.DefaultTokenPath, []byte(`{"broken": true`), 0644)
		defer os.Remove(gcalendar.DefaultTokenPath)

		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(installedCreds)); err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Installed app without token", func(t *testing.T) {
		os.Remove(gcalendar.DefaultTokenPath)
		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(installedCreds)); err == nil {
			t.Fatalf("expected missing token error")
		}
	})

	t.Run("From file", func(t *testing.T) {
		path := t.TempDir() + "/creds.json"
		os.WriteFile(path, []byte(`{"broken":true}`), 0644)

		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), path); err == nil {
			t.Errorf("expected failure loading broken file")
		}
		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json"); err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestOAuthConfigFromJSON(t *testing.T) {
	cfg, err := gcalendar.OAuthConfigFromJSON([]byte(installedCreds))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RedirectURL != "http://localhost" {
		t.Errorf("unexpected redirect %s", cfg.RedirectURL)
	}
	if len(cfg.Scopes) != 1 || !strings.HasSuffix(cfg.Scopes[0], "calendar.readonly") {
		t.Errorf("expected read-only scope, got %v", cfg.Scopes)
	}
}

func TestListUpcomingEvents(t *testing.T) {
	var gotQuery map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/test-fail/events" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if r.URL.Path != "/calendar/v3/calendars/primary/events" || r.Method != http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		q := r.URL.Query()
		gotQuery = map[string]string{
			"singleEvents": q.Get("singleEvents"),
			"orderBy":      q.Get("orderBy"),
			"maxResults":   q.Get("maxResults"),
			"timeMin":      q.Get("timeMin"),
		}
		w.Write([]byte(`{
			"items": [
				{"id": "a", "summary": "Dentist", "start": {"dateTime": "2024-05-01T10:00:00-04:00"}},
				{"id": "b", "summary": "Vacation", "start": {"date": "2024-05-02"}},
				{"id": "c", "start": {"dateTime": "2024-05-03T08:30:00Z"}}
			]
		}`))
	})

	timeMin := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	events, err := client.ListUpcomingEvents(context.Background(), gcalendar.ListEventsRequest{TimeMin: timeMin})
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}

	if gotQuery["singleEvents"] != "true" || gotQuery["orderBy"] != "startTime" || gotQuery["maxResults"] != "10" {
		t.Errorf("unexpected query: %v", gotQuery)
	}
	if gotQuery["timeMin"] != "2024-05-01T00:00:00Z" {
		t.Errorf("unexpected timeMin %s", gotQuery["timeMin"])
	}

	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].Start != "2024-05-01T10:00:00-04:00" || events[0].AllDay {
		t.Errorf("unexpected timed event: %+v", events[0])
	}
	if events[1].Start != "2024-05-02" || !events[1].AllDay {
		t.Errorf("unexpected all-day event: %+v", events[1])
	}
	if events[2].Summary != "" {
		t.Errorf("expected empty summary, got %q", events[2].Summary)
	}

	_, err = client.ListUpcomingEvents(context.Background(), gcalendar.ListEventsRequest{CalendarID: "test-fail"})
	if err == nil {
		t.Fatalf("expected api error on test-fail")
	}
}
