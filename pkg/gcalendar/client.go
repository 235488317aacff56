package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a read-only Calendar client.
// Service Account JSON is used directly. OAuth installed-app JSON needs a token
// previously stored at DefaultTokenPath.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarReadonlyScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	oauthConfig, cfgErr := OAuthConfigFromJSON(credentialsJSON)
	if cfgErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tokenData, tokenErr := os.ReadFile(DefaultTokenPath)
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no %s found: run scripts/gcal-auth first", DefaultTokenPath)
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", DefaultTokenPath, jsonErr)
	}

	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return &Client{service: svc}, nil
}

// OAuthConfigFromJSON builds a read-only oauth2 config from installed-app credentials.
func OAuthConfigFromJSON(credentialsJSON []byte) (*oauth2.Config, error) {
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if err := json.Unmarshal(credentialsJSON, &oauthCreds); err != nil {
		return nil, err
	}
	if oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("missing installed.client_id")
	}

	cfg := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarReadonlyScope},
		Endpoint:     google.Endpoint,
	}
	if len(oauthCreds.Installed.RedirectURIs) > 0 {
		cfg.RedirectURL = oauthCreds.Installed.RedirectURIs[0]
	}
	return cfg, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListUpcomingEvents returns single (expanded) events starting from req.TimeMin,
// ordered by start time.
func (c *Client) ListUpcomingEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	timeMin := req.TimeMin
	if timeMin.IsZero() {
		timeMin = time.Now()
	}

	result, err := c.service.Events.List(calendarID).
		Context(ctx).
		TimeMin(timeMin.Format(time.RFC3339)).
		MaxResults(maxResults).
		SingleEvents(true).
		OrderBy("startTime").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(result.Items))
	for _, item := range result.Items {
		events = append(events, toEvent(item))
	}
	return events, nil
}

func toEvent(item *calendar.Event) Event {
	ev := Event{
		ID:       item.Id,
		Summary:  item.Summary,
		Location: item.Location,
		HtmlLink: item.HtmlLink,
	}
	if item.Start == nil {
		return ev
	}

	if item.Start.DateTime != "" {
		ev.Start = item.Start.DateTime
		ev.StartTime, _ = time.Parse(time.RFC3339, item.Start.DateTime)
		return ev
	}

	ev.Start = item.Start.Date
	ev.AllDay = true
	ev.StartTime, _ = time.Parse("2006-01-02", item.Start.Date)
	return ev
}
