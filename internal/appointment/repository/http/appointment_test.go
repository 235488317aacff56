package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adhd-planner/internal/appointment/repository"
)

func TestListAppointments(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantCount int
		wantErr   bool
	}{
		{
			name:      "keeps order and null summary",
			status:    http.StatusOK,
			body:      `[{"summary":"Dentist","start":"2024-05-01T10:00:00Z"},{"summary":null,"start":"2024-05-02"},{"summary":"Gym","start":"2024-05-01T08:00:00Z"}]`,
			wantCount: 3,
		},
		{
			name:   "empty array",
			status: http.StatusOK,
			body:   `[]`,
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `{"error":"boom"}`,
			wantErr: true,
		},
		{
			name:    "not an array",
			status:  http.StatusOK,
			body:    `{"items":[]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/events" {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			repo := New(ts.URL+"/api/events", time.Second)
			got, err := repo.ListAppointments(context.Background(), repository.ListOptions{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListAppointments() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != tt.wantCount {
				t.Fatalf("expected %d appointments, got %d", tt.wantCount, len(got))
			}
			if tt.wantCount == 3 {
				if got[0].Summary != "Dentist" || got[0].ID != "2024-05-01T10:00:00Z" {
					t.Errorf("unexpected first appointment: %+v", got[0])
				}
				if got[1].Summary != "" || got[1].ID != "2024-05-02" {
					t.Errorf("unexpected second appointment: %+v", got[1])
				}
				if got[2].Summary != "Gym" {
					t.Errorf("order not preserved: %+v", got)
				}
			}
		})
	}
}

func TestListAppointments_Unreachable(t *testing.T) {
	repo := New("http://127.0.0.1:1/api/events", time.Second)
	if _, err := repo.ListAppointments(context.Background(), repository.ListOptions{}); err == nil {
		t.Fatalf("expected connection error")
	}
}
