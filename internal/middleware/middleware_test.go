package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"adhd-planner/pkg/log"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/generate", handlers...)
	return r
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), 0)

	var seen string
	r := newRouter(mw.RequestID(), func(c *gin.Context) {
		seen = log.TraceIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("minted", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/generate", nil))

		got := w.Header().Get(RequestIDHeader)
		if got == "" || got != seen {
			t.Errorf("header %q and context %q should match and be non-empty", got, seen)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(RequestIDHeader); got != "abc-123" || seen != "abc-123" {
			t.Errorf("expected incoming id to be reused, header=%q ctx=%q", got, seen)
		}
	})
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name     string
		perMin   int
		requests int
		wantLast int
	}{
		{name: "disabled", perMin: 0, requests: 50, wantLast: http.StatusOK},
		{name: "burst of one", perMin: 6, requests: 2, wantLast: http.StatusTooManyRequests},
		{name: "within burst", perMin: 60, requests: 6, wantLast: http.StatusOK},
		{name: "burst exceeded", perMin: 60, requests: 7, wantLast: http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := New(log.NewNop(), tt.perMin)
			r := newRouter(mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

			var last int
			for i := 0; i < tt.requests; i++ {
				req := httptest.NewRequest(http.MethodPost, "/generate", nil)
				req.RemoteAddr = "10.0.0.1:5000"
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)
				last = w.Code
			}
			if last != tt.wantLast {
				t.Errorf("last status = %d, want %d", last, tt.wantLast)
			}
		})
	}
}

func TestRateLimit_PerClient(t *testing.T) {
	tests := []struct {
		name      string
		trusted   []string
		remote    string
		wantFirst int
		wantLast  int
	}{
		// Headers from an untrusted peer are ignored, so rotating them does not help.
		{name: "untrusted peer", remote: "203.0.113.7:5000", wantFirst: http.StatusOK, wantLast: http.StatusTooManyRequests},
		{name: "trusted proxy", trusted: []string{"10.0.0.0/8"}, remote: "10.0.0.9:5000", wantFirst: http.StatusOK, wantLast: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := New(log.NewNop(), 6)
			r := newRouter(mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })
			if err := r.SetTrustedProxies(tt.trusted); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var codes []int
			for _, ip := range []string{"198.51.100.1", "198.51.100.2"} {
				req := httptest.NewRequest(http.MethodPost, "/generate", nil)
				req.RemoteAddr = tt.remote
				req.Header.Set("X-Forwarded-For", ip)
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)
				codes = append(codes, w.Code)
			}
			if codes[0] != tt.wantFirst || codes[1] != tt.wantLast {
				t.Errorf("codes = %v, want [%d %d]", codes, tt.wantFirst, tt.wantLast)
			}
		})
	}
}
