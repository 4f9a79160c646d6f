package adapthttp

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true})

	s := &Server{log: logger}
	// Create a dummy handler
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("OK"))
	})

	handler := s.loggingMiddleware(nextHandler)

	req := httptest.NewRequest("GET", "/test-path", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status %d, got %d", http.StatusTeapot, w.Code)
	}

	logOutput := buf.String()
	if !strings.Contains(logOutput, "GET") || !strings.Contains(logOutput, "/test-path") || !strings.Contains(logOutput, "418") {
		t.Errorf("Log output missing expected fields. Got: %s", logOutput)
	}
}

func TestRateLimitOnlyThrottlesPosts(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	s := &Server{log: logger}
	c := &client{id: "c1", limiter: rate.NewLimiter(rate.Every(1<<62), 1)}

	handler := s.rateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	serve := func(method string) int {
		req := httptest.NewRequest(method, "/cart/add", nil)
		req = req.WithContext(contextWithClient(req.Context(), c))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	if got := serve(http.MethodPost); got != http.StatusNoContent {
		t.Fatalf("first POST: got %d", got)
	}
	if got := serve(http.MethodPost); got != http.StatusTooManyRequests {
		t.Fatalf("second POST: got %d", got)
	}
	if got := serve(http.MethodGet); got != http.StatusNoContent {
		t.Fatalf("GET: got %d", got)
	}
}

func TestSessionGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	cs := newClients(nil, nil, logrus.New(), Config{SessionCapacity: 2})
	cs.cache.Add("a", &client{id: "a"})
	cs.cache.Add("b", &client{id: "b"})
	cs.cache.Add("c", &client{id: "c"})

	m := newHTTPMetrics(reg)
	m.watchSessions(reg, cs)

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range families {
		if f.GetName() == "storefront_http_client_sessions" {
			if got := f.GetMetric()[0].GetGauge().GetValue(); got != 2 {
				t.Errorf("sessions = %v, want 2", got)
			}
			return
		}
	}
	t.Error("client_sessions gauge not registered")
}
