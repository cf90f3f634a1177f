package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	middleware := SecurityLoggingMiddleware(nil, detector)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	ip := "192.168.1.100"
	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = ip + ":1234"

	for i := 0; i < requestRateLimit; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d failed with status %d", i, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429 Too Many Requests, got %d", rec.Code)
	}

	detector.mu.Lock()
	count := detector.requestCountByIP[ip]
	detector.mu.Unlock()

	if count != requestRateLimit+1 {
		t.Errorf("expected count %d, got %d", requestRateLimit+1, count)
	}
}

func TestRecordFailedAuth_TracksPerIP(t *testing.T) {
	detector := NewSuspiciousActivityDetector()

	for i := 0; i < 3; i++ {
		detector.RecordFailedAuth("198.51.100.7")
	}
	detector.RecordFailedAuth("198.51.100.8")

	detector.mu.Lock()
	defer detector.mu.Unlock()

	if detector.failedAuthByIP["198.51.100.7"] != 3 {
		t.Errorf("expected 3 failed attempts, got %d", detector.failedAuthByIP["198.51.100.7"])
	}
	if detector.failedAuthByIP["198.51.100.8"] != 1 {
		t.Errorf("expected 1 failed attempt, got %d", detector.failedAuthByIP["198.51.100.8"])
	}
}
