package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aerolinehq/ndc-backend/pkg/config"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(ctx context.Context) error {
	return s.err
}

func testConfig() *config.Config {
	return &config.Config{App: config.AppConfig{Env: "test"}}
}

func TestHealthLive(t *testing.T) {
	handler := HealthLive(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if got := resp.Header().Get("X-Aeroline-Env"); got != "test" {
		t.Fatalf("unexpected env header %q", got)
	}
}

func TestHealthReadyAllDependenciesUp(t *testing.T) {
	handler := HealthReady(testConfig(), testLogger(), map[string]Pinger{
		"database": stubPinger{},
		"redis":    stubPinger{},
	})

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestHealthReadyDependencyDown(t *testing.T) {
	handler := HealthReady(testConfig(), testLogger(), map[string]Pinger{
		"database": stubPinger{},
		"redis":    stubPinger{err: errors.New("connection refused")},
	})

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
	envelope := decodeAPIError(t, resp)
	if envelope.ErrorCode != "DEPENDENCY_ERROR" {
		t.Fatalf("unexpected error code %q", envelope.ErrorCode)
	}
}
