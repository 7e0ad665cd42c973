package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/southerntents/quote-backend/pkg/config"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(ctx context.Context) error {
	return s.err
}

func healthConfig() *config.Config {
	return &config.Config{App: config.AppConfig{Env: "test"}}
}

func getHealth(handler http.HandlerFunc, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeHealth(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding health body: %v", err)
	}
	return body
}

func componentStatus(t *testing.T, body map[string]any, name string) string {
	t.Helper()
	components, ok := body["components"].(map[string]any)
	if !ok {
		t.Fatalf("missing components in %+v", body)
	}
	status, _ := components[name].(string)
	return status
}

func TestHealthLive(t *testing.T) {
	rec := getHealth(HealthLive(healthConfig()), "/health/live")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeHealth(t, rec)
	if body["status"] != "live" {
		t.Errorf("unexpected status: %v", body["status"])
	}
}

func TestHealthReadyWithoutRedis(t *testing.T) {
	rec := getHealth(HealthReady(healthConfig(), testLogger(), nil), "/health/ready")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeHealth(t, rec)
	if body["status"] != "ready" {
		t.Errorf("unexpected status: %v", body["status"])
	}
	if got := componentStatus(t, body, "redis"); got != "disabled" {
		t.Errorf("expected redis disabled, got %q", got)
	}
	if got := componentStatus(t, body, "smtp"); got != "configured" {
		t.Errorf("expected smtp configured, got %q", got)
	}
}

func TestHealthReadyRedisOK(t *testing.T) {
	rec := getHealth(HealthReady(healthConfig(), testLogger(), &stubPinger{}), "/health/ready")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := componentStatus(t, decodeHealth(t, rec), "redis"); got != "ok" {
		t.Errorf("expected redis ok, got %q", got)
	}
}

func TestHealthReadyRedisDown(t *testing.T) {
	pinger := &stubPinger{err: errors.New("dial tcp: connection refused")}
	rec := getHealth(HealthReady(healthConfig(), testLogger(), pinger), "/health/ready")

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	body := decodeHealth(t, rec)
	if body["status"] != "degraded" {
		t.Errorf("unexpected status: %v", body["status"])
	}
	if got := componentStatus(t, body, "redis"); got != "unreachable" {
		t.Errorf("expected redis unreachable, got %q", got)
	}
}
