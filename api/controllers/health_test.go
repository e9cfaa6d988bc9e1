package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yobeidat/obeidat-motors-backend/pkg/config"
	"github.com/yobeidat/obeidat-motors-backend/pkg/types"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error { return s.err }

func testAppConfig() *config.Config {
	return &config.Config{App: config.AppConfig{Env: "test", Port: "8080"}}
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	Health()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body types.Health
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
}

func TestHealthLive(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	HealthLive(testAppConfig())(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test", rec.Header().Get("X-ObeidatMotors-Env"))
}

func TestHealthReady(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	HealthReady(testAppConfig(), nil, stubPinger{}, stubPinger{})(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body types.Health
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body.Status)
}

func TestHealthReady_DatabaseDown(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	HealthReady(testAppConfig(), nil, stubPinger{err: errors.New("connection refused")}, nil)(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthReady_RedisDown(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	HealthReady(testAppConfig(), nil, stubPinger{}, stubPinger{err: errors.New("redis timeout")})(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthReady_NoRedisConfigured(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	HealthReady(testAppConfig(), nil, stubPinger{}, nil)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
