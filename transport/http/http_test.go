package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tripbook/config"
	"tripbook/infras/metrics"
	"tripbook/transport/http/router"

	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		state    ServerState
		wantCode int
		wantBody string
	}{
		{name: "ready", state: ServerStateReady, wantCode: http.StatusOK, wantBody: "OK"},
		{name: "grace period", state: ServerStateInGracePeriod, wantCode: http.StatusServiceUnavailable, wantBody: "SERVER PREPARING TO SHUT DOWN"},
		{name: "cleanup period", state: ServerStateInCleanupPeriod, wantCode: http.StatusServiceUnavailable, wantBody: "SERVER PREPARING TO SHUT DOWN"},
		{name: "not started", wantCode: http.StatusServiceUnavailable, wantBody: "SERVER UNHEALTHY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(&config.Config{}, router.Router{}, nil, metrics.New(&config.Config{}))
			h.state.Store(int32(tt.state))

			rec := httptest.NewRecorder()
			h.health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestShutdownWithoutServer(t *testing.T) {
	h := New(&config.Config{}, router.Router{}, nil, metrics.New(&config.Config{}))

	assert.NotPanics(t, func() { h.shutdown(0) })
}
