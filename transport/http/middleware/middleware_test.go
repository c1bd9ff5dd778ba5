package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripbook/config"
	"tripbook/infras/metrics"
	"tripbook/infras/otel/mocks"
	sessionMocks "tripbook/internal/domains/session/mocks"
	"tripbook/internal/domains/session/model"
	"tripbook/internal/domains/session/service"
	cacheMocks "tripbook/shared/cache/mocks"
	"tripbook/shared/constant"
	"tripbook/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		enable        bool
		setup         func(c *cacheMocks.MockRedisCache)
		wantCode      int
		wantRemaining string
	}{
		{
			name:     "disabled",
			enable:   false,
			setup:    func(*cacheMocks.MockRedisCache) {},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "first request opens a window",
			enable: true,
			setup: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Incr(gomock.Any(), gomock.Any(), 60).Return(int64(1), nil)
			},
			wantCode:      http.StatusNoContent,
			wantRemaining: "1",
		},
		{
			name:   "last request of the window",
			enable: true,
			setup: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Incr(gomock.Any(), gomock.Any(), 60).Return(int64(2), nil)
			},
			wantCode:      http.StatusNoContent,
			wantRemaining: "0",
		},
		{
			name:   "over the limit",
			enable: true,
			setup: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Incr(gomock.Any(), gomock.Any(), 60).Return(int64(3), nil)
			},
			wantCode:      http.StatusTooManyRequests,
			wantRemaining: "0",
		},
		{
			name:   "redis outage lets traffic through",
			enable: true,
			setup: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Incr(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection refused"))
			},
			wantCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			redis := cacheMocks.NewMockRedisCache(ctrl)
			tt.setup(redis)

			app := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(tt.enable), redis, metrics.New(&config.Config{}))

			rec := serve(app.RateLimit()(okHandler()), httptest.NewRequest(http.MethodGet, "/v1/flights", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRateLimitKeysByHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	redis := cacheMocks.NewMockRedisCache(ctrl)
	redis.EXPECT().Incr(gomock.Any(), "limiter:203.0.113.7", 60).Return(int64(1), nil).Times(2)

	app := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(true), redis, metrics.New(&config.Config{}))
	limited := app.RateLimit()(okHandler())

	for _, addr := range []string{"203.0.113.7:5100", "203.0.113.7:5101"} {
		req := httptest.NewRequest(http.MethodGet, "/v1/hotels", nil)
		req.RemoteAddr = addr

		assert.Equal(t, http.StatusNoContent, serve(limited, req).Code)
	}
}

func TestTracingKeepsStatus(t *testing.T) {
	app := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil, metrics.New(&config.Config{}))

	failing := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	rec := serve(app.Tracing(failing), httptest.NewRequest(http.MethodGet, "/v1/hotels", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "tripbook"

	m := metrics.New(cfg)
	app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, nil, m)

	router := chi.NewRouter()
	router.Use(app.Metrics)
	router.Get("/v1/flights/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	serve(router, httptest.NewRequest(http.MethodGet, "/v1/flights/BG-401", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/v1/flights/BS-141", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/wp-login.php", nil))

	rec := serve(m.Handler(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()

	assert.Contains(t, body, `tripbook_http_requests_total{app="tripbook",code="200",method="GET",route="/v1/flights/{id}"} 2`)
	assert.Contains(t, body, `tripbook_http_requests_total{app="tripbook",code="404",method="GET",route="unmatched"} 1`)
	assert.NotContains(t, body, "BG-401")
}

func TestSessionAuthenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := sessionMocks.NewMockSession(ctrl)
	mw := middleware.NewSessionMiddleware(sessions, mocks.NewOtel())

	var seen model.Session

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = model.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	sessions.EXPECT().Authenticate(gomock.Any(), "Bearer ok").Return(model.Session{UserID: "u-1", LoggedIn: true}, nil)
	sessions.EXPECT().Authenticate(gomock.Any(), "Bearer bad").Return(model.Session{}, service.ErrInvalidToken)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer ok")
	assert.Equal(t, http.StatusNoContent, serve(mw.Authenticate(next), req).Code)
	assert.Equal(t, "u-1", seen.UserID)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer bad")
	assert.Equal(t, http.StatusUnauthorized, serve(mw.Authenticate(next), req).Code)
}

func TestSessionIdentifySkipsAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	mw := middleware.NewSessionMiddleware(sessionMocks.NewMockSession(ctrl), mocks.NewOtel())

	var seen model.Session

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = model.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	rec := serve(mw.Identify(next), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, seen.LoggedIn)
}
