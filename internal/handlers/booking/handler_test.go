package booking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tripbook/infras/otel/mocks"
	bookingMocks "tripbook/internal/domains/booking/mocks"
	"tripbook/internal/domains/booking/model"
	"tripbook/internal/domains/booking/model/dto"
	"tripbook/internal/domains/booking/submission"
	sessionMocks "tripbook/internal/domains/session/mocks"
	sessionModel "tripbook/internal/domains/session/model"
	sessionService "tripbook/internal/domains/session/service"
	"tripbook/internal/handlers/booking"
	"tripbook/shared/constant"
	gDto "tripbook/shared/dto"
	"tripbook/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	service  *bookingMocks.MockBooking
	sessions *sessionMocks.MockSession
	router   chi.Router
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	otel := mocks.NewOtel()

	f := fixture{
		service:  bookingMocks.NewMockBooking(ctrl),
		sessions: sessionMocks.NewMockSession(ctrl),
		router:   chi.NewRouter(),
	}

	handler := booking.New(f.service, middleware.NewSessionMiddleware(f.sessions, otel), otel)
	f.router.Route("/v1", handler.Router)

	return f
}

func (f fixture) do(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func TestCreateDraft(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newFixture(t)

		f.service.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.CreateDraftRequest) (dto.DraftResponse, error) {
				assert.Equal(t, "FL-1", req.ItemID)

				return dto.DraftResponse{ID: "d-1", Kind: model.KindFlight}, nil
			})

		rec := f.do(http.MethodPost, "/v1/bookings/drafts", `{"kind":"flight","item_id":"FL-1"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"d-1"`)
	})

	t.Run("unknown kind never reaches the service", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/v1/bookings/drafts", `{"kind":"car","item_id":"X"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("signed in shopper is passed on", func(t *testing.T) {
		f := newFixture(t)

		f.sessions.EXPECT().Authenticate(gomock.Any(), "Bearer token").
			Return(sessionModel.Session{UserID: "u-1", LoggedIn: true}, nil)
		f.service.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ dto.CreateDraftRequest) (dto.DraftResponse, error) {
				assert.Equal(t, "u-1", ctx.Value(constant.ContextKeyUserID))

				return dto.DraftResponse{ID: "d-1"}, nil
			})

		rec := f.do(http.MethodPost, "/v1/bookings/drafts", `{"kind":"flight","item_id":"FL-1"}`,
			constant.RequestHeaderAuthorization, "Bearer token")
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("stale token falls back to guest", func(t *testing.T) {
		f := newFixture(t)

		f.sessions.EXPECT().Authenticate(gomock.Any(), "Bearer stale").
			Return(sessionModel.Session{}, sessionService.ErrSessionExpired)
		f.service.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ dto.CreateDraftRequest) (dto.DraftResponse, error) {
				assert.Nil(t, ctx.Value(constant.ContextKeyUserID))

				return dto.DraftResponse{ID: "d-1"}, nil
			})

		rec := f.do(http.MethodPost, "/v1/bookings/drafts", `{"kind":"flight","item_id":"FL-1"}`,
			constant.RequestHeaderAuthorization, "Bearer stale")
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestUpdateTraveler(t *testing.T) {
	t.Run("index and body are forwarded", func(t *testing.T) {
		f := newFixture(t)

		f.service.EXPECT().UpdateTraveler(gomock.Any(), "d-1", 1, dto.TravelerRequest{FirstName: "Rahim"}).
			Return(dto.DraftResponse{ID: "d-1"}, nil)

		rec := f.do(http.MethodPut, "/v1/bookings/drafts/d-1/travelers/1", `{"first_name":"Rahim"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad index", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPut, "/v1/bookings/drafts/d-1/travelers/first", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateGuestRejectsBadEmail(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPut, "/v1/bookings/drafts/d-1/guests/0", `{"email":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToggleAddOn(t *testing.T) {
	f := newFixture(t)

	f.service.EXPECT().ToggleAddOn(gomock.Any(), "d-1", "meal").Return(dto.DraftResponse{ID: "d-1"}, nil)

	rec := f.do(http.MethodPost, "/v1/bookings/drafts/d-1/addons/meal/toggle", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStepNavigation(t *testing.T) {
	f := newFixture(t)

	f.service.EXPECT().Advance(gomock.Any(), "d-1").Return(dto.DraftResponse{ID: "d-1", Step: model.StepAddOns}, nil)
	f.service.EXPECT().Retreat(gomock.Any(), "d-1").Return(dto.DraftResponse{ID: "d-1", Step: model.StepRoster}, nil)

	assert.Equal(t, http.StatusOK, f.do(http.MethodPost, "/v1/bookings/drafts/d-1/advance", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodPost, "/v1/bookings/drafts/d-1/retreat", "").Code)
}

func TestSubmit(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "confirmed", wantCode: http.StatusCreated},
		{name: "sold out", err: submission.ErrSoldOut, wantCode: http.StatusConflict},
		{name: "timed out", err: submission.ErrSubmissionTimeout, wantCode: http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.service.EXPECT().Submit(gomock.Any(), "d-1").
				Return(model.Confirmation{Reference: "TB-ABC123"}, tt.err)

			rec := f.do(http.MethodPost, "/v1/bookings/drafts/d-1/submit", "")
			require.Equal(t, tt.wantCode, rec.Code)

			if tt.err == nil {
				assert.Contains(t, rec.Body.String(), `"reference":"TB-ABC123"`)
			}
		})
	}
}

func TestGetMyBookings(t *testing.T) {
	t.Run("requires a session", func(t *testing.T) {
		f := newFixture(t)

		f.sessions.EXPECT().Authenticate(gomock.Any(), "").Return(sessionModel.Session{}, sessionService.ErrInvalidToken)

		rec := f.do(http.MethodGet, "/v1/me/bookings", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("pages the shopper's bookings", func(t *testing.T) {
		f := newFixture(t)

		f.sessions.EXPECT().Authenticate(gomock.Any(), "Bearer token").Return(sessionModel.Session{UserID: "u-1"}, nil)
		f.service.EXPECT().ListMine(gomock.Any(), gDto.QueryParams{Page: 2, Limit: 5, SortBy: "created_at", SortDir: "DESC"}).
			Return(dto.GetBookingsResponse{}, nil)

		rec := f.do(http.MethodGet, "/v1/me/bookings?page=2&limit=5", "",
			constant.RequestHeaderAuthorization, "Bearer token")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown sort column", func(t *testing.T) {
		f := newFixture(t)

		f.sessions.EXPECT().Authenticate(gomock.Any(), "Bearer token").Return(sessionModel.Session{UserID: "u-1"}, nil)

		rec := f.do(http.MethodGet, "/v1/me/bookings?sort_by=password", "",
			constant.RequestHeaderAuthorization, "Bearer token")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
