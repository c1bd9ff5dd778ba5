package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"tripbook/config"
	"tripbook/infras/jwt"
	jwtMocks "tripbook/infras/jwt/mocks"
	"tripbook/infras/otel/mocks"
	"tripbook/internal/domains/session/model"
	"tripbook/internal/domains/session/model/dto"
	"tripbook/internal/domains/session/service"
	"tripbook/shared/cache"
	cacheMocks "tripbook/shared/cache/mocks"
	"tripbook/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	jwt   *jwtMocks.MockJWT
	cache *cacheMocks.MockRedisCache
	svc   service.Session
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.JWT.RefreshExpireMin = 60

	f := fixture{
		jwt:   jwtMocks.NewMockJWT(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.jwt, cfg, f.cache, mocks.NewOtel())

	return f
}

func TestSession_Login(t *testing.T) {
	f := newFixture(t)
	userID := model.UserIDFor("rahim@example.com")

	f.jwt.EXPECT().GenerateTokenPair(userID, "rahim@example.com").
		Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 900, TokenID: "tok-1"}, nil)
	f.cache.EXPECT().Save(gomock.Any(), "session:tok-1", gomock.Any(), 3600).
		DoAndReturn(func(_ context.Context, _ string, value any, _ int) error {
			s, ok := value.(model.Session)
			require.True(t, ok)
			assert.True(t, s.LoggedIn)
			assert.Equal(t, "tok-1", s.TokenID)

			return nil
		})

	res, err := f.svc.Login(t.Context(), dto.LoginRequest{Email: " Rahim@Example.com", Name: "Rahim"})
	require.NoError(t, err)
	assert.Equal(t, userID, res.Session.UserID)
	assert.Equal(t, "rahim@example.com", res.Session.Email)
	assert.Equal(t, "access", res.AccessToken)
	assert.Equal(t, "Bearer", res.TokenType)
}

func TestSession_LoginTokenFailure(t *testing.T) {
	f := newFixture(t)

	f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any()).Return(nil, errors.New("no secret"))

	_, err := f.svc.Login(t.Context(), dto.LoginRequest{Email: "rahim@example.com", Name: "Rahim"})
	assert.Error(t, err)
}

func TestSession_Authenticate(t *testing.T) {
	stored := model.Session{UserID: "user-1", Email: "rahim@example.com", TokenID: "tok-1", LoggedIn: true}

	tests := []struct {
		name      string
		header    string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:   "valid token",
			header: "Bearer access",
			setupMock: func(f fixture) {
				f.jwt.EXPECT().ValidateToken("access", jwt.AccessToken).Return(&jwt.Claims{UserID: "user-1", TokenID: "tok-1"}, nil)
				f.cache.EXPECT().Get(gomock.Any(), "session:tok-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*(value.(*model.Session)) = stored

						return nil
					})
			},
		},
		{
			name:     "missing header",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "not bearer",
			header:   "Basic abc",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			header: "Bearer old",
			setupMock: func(f fixture) {
				f.jwt.EXPECT().ValidateToken("old", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "logged out",
			header: "Bearer access",
			setupMock: func(f fixture) {
				f.jwt.EXPECT().ValidateToken("access", jwt.AccessToken).Return(&jwt.Claims{UserID: "user-1", TokenID: "tok-1"}, nil)
				f.cache.EXPECT().Get(gomock.Any(), "session:tok-1", gomock.Any()).Return(cache.Nil)
			},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			res, err := f.svc.Authenticate(t.Context(), tt.header)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, stored, res)
		})
	}
}

func TestSession_Refresh(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.jwt.EXPECT().ValidateToken("refresh", jwt.RefreshToken).Return(&jwt.Claims{UserID: "user-1", TokenID: "tok-1"}, nil),
		f.cache.EXPECT().Get(gomock.Any(), "session:tok-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*(value.(*model.Session)) = model.Session{UserID: "user-1", Email: "rahim@example.com", TokenID: "tok-1"}

				return nil
			}),
		f.jwt.EXPECT().GenerateTokenPair("user-1", "rahim@example.com").
			Return(&jwt.TokenPair{AccessToken: "access-2", RefreshToken: "refresh-2", TokenID: "tok-2"}, nil),
		f.cache.EXPECT().Save(gomock.Any(), "session:tok-2", gomock.Any(), 3600).Return(nil),
		f.cache.EXPECT().Delete(gomock.Any(), "session:tok-1").Return(nil),
	)

	res, err := f.svc.Refresh(t.Context(), dto.RefreshRequest{RefreshToken: "refresh"})
	require.NoError(t, err)
	assert.Equal(t, "access-2", res.AccessToken)
}

func TestSession_RefreshRejectsAccessToken(t *testing.T) {
	f := newFixture(t)

	f.jwt.EXPECT().ValidateToken("access", jwt.RefreshToken).Return(nil, jwt.ErrInvalidClaim)

	_, err := f.svc.Refresh(t.Context(), dto.RefreshRequest{RefreshToken: "access"})
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestSession_Logout(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Delete(gomock.Any(), "session:tok-1").Return(nil)

	require.NoError(t, f.svc.Logout(t.Context(), "tok-1"))
	require.NoError(t, f.svc.Logout(t.Context(), ""))
}
