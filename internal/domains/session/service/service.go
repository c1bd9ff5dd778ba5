package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tripbook/config"
	"tripbook/infras/jwt"
	"tripbook/infras/otel"
	"tripbook/internal/domains/session/model"
	"tripbook/internal/domains/session/model/dto"
	"tripbook/shared/cache"
	"tripbook/shared/constant"
	"tripbook/shared/failure"
	"tripbook/shared/timezone"

	"github.com/rs/zerolog/log"
)

var (
	ErrSessionExpired = failure.Unauthorized("session expired, sign in again")
	ErrInvalidToken   = failure.Unauthorized("invalid or expired token")
)

// Session issues and resolves shopper sessions. Sessions live in redis keyed by token id
// and last as long as the refresh token.
type Session interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Refresh(ctx context.Context, req dto.RefreshRequest) (dto.LoginResponse, error)
	Logout(ctx context.Context, tokenID string) error
	Authenticate(ctx context.Context, authHeader string) (model.Session, error)
}

type serviceImpl struct {
	jwt   jwt.JWT
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(jwt jwt.JWT, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Session {
	return &serviceImpl{
		jwt:   jwt,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) ttl() int {
	return s.cfg.JWT.RefreshExpireMin * constant.MinutesToSeconds
}

func (s *serviceImpl) issue(ctx context.Context, session model.Session) (res dto.LoginResponse, err error) {
	tokenPair, err := s.jwt.GenerateTokenPair(session.UserID, session.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	session.TokenID = tokenPair.TokenID
	session.LoggedIn = true

	if err = s.cache.Save(ctx, model.CacheKey(session.TokenID), session, s.ttl()); err != nil {
		log.Error().Err(err).Msg("failed to save session")

		return res, fmt.Errorf("failed to save session: %w", err)
	}

	res.FromTokenPair(session, tokenPair)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email := strings.ToLower(strings.TrimSpace(req.Email))

	return s.issue(ctx, model.Session{
		UserID:    model.UserIDFor(email),
		Email:     email,
		Name:      strings.TrimSpace(req.Name),
		Phone:     req.Phone,
		CreatedAt: timezone.Now(),
	})
}

func (s *serviceImpl) load(ctx context.Context, tokenID string) (model.Session, error) {
	var session model.Session

	if err := s.cache.Get(ctx, model.CacheKey(tokenID), &session); err != nil {
		if errors.Is(err, cache.Nil) {
			return session, ErrSessionExpired
		}

		log.Error().Err(err).Msg("failed to load session")

		return session, fmt.Errorf("failed to load session: %w", err)
	}

	return session, nil
}

// Refresh rotates the token pair. The old session key is dropped once the new one is saved.
func (s *serviceImpl) Refresh(ctx context.Context, req dto.RefreshRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refresh")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwt.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, ErrInvalidToken
	}

	session, err := s.load(ctx, claims.TokenID)
	if err != nil {
		return res, err
	}

	res, err = s.issue(ctx, session)
	if err != nil {
		return res, err
	}

	if err := s.cache.Delete(ctx, model.CacheKey(claims.TokenID)); err != nil {
		log.Warn().Err(err).Str("tokenID", claims.TokenID).Msg("failed to drop rotated session")
	}

	return res, nil
}

func (s *serviceImpl) Logout(ctx context.Context, tokenID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if tokenID == constant.Empty {
		return nil
	}

	if err = s.cache.Delete(ctx, model.CacheKey(tokenID)); err != nil {
		log.Error().Err(err).Msg("failed to delete session")

		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// Authenticate resolves the session behind a Bearer access token.
func (s *serviceImpl) Authenticate(ctx context.Context, authHeader string) (res model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authenticate")
	defer scope.End()

	token, err := jwt.ExtractTokenFromHeader(authHeader)
	if err != nil {
		return res, failure.Unauthorized(err.Error())
	}

	claims, err := s.jwt.ValidateToken(token, jwt.AccessToken)
	if err != nil {
		return res, ErrInvalidToken
	}

	return s.load(ctx, claims.TokenID)
}
