package repository

//go:generate go run go.uber.org/mock/mockgen -source=./draft.go -destination=../mocks/draft_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"tripbook/config"
	"tripbook/infras/otel"
	"tripbook/internal/domains/booking/model"
	"tripbook/shared"
	"tripbook/shared/cache"
	"tripbook/shared/constant"
	"tripbook/shared/failure"
)

const draftKeyPrefix = "booking:draft"

var ErrDraftNotFound = failure.NotFound("booking draft not found or expired")

// Draft keeps checkouts in redis. Every save renews the TTL. Submitted and abandoned
// drafts are kept until they expire so a replayed submit resolves to the same booking.
type Draft interface {
	Save(ctx context.Context, draft *model.Draft) error
	Get(ctx context.Context, id string) (*model.Draft, error)
}

type draftImpl struct {
	cache cache.RedisCache
	cfg   *config.Config
	otel  otel.Otel
}

func NewDraft(cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Draft {
	return &draftImpl{
		cache: cache,
		cfg:   cfg,
		otel:  otel,
	}
}

func draftKey(id string) string {
	return shared.BuildCacheKey(draftKeyPrefix, id)
}

func (d *draftImpl) Save(ctx context.Context, draft *model.Draft) (err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".draft.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = d.cache.Save(ctx, draftKey(draft.ID), draft, d.cfg.Booking.DraftTTLSeconds); err != nil {
		return fmt.Errorf("failed to save booking draft: %w", err)
	}

	return nil
}

func (d *draftImpl) Get(ctx context.Context, id string) (res *model.Draft, err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".draft.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res = &model.Draft{}

	if err = d.cache.Get(ctx, draftKey(id), res); err != nil {
		if errors.Is(err, cache.Nil) {
			return nil, ErrDraftNotFound
		}

		return nil, fmt.Errorf("failed to load booking draft: %w", err)
	}

	return res, nil
}
