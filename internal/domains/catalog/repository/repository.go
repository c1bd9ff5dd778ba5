package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"tripbook/infras/otel"
	"tripbook/infras/postgres"
	"tripbook/internal/domains/catalog/model"
	gDto "tripbook/shared/dto"
	gRepo "tripbook/shared/repository"
)

type Flight interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Flight, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Flight, error)
}

type Hotel interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Hotel, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Hotel, error)
}

type flightRepository struct {
	gRepo.Repository[model.Flight]
}

type hotelRepository struct {
	gRepo.Repository[model.Hotel]
}

func NewFlight(db *postgres.Connection, otel otel.Otel) Flight {
	return &flightRepository{
		Repository: gRepo.NewRepository[model.Flight](model.FlightEntityName, model.FlightTableName, model.FieldID, db, otel),
	}
}

func NewHotel(db *postgres.Connection, otel otel.Otel) Hotel {
	return &hotelRepository{
		Repository: gRepo.NewRepository[model.Hotel](model.HotelEntityName, model.HotelTableName, model.FieldID, db, otel),
	}
}
