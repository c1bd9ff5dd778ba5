package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Booking=MockBookingRepository

import (
	"context"
	"fmt"

	"tripbook/infras/otel"
	"tripbook/infras/postgres"
	"tripbook/internal/domains/booking/model"
	"tripbook/shared"
	"tripbook/shared/constant"
	gDto "tripbook/shared/dto"
	gRepo "tripbook/shared/repository"

	"github.com/jmoiron/sqlx"
)

// Booking stores submitted bookings and their passenger rows.
type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Create(ctx context.Context, booking model.Booking, passengers []model.Passenger) error
	Passengers(ctx context.Context, bookingID string) ([]model.Passenger, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	passengers gRepo.Repository[model.Passenger]
	db         *postgres.Connection
	otel       otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		passengers: gRepo.NewRepository[model.Passenger](model.PassengerEntityName, model.PassengerTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Create writes the booking and its roster in one transaction.
func (r *repositoryImpl) Create(ctx context.Context, booking model.Booking, passengers []model.Passenger) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Create")
	defer scope.End()

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.InsertTx(ctx, tx, booking); err != nil {
			return err //nolint:wrapcheck
		}

		if len(passengers) == 0 {
			return nil
		}

		return r.passengers.InsertBulkTx(ctx, tx, passengers) //nolint:wrapcheck
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Passengers(ctx context.Context, bookingID string) ([]model.Passenger, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Passengers")
	defer scope.End()

	params := gDto.QueryParams{SortBy: model.PassengerTableName + "." + model.FieldPosition, SortDir: gDto.SortDirAsc}

	return r.passengers.GetAll(ctx, params, shared.FilterByField(bookingID, model.FieldBookingID, model.PassengerTableName)) //nolint:wrapcheck
}
