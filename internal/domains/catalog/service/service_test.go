package service_test

import (
	"context"
	"errors"
	"testing"

	"tripbook/config"
	"tripbook/infras/otel/mocks"
	catalogMocks "tripbook/internal/domains/catalog/mocks"
	"tripbook/internal/domains/catalog/model"
	"tripbook/internal/domains/catalog/service"
	"tripbook/shared/cache"
	cacheMocks "tripbook/shared/cache/mocks"
	"tripbook/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	flights *catalogMocks.MockFlight
	hotels  *catalogMocks.MockHotel
	cache   *cacheMocks.MockRedisCache
	svc     service.Catalog
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 600

	f := fixture{
		flights: catalogMocks.NewMockFlight(ctrl),
		hotels:  catalogMocks.NewMockHotel(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.flights, f.hotels, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 600).Return(nil).AnyTimes()

	return f
}

func TestCatalog_Flights(t *testing.T) {
	flights := []model.Flight{
		{ID: "FL-001", CarrierCode: "BG", PriceEconomy: 8000, Available: true},
		{ID: "FL-002", CarrierCode: "BS", PriceEconomy: 9000, Available: true},
	}

	tests := []struct {
		name      string
		setupMock func(f fixture)
		want      []model.Flight
		wantErr   bool
	}{
		{
			name: "cache miss reads repository",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "catalog:flights:DAC:CXB", gomock.Any()).Return(cache.Nil)
				f.flights.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(flights, nil)
			},
			want: flights,
		},
		{
			name: "cache hit skips repository",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "catalog:flights:DAC:CXB", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*(value.(*[]model.Flight)) = flights[:1]

						return nil
					})
			},
			want: flights[:1],
		},
		{
			name: "repository error",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				f.flights.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			got, err := f.svc.Flights(context.Background(), "dac", "cxb")
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalog_FlightNotFound(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), "catalog:flight:FL-404", gomock.Any()).Return(cache.Nil)
	f.flights.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Flight{}, nil)

	_, err := f.svc.Flight(context.Background(), "FL-404")

	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestCatalog_Hotels(t *testing.T) {
	f := newFixture(t)

	hotels := []model.Hotel{{ID: "HT-001", Name: "Sea Pearl", LocationCode: "CXB", Available: true}}

	f.cache.EXPECT().Get(gomock.Any(), "catalog:hotels:any", gomock.Any()).Return(cache.Nil)
	f.hotels.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(hotels, nil)

	got, err := f.svc.Hotels(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, hotels, got)
}

func TestCatalog_Hotel(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), "catalog:hotel:HT-001", gomock.Any()).Return(cache.Nil)
	f.hotels.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: "HT-001", Name: "Sea Pearl"}, nil)

	got, err := f.svc.Hotel(context.Background(), "HT-001")

	require.NoError(t, err)
	assert.Equal(t, "Sea Pearl", got.Name)
}
