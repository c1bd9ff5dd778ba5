package occupancy_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tripbook/infras/otel/mocks"
	"tripbook/internal/handlers/occupancy"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() chi.Router {
	router := chi.NewRouter()
	handler := occupancy.New(mocks.NewOtel())
	router.Route("/v1", handler.Router)

	return router
}

func post(t *testing.T, target, body string) (int, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	newRouter().ServeHTTP(rec, req)

	var res map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	return rec.Code, res
}

func TestPassengers(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		want     map[string]any
	}{
		{
			name:     "adds a child",
			body:     `{"passengers":{"adults":1},"occupant":"children","delta":1}`,
			wantCode: http.StatusOK,
			want:     map[string]any{"adults": 1.0, "children": 1.0, "infants": 0.0, "total": 2.0},
		},
		{
			name:     "infant beyond adults is ignored",
			body:     `{"passengers":{"adults":1,"infants":1},"occupant":"infants","delta":1}`,
			wantCode: http.StatusOK,
			want:     map[string]any{"adults": 1.0, "children": 0.0, "infants": 1.0, "total": 2.0},
		},
		{
			name:     "removing an adult drops extra infants",
			body:     `{"passengers":{"adults":2,"infants":2},"occupant":"adults","delta":-1}`,
			wantCode: http.StatusOK,
			want:     map[string]any{"adults": 1.0, "children": 0.0, "infants": 1.0, "total": 2.0},
		},
		{
			name:     "unknown occupant",
			body:     `{"passengers":{"adults":1},"occupant":"pets","delta":1}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "delta out of range",
			body:     `{"passengers":{"adults":1},"occupant":"adults","delta":3}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, res := post(t, "/v1/occupancy/passengers", tt.body)
			require.Equal(t, tt.wantCode, code)

			if tt.want != nil {
				assert.Equal(t, tt.want, res["data"])
			}
		})
	}
}

func TestRooms(t *testing.T) {
	t.Run("add caps at four rooms", func(t *testing.T) {
		body := `{"rooms":[{"adults":1},{"adults":1},{"adults":1},{"adults":1}],"action":"add"}`

		code, res := post(t, "/v1/occupancy/rooms", body)
		require.Equal(t, http.StatusOK, code)

		data, ok := res["data"].(map[string]any)
		require.True(t, ok)
		assert.Len(t, data["rooms"], 4)
		assert.InDelta(t, 4, data["guests"], 0)
	})

	t.Run("remove keeps the last room", func(t *testing.T) {
		code, res := post(t, "/v1/occupancy/rooms", `{"rooms":[{"adults":2}],"action":"remove","index":0}`)
		require.Equal(t, http.StatusOK, code)

		data, ok := res["data"].(map[string]any)
		require.True(t, ok)
		assert.Len(t, data["rooms"], 1)
	})

	t.Run("update steps one room", func(t *testing.T) {
		body := `{"rooms":[{"adults":1},{"adults":1}],"action":"update","index":1,"occupant":"children","delta":1}`

		code, res := post(t, "/v1/occupancy/rooms", body)
		require.Equal(t, http.StatusOK, code)

		data, ok := res["data"].(map[string]any)
		require.True(t, ok)
		assert.InDelta(t, 3, data["guests"], 0)
	})

	t.Run("update needs an occupant", func(t *testing.T) {
		code, _ := post(t, "/v1/occupancy/rooms", `{"rooms":[{"adults":1}],"action":"update","delta":1}`)
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("invalid room is rejected", func(t *testing.T) {
		code, _ := post(t, "/v1/occupancy/rooms", `{"rooms":[{"adults":0}],"action":"add"}`)
		assert.Equal(t, http.StatusBadRequest, code)
	})
}
