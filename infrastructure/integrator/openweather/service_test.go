package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/grocery-manager-api/infrastructure/integrator/openweather/openweatherclient"
	"github.com/vfg2006/grocery-manager-api/internal/config"
)

func weatherConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Weather.BaseURL = baseURL
	cfg.Weather.APIKey = "test-key"
	cfg.Weather.DefaultCity = "Copenhagen"
	return cfg
}

func TestGetCurrentConditions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))

		switch r.URL.Query().Get("q") {
		case "Copenhagen":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"name": "Copenhagen",
				"weather": [{"id": 803, "main": "Clouds", "description": "broken clouds", "icon": "04d"}],
				"main": {"temp": 12.3, "feels_like": 11.1, "temp_min": 10.0, "temp_max": 14.0, "pressure": 1012, "humidity": 76}
			}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	cfg := weatherConfig(server.URL)
	service := New(cfg, openweatherclient.NewClient(cfg))

	t.Run("cidade informada", func(t *testing.T) {
		conditions, err := service.GetCurrentConditions(context.Background(), "Copenhagen")
		require.NoError(t, err)

		assert.Equal(t, "Copenhagen", conditions.City)
		assert.Equal(t, 12.3, conditions.Temp)
		assert.Equal(t, 76, conditions.Humidity)
		assert.Equal(t, "broken clouds", conditions.Description)
		assert.Equal(t, "04d", conditions.Icon)
	})

	t.Run("cidade vazia usa a cidade padrão", func(t *testing.T) {
		conditions, err := service.GetCurrentConditions(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "Copenhagen", conditions.City)
	})

	t.Run("cidade desconhecida", func(t *testing.T) {
		_, err := service.GetCurrentConditions(context.Background(), "Atlantis")
		assert.ErrorIs(t, err, openweatherclient.ErrCityNotFound)
	})
}

func TestGetCurrentConditions_InvalidKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	cfg := weatherConfig(server.URL)
	service := New(cfg, openweatherclient.NewClient(cfg))

	_, err := service.GetCurrentConditions(context.Background(), "Copenhagen")
	assert.ErrorIs(t, err, openweatherclient.ErrInvalidKey)
}
