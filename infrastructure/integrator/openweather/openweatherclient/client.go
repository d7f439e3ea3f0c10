package openweatherclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/grocery-manager-api/internal/config"
)

var (
	ErrCityNotFound = errors.New("city not found")
	ErrInvalidKey   = errors.New("invalid OpenWeather API key")
)

// CurrentWeatherResponse é o subconjunto da resposta da OpenWeather API que
// a aplicação consome
type CurrentWeatherResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  int     `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
}

type Client interface {
	GetCurrentWeather(ctx context.Context, city string) (*CurrentWeatherResponse, error)
}

type OpenWeatherClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &OpenWeatherClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		config: cfg,
	}
}

// GetCurrentWeather consulta o clima atual da cidade, em unidades métricas
func (c *OpenWeatherClient) GetCurrentWeather(ctx context.Context, city string) (*CurrentWeatherResponse, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("units", "metric")
	params.Set("appid", c.config.Weather.APIKey)

	endpoint := fmt.Sprintf("%s/weather?%s", c.config.Weather.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar requisição para a OpenWeather API")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar a OpenWeather API")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrCityNotFound
	case http.StatusUnauthorized:
		return nil, ErrInvalidKey
	default:
		return nil, errors.Errorf("OpenWeather API retornou status inesperado: %s", resp.Status)
	}

	weather := &CurrentWeatherResponse{}
	if err := json.NewDecoder(resp.Body).Decode(weather); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta da OpenWeather API")
	}

	return weather, nil
}
