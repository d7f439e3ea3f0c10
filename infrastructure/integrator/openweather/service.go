package openweather

import (
	"context"

	weatherdomain "github.com/vfg2006/grocery-manager-api/infrastructure/integrator/openweather/domain"
	"github.com/vfg2006/grocery-manager-api/infrastructure/integrator/openweather/openweatherclient"
	"github.com/vfg2006/grocery-manager-api/internal/config"
)

type WeatherIntegrator interface {
	GetCurrentConditions(ctx context.Context, city string) (*weatherdomain.CurrentConditions, error)
}

type WeatherService struct {
	cfg    *config.Config
	Client openweatherclient.Client
}

func New(cfg *config.Config, client openweatherclient.Client) WeatherIntegrator {
	return &WeatherService{
		cfg:    cfg,
		Client: client,
	}
}

// GetCurrentConditions consulta o clima atual; cidade vazia usa a cidade
// padrão da configuração
func (s *WeatherService) GetCurrentConditions(ctx context.Context, city string) (*weatherdomain.CurrentConditions, error) {
	if city == "" {
		city = s.cfg.Weather.DefaultCity
	}

	resp, err := s.Client.GetCurrentWeather(ctx, city)
	if err != nil {
		return nil, err
	}

	conditions := &weatherdomain.CurrentConditions{
		City:      resp.Name,
		Temp:      resp.Main.Temp,
		FeelsLike: resp.Main.FeelsLike,
		TempMin:   resp.Main.TempMin,
		TempMax:   resp.Main.TempMax,
		Pressure:  resp.Main.Pressure,
		Humidity:  resp.Main.Humidity,
	}

	if len(resp.Weather) > 0 {
		conditions.Description = resp.Weather[0].Description
		conditions.Icon = resp.Weather[0].Icon
	}

	return conditions, nil
}
