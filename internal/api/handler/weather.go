package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/grocery-manager-api/infrastructure/integrator/openweather"
	"github.com/vfg2006/grocery-manager-api/infrastructure/integrator/openweather/openweatherclient"
	"github.com/vfg2006/grocery-manager-api/pkg/apiErrors"
	"github.com/vfg2006/grocery-manager-api/pkg/log"
)

// GetCurrentWeather retorna as condições climáticas atuais da cidade informada,
// usando a cidade padrão configurada quando o parâmetro está ausente
func GetCurrentWeather(service openweather.WeatherIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		city := r.URL.Query().Get("city")

		conditions, err := service.GetCurrentConditions(r.Context(), city)
		if err != nil {
			switch {
			case errors.Is(err, openweatherclient.ErrCityNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Cidade não encontrada", nil)
			case errors.Is(err, openweatherclient.ErrInvalidKey):
				logger.WithError(err).Error("weather: chave da API de clima rejeitada")
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar serviço de clima", nil)
			default:
				logger.WithError(err).WithField("city", city).Error("weather: erro ao consultar condições atuais")
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar serviço de clima", nil)
			}
			return
		}

		logger.WithFields(log.Fields{
			"city": conditions.City,
			"temp": conditions.Temp,
		}).Info("weather: condições atuais recuperadas com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(conditions); err != nil {
			logger.WithError(err).Error("weather: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
