package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vfg2006/grocery-manager-api/internal/usecases"
	"github.com/vfg2006/grocery-manager-api/internal/usecases/spending"
	"github.com/vfg2006/grocery-manager-api/pkg/apiErrors"
	"github.com/vfg2006/grocery-manager-api/pkg/log"
)

// GetMonthlySpendReport retorna o relatório de gastos de um período específico
func GetMonthlySpendReport(service spending.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rawMonth := r.URL.Query().Get("month")
		rawYear := r.URL.Query().Get("year")

		if rawMonth == "" || rawYear == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar mês e ano nos parâmetros", nil)
			return
		}

		month, err := strconv.Atoi(rawMonth)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido", nil)
			return
		}

		year, err := strconv.Atoi(rawYear)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"month": month,
			"year":  year,
		}).Info("spend-report: buscando relatório mensal de gastos")

		report, err := service.GetMonthlyReport(r.Context(), year, month)
		if err != nil {
			if errors.Is(err, usecases.ErrInvalidArgument) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidArgument, err.Error(), nil)
				return
			}

			logger.WithError(err).WithFields(log.Fields{
				"month": month,
				"year":  year,
			}).Error("spend-report: erro ao buscar relatório mensal")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar relatório mensal de gastos", nil)
			return
		}

		logger.WithFields(log.Fields{
			"month":       month,
			"year":        year,
			"total_spend": report.TotalSpend,
		}).Info("spend-report: relatório gerado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("spend-report: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetAvailableSpendPeriods retorna os períodos (meses e anos) com snapshot disponível
func GetAvailableSpendPeriods(service spending.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("spend-periods: buscando períodos disponíveis")

		availablePeriods, err := service.GetAvailablePeriods(r.Context())
		if err != nil {
			logger.WithError(err).Error("spend-periods: erro ao buscar períodos disponíveis")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar períodos disponíveis", nil)
			return
		}

		logger.WithFields(log.Fields{
			"total_periods": len(availablePeriods.Periods),
			"years":         availablePeriods.Years,
			"months":        availablePeriods.Months,
		}).Info("spend-periods: períodos disponíveis recuperados com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(availablePeriods); err != nil {
			logger.WithError(err).Error("spend-periods: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
