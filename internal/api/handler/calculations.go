package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/grocery-manager-api/internal/domain"
	"github.com/vfg2006/grocery-manager-api/internal/usecases"
	"github.com/vfg2006/grocery-manager-api/internal/usecases/product"
	"github.com/vfg2006/grocery-manager-api/internal/usecases/simulating"
	"github.com/vfg2006/grocery-manager-api/internal/usecases/spending"
	"github.com/vfg2006/grocery-manager-api/pkg/apiErrors"
	"github.com/vfg2006/grocery-manager-api/pkg/log"
	"github.com/vfg2006/grocery-manager-api/pkg/utils"
)

const defaultSimulationDays = 7

// SimulateRevenueRequest é o corpo aceito em POST /v1/calc/revenue
type SimulateRevenueRequest struct {
	ProductIDs []int64 `json:"product_ids"`
	Days       *int    `json:"days"`
	Seed       *int64  `json:"seed"`
}

// AggregateSpendRequest é o corpo aceito em POST /v1/calc/spend
type AggregateSpendRequest struct {
	Year   int              `json:"year"`
	Month  int              `json:"month"`
	Orders []SpendOrderLine `json:"orders"`
}

// SpendOrderLine representa uma linha de compra enviada pelo cliente, com a
// data ainda em formato texto
type SpendOrderLine struct {
	Date     string  `json:"date"`
	Qty      float64 `json:"qty"`
	Cost     float64 `json:"cost"`
	Category string  `json:"category"`
}

// SimulateRevenue busca os snapshots dos produtos informados e executa a
// simulação estocástica de receita
func SimulateRevenue(simulator simulating.Simulator, productService product.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req SimulateRevenueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("calc-revenue: payload inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		days := defaultSimulationDays
		if req.Days != nil {
			days = *req.Days
		}

		logger.WithFields(log.Fields{
			"product_ids": req.ProductIDs,
			"days":        days,
			"seeded":      req.Seed != nil,
		}).Info("calc-revenue: iniciando simulação de receita")

		snapshots, err := productService.GetSnapshots(r.Context(), req.ProductIDs)
		if err != nil {
			switch {
			case errors.Is(err, product.ErrEmptyProductIDs),
				errors.Is(err, product.ErrInvalidProductID):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			case errors.Is(err, product.ErrNoMatchingProducts):
				apiErrors.WriteError(w, apiErrors.ErrNoMatchingRecords, "Nenhum produto encontrado para os identificadores informados", nil)
			default:
				logger.WithError(err).Error("calc-revenue: erro ao buscar produtos")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produtos", nil)
			}
			return
		}

		result, err := simulator.Simulate(snapshots, days, req.Seed)
		if err != nil {
			if errors.Is(err, usecases.ErrInvalidArgument) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidArgument, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("calc-revenue: erro ao executar simulação")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar simulação", nil)
			return
		}

		logger.WithFields(log.Fields{
			"products":      len(result.Details),
			"total_revenue": result.Summary.TotalRevenue,
		}).Info("calc-revenue: simulação concluída")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("calc-revenue: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// AggregateSpend converte as linhas recebidas e agrega os gastos do mês
// informado. Linhas com data em formato irreconhecível são descartadas na
// borda; a conversão de texto para data é responsabilidade do handler
func AggregateSpend(aggregator spending.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req AggregateSpendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("calc-spend: payload inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		lines := make([]domain.SpendLineItem, 0, len(req.Orders))
		dropped := 0

		for _, order := range req.Orders {
			// Data vazia conta como irreconhecível: ParseDate devolve o valor
			// zero sem erro, que o agregador rejeitaria
			if order.Date == "" {
				dropped++
				continue
			}

			date, err := utils.ParseDate(order.Date)
			if err != nil {
				dropped++
				continue
			}

			lines = append(lines, domain.SpendLineItem{
				Date:     *date,
				Qty:      order.Qty,
				Cost:     order.Cost,
				Category: order.Category,
			})
		}

		if dropped > 0 {
			logger.WithField("dropped_lines", dropped).Warn("calc-spend: linhas com data irreconhecível descartadas")
		}

		result, err := aggregator.Aggregate(lines, req.Year, req.Month)
		if err != nil {
			if errors.Is(err, usecases.ErrInvalidArgument) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidArgument, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("calc-spend: erro ao agregar gastos")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao agregar gastos", nil)
			return
		}

		logger.WithFields(log.Fields{
			"year":        req.Year,
			"month":       req.Month,
			"lines":       len(lines),
			"total_spend": result.TotalSpend,
		}).Info("calc-spend: agregação concluída")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("calc-spend: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
