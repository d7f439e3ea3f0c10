package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vfg2006/grocery-manager-api/internal/domain"
	"github.com/vfg2006/grocery-manager-api/internal/usecases/ordering"
	"github.com/vfg2006/grocery-manager-api/pkg/apiErrors"
	"github.com/vfg2006/grocery-manager-api/pkg/log"
)

const defaultRecentOrdersLimit = 5

// ListOrders retorna todos os pedidos registrados
func ListOrders(service ordering.OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		orders, err := service.ListOrders(r.Context())
		if err != nil {
			logger.WithError(err).Error("orders: erro ao listar pedidos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar pedidos", nil)
			return
		}

		logger.WithField("total", len(orders)).Info("orders: pedidos listados com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(orders); err != nil {
			logger.WithError(err).Error("orders: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ListRecentOrders retorna os pedidos mais recentes, limitados pelo parâmetro limit
func ListRecentOrders(service ordering.OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit := defaultRecentOrdersLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit deve ser um inteiro positivo", nil)
				return
			}
			limit = parsed
		}

		orders, err := service.ListRecentOrders(r.Context(), limit)
		if err != nil {
			logger.WithError(err).Error("orders: erro ao listar pedidos recentes")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar pedidos recentes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(orders); err != nil {
			logger.WithError(err).Error("orders: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetOrder retorna um pedido com seus itens
func GetOrder(service ordering.OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		orderID, err := pathID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de pedido inválido", nil)
			return
		}

		order, err := service.GetOrder(r.Context(), orderID)
		if err != nil {
			if errors.Is(err, ordering.ErrOrderNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Pedido não encontrado", nil)
				return
			}

			logger.WithError(err).WithField("order_id", orderID).Error("orders: erro ao buscar pedido")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar pedido", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(order); err != nil {
			logger.WithError(err).Error("orders: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// SaveOrder cria um novo pedido ou atualiza um existente quando order_id é informado
func SaveOrder(service ordering.OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.SaveOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("orders: payload inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		orderID, err := service.SaveOrder(r.Context(), &req)
		if err != nil {
			switch {
			case errors.Is(err, ordering.ErrCustomerNameRequired),
				errors.Is(err, ordering.ErrOrderDetailsRequired),
				errors.Is(err, ordering.ErrInvalidOrderItem):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			case errors.Is(err, ordering.ErrOrderNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Pedido não encontrado", nil)
			default:
				logger.WithError(err).Error("orders: erro ao salvar pedido")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar pedido", nil)
			}
			return
		}

		logger.WithFields(log.Fields{
			"order_id": orderID,
			"customer": req.CustomerName,
		}).Info("orders: pedido salvo com sucesso")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"order_id": orderID})
	})
}

// DeleteOrder remove um pedido e seus itens
func DeleteOrder(service ordering.OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		orderID, err := pathID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de pedido inválido", nil)
			return
		}

		if err := service.DeleteOrder(r.Context(), orderID); err != nil {
			if errors.Is(err, ordering.ErrOrderNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Pedido não encontrado", nil)
				return
			}

			logger.WithError(err).WithField("order_id", orderID).Error("orders: erro ao remover pedido")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover pedido", nil)
			return
		}

		logger.WithField("order_id", orderID).Info("orders: pedido removido com sucesso")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"message": "Pedido removido com sucesso"})
	})
}
