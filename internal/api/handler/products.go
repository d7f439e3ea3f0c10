package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/grocery-manager-api/internal/domain"
	"github.com/vfg2006/grocery-manager-api/internal/usecases/product"
	"github.com/vfg2006/grocery-manager-api/pkg/apiErrors"
	"github.com/vfg2006/grocery-manager-api/pkg/log"
)

// ListProducts retorna todos os produtos cadastrados com sua unidade de medida
func ListProducts(service product.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		products, err := service.ListProducts(r.Context())
		if err != nil {
			logger.WithError(err).Error("products: erro ao listar produtos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar produtos", nil)
			return
		}

		logger.WithField("total", len(products)).Info("products: produtos listados com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(products); err != nil {
			logger.WithError(err).Error("products: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// CreateProduct cadastra um novo produto
func CreateProduct(service product.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.CreateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("products: payload inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		productID, err := service.CreateProduct(r.Context(), &req)
		if err != nil {
			writeProductError(w, logger, err, "products: erro ao criar produto")
			return
		}

		logger.WithFields(log.Fields{
			"product_id": productID,
			"name":       req.Name,
		}).Info("products: produto criado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"product_id": productID})
	})
}

// UpdateProduct atualiza um produto existente
func UpdateProduct(service product.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		productID, err := pathID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de produto inválido", nil)
			return
		}

		var req domain.UpdateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("products: payload inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}
		req.ProductID = productID

		if err := service.UpdateProduct(r.Context(), &req); err != nil {
			writeProductError(w, logger, err, "products: erro ao atualizar produto")
			return
		}

		logger.WithField("product_id", productID).Info("products: produto atualizado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"message": "Produto atualizado com sucesso"})
	})
}

// DeleteProduct remove um produto
func DeleteProduct(service product.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		productID, err := pathID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de produto inválido", nil)
			return
		}

		if err := service.DeleteProduct(r.Context(), productID); err != nil {
			writeProductError(w, logger, err, "products: erro ao remover produto")
			return
		}

		logger.WithField("product_id", productID).Info("products: produto removido com sucesso")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"message": "Produto removido com sucesso"})
	})
}

func writeProductError(w http.ResponseWriter, logger log.Logger, err error, logMsg string) {
	switch {
	case errors.Is(err, product.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
	case errors.Is(err, product.ErrNameRequired),
		errors.Is(err, product.ErrUomRequired),
		errors.Is(err, product.ErrNegativePrice),
		errors.Is(err, product.ErrNegativeQuantity):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	default:
		logger.WithError(err).Error(logMsg)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar produto", nil)
	}
}

// pathID extrai o parâmetro :id da rota como inteiro
func pathID(r *http.Request) (int64, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")
	return strconv.ParseInt(raw, 10, 64)
}
