package handler

import (
	"net/http"

	"github.com/vfg2006/grocery-manager-api/infrastructure/repository"
	"github.com/vfg2006/grocery-manager-api/pkg/apiErrors"
	"github.com/vfg2006/grocery-manager-api/pkg/log"
)

// ListUoms retorna as unidades de medida disponíveis
func ListUoms(repo repository.UomRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		uoms, err := repo.ListUoms(r.Context())
		if err != nil {
			logger.WithError(err).Error("uoms: erro ao listar unidades de medida")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar unidades de medida", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(uoms); err != nil {
			logger.WithError(err).Error("uoms: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
