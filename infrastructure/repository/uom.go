package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/grocery-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/grocery-manager-api/internal/domain"
)

type UomRepository interface {
	ListUoms(ctx context.Context) ([]*domain.Uom, error)
}

type uomRepository struct {
	conn postgres.Conn
}

func NewUomRepository(conn postgres.Conn) UomRepository {
	return &uomRepository{
		conn: conn,
	}
}

func (r *uomRepository) ListUoms(ctx context.Context) ([]*domain.Uom, error) {
	query, args, err := squirrel.
		Select("u.uom_id, u.uom_name").
		From(uomTable).
		OrderBy("u.uom_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	uoms := make([]*domain.Uom, 0)
	for rows.Next() {
		uom := &domain.Uom{}
		if err := rows.Scan(&uom.ID, &uom.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear unidade de medida: %w", err)
		}
		uoms = append(uoms, uom)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return uoms, nil
}
