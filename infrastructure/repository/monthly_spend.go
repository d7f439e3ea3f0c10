package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/grocery-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/grocery-manager-api/internal/domain"
)

const (
	monthlySpendTable = "monthly_spend_snapshots mss"
)

type MonthlySpendRepository interface {
	GetByPeriod(ctx context.Context, period string) (*domain.MonthlySpendEntry, error)
	SaveOrUpdate(ctx context.Context, entry *domain.MonthlySpendEntry) error
	GetAllPeriods(ctx context.Context) ([]string, error)
}

type monthlySpendRepository struct {
	conn postgres.Conn
}

func NewMonthlySpendRepository(conn postgres.Conn) MonthlySpendRepository {
	return &monthlySpendRepository{
		conn: conn,
	}
}

// GetByPeriod busca o snapshot de gastos do período mm-yyyy informado.
// Retorna nil quando não existe snapshot para o período.
func (r *monthlySpendRepository) GetByPeriod(ctx context.Context, period string) (*domain.MonthlySpendEntry, error) {
	query, args, err := squirrel.
		Select("mss.id, mss.period, mss.report, mss.created_at, mss.updated_at").
		From(monthlySpendTable).
		Where(squirrel.Eq{"mss.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry := &domain.MonthlySpendEntry{}
	var reportJSON []byte

	row := r.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(
		&entry.ID,
		&entry.Period,
		&reportJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot de gastos: %w", err)
	}

	if reportJSON != nil {
		report := &domain.SpendResult{}
		if err := json.Unmarshal(reportJSON, report); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON do relatório: %w", err)
		}
		entry.Report = report
	}

	return entry, nil
}

func (r *monthlySpendRepository) SaveOrUpdate(ctx context.Context, entry *domain.MonthlySpendEntry) error {
	var reportJSON []byte
	var err error

	if entry.Report != nil {
		reportJSON, err = json.Marshal(entry.Report)
		if err != nil {
			return fmt.Errorf("erro ao serializar relatório para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("monthly_spend_snapshots").
		Columns("period", "report").
		Values(entry.Period, reportJSON).
		Suffix(`
			ON CONFLICT (period) DO UPDATE SET
				report = EXCLUDED.report,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// GetAllPeriods retorna todos os períodos com snapshot no formato mm-yyyy
func (r *monthlySpendRepository) GetAllPeriods(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT period").
		From("monthly_spend_snapshots").
		OrderBy("period ASC").
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

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}
