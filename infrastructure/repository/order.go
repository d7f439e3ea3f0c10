package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/grocery-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/grocery-manager-api/internal/domain"
)

const (
	ordersTable       = "orders o"
	orderDetailsTable = "order_details od"
)

type OrderRepository interface {
	SaveOrder(ctx context.Context, order *domain.SaveOrderRequest, reference string) (int64, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	ListRecentOrders(ctx context.Context, limit int) ([]*domain.Order, error)
	GetOrderWithItems(ctx context.Context, orderID int64) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID int64) (int64, error)
	ListPurchaseLines(ctx context.Context, startDate, endDate time.Time) ([]domain.SpendLineItem, error)
}

type orderRepository struct {
	conn postgres.Conn
}

func NewOrderRepository(conn postgres.Conn) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

// SaveOrder cria um novo pedido ou, quando OrderID está preenchido, atualiza
// o pedido existente substituindo todos os seus itens. Tudo dentro de uma
// única transação, para que o pedido nunca fique sem itens.
func (r *orderRepository) SaveOrder(ctx context.Context, order *domain.SaveOrderRequest, reference string) (int64, error) {
	orderID := order.OrderID

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if orderID > 0 {
			// Edição: remove os itens anteriores e atualiza o cabeçalho
			deleteSQL, deleteArgs, err := squirrel.
				Delete("order_details").
				Where(squirrel.Eq{"order_id": orderID}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
				return fmt.Errorf("erro ao remover itens do pedido: %w", err)
			}

			updateSQL, updateArgs, err := squirrel.
				Update("orders").
				Set("customer_name", order.CustomerName).
				Set("total_price", order.TotalPrice).
				Set("datetime", time.Now()).
				Where(squirrel.Eq{"order_id": orderID}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, updateSQL, updateArgs...); err != nil {
				return fmt.Errorf("erro ao atualizar pedido: %w", err)
			}
		} else {
			insertSQL, insertArgs, err := squirrel.
				Insert("orders").
				Columns("reference", "customer_name", "total_price", "datetime").
				Values(reference, order.CustomerName, order.TotalPrice, time.Now()).
				Suffix("RETURNING order_id").
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if err := tx.QueryRowContext(ctx, insertSQL, insertArgs...).Scan(&orderID); err != nil {
				return fmt.Errorf("erro ao inserir pedido: %w", err)
			}
		}

		if len(order.OrderDetails) == 0 {
			return nil
		}

		detailsBuilder := squirrel.
			Insert("order_details").
			Columns("order_id", "product_id", "quantity", "total_price").
			PlaceholderFormat(squirrel.Dollar)

		for _, item := range order.OrderDetails {
			detailsBuilder = detailsBuilder.Values(orderID, item.ProductID, item.Quantity, item.TotalPrice)
		}

		detailsSQL, detailsArgs, err := detailsBuilder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, detailsSQL, detailsArgs...); err != nil {
			return fmt.Errorf("erro ao inserir itens do pedido: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return orderID, nil
}

func (r *orderRepository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return r.listOrders(ctx, 0)
}

func (r *orderRepository) ListRecentOrders(ctx context.Context, limit int) ([]*domain.Order, error) {
	if limit <= 0 {
		limit = 5
	}
	return r.listOrders(ctx, uint64(limit))
}

func (r *orderRepository) listOrders(ctx context.Context, limit uint64) ([]*domain.Order, error) {
	queryBuilder := squirrel.
		Select("o.order_id, o.reference, o.customer_name, o.total_price, o.datetime").
		From(ordersTable).
		OrderBy("o.datetime DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(limit)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order := &domain.Order{}
		if err := rows.Scan(
			&order.ID,
			&order.Reference,
			&order.CustomerName,
			&order.TotalPrice,
			&order.Datetime,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

// GetOrderWithItems retorna o cabeçalho do pedido com seus itens (join com
// produtos e unidades de medida). Retorna nil quando o pedido não existe.
func (r *orderRepository) GetOrderWithItems(ctx context.Context, orderID int64) (*domain.Order, error) {
	headerSQL, headerArgs, err := squirrel.
		Select("o.order_id, o.reference, o.customer_name, o.total_price, o.datetime").
		From(ordersTable).
		Where(squirrel.Eq{"o.order_id": orderID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	order := &domain.Order{}
	row := r.conn.QueryRow(ctx, headerSQL, headerArgs...)
	if err := row.Scan(
		&order.ID,
		&order.Reference,
		&order.CustomerName,
		&order.TotalPrice,
		&order.Datetime,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
	}

	itemsSQL, itemsArgs, err := squirrel.
		Select("od.order_id, od.product_id, p.name, u.uom_name, od.quantity, od.total_price").
		From(orderDetailsTable).
		Join("products p ON od.product_id = p.product_id").
		Join("uom u ON p.uom_id = u.uom_id").
		Where(squirrel.Eq{"od.order_id": orderID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, itemsSQL, itemsArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.OrderItem, 0)
	for rows.Next() {
		item := &domain.OrderItem{}
		if err := rows.Scan(
			&item.OrderID,
			&item.ProductID,
			&item.ProductName,
			&item.UomName,
			&item.Quantity,
			&item.TotalPrice,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear item do pedido: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	order.Items = items
	return order, nil
}

// DeleteOrder remove o pedido e seus itens na mesma transação
func (r *orderRepository) DeleteOrder(ctx context.Context, orderID int64) (int64, error) {
	var rowsAffected int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		detailsSQL, detailsArgs, err := squirrel.
			Delete("order_details").
			Where(squirrel.Eq{"order_id": orderID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, detailsSQL, detailsArgs...); err != nil {
			return fmt.Errorf("erro ao remover itens do pedido: %w", err)
		}

		orderSQL, orderArgs, err := squirrel.
			Delete("orders").
			Where(squirrel.Eq{"order_id": orderID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		result, err := tx.ExecContext(ctx, orderSQL, orderArgs...)
		if err != nil {
			return fmt.Errorf("erro ao remover pedido: %w", err)
		}

		rowsAffected, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return rowsAffected, nil
}

// ListPurchaseLines materializa os itens de pedido do período como linhas de
// gasto (data, quantidade, custo unitário de compra, categoria do produto),
// entrada para o agregador de gastos mensais
func (r *orderRepository) ListPurchaseLines(ctx context.Context, startDate, endDate time.Time) ([]domain.SpendLineItem, error) {
	query, args, err := squirrel.
		Select("o.datetime, od.quantity, p.price_per_unit, p.category").
		From(orderDetailsTable).
		Join("orders o ON od.order_id = o.order_id").
		Join("products p ON od.product_id = p.product_id").
		Where(squirrel.GtOrEq{"o.datetime": startDate}).
		Where(squirrel.Lt{"o.datetime": endDate}).
		OrderBy("o.datetime ASC").
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

	lines := make([]domain.SpendLineItem, 0)
	for rows.Next() {
		var line domain.SpendLineItem
		var category sql.NullString

		if err := rows.Scan(&line.Date, &line.Qty, &line.Cost, &category); err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de gasto: %w", err)
		}

		line.Category = category.String
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return lines, nil
}
