package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/grocery-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/grocery-manager-api/internal/domain"
)

const (
	productsTable = "products p"
	uomTable      = "uom u"
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	GetSnapshotsByIDs(ctx context.Context, productIDs []int64) ([]domain.ProductSnapshot, error)
	CreateProduct(ctx context.Context, product *domain.CreateProductRequest) (int64, error)
	UpdateProduct(ctx context.Context, product *domain.UpdateProductRequest) (int64, error)
	DeleteProduct(ctx context.Context, productID int64) (int64, error)
}

type productRepository struct {
	conn postgres.Conn
}

func NewProductRepository(conn postgres.Conn) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.product_id, p.name, p.uom_id, u.uom_name, p.category, p.price_per_unit, p.selling_price, p.quantity, p.created_at, p.updated_at").
		From(productsTable).
		Join("uom u ON p.uom_id = u.uom_id").
		OrderBy("p.product_id ASC").
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

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := &domain.Product{}
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.UomID,
			&product.UomName,
			&product.Category,
			&product.PricePerUnit,
			&product.SellingPrice,
			&product.Quantity,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

// GetSnapshotsByIDs retorna a cópia pontual de estoque e preços dos produtos
// informados, entrada para a simulação de receita
func (r *productRepository) GetSnapshotsByIDs(ctx context.Context, productIDs []int64) ([]domain.ProductSnapshot, error) {
	query, args, err := squirrel.
		Select("p.name, p.quantity, p.price_per_unit, p.selling_price").
		From(productsTable).
		Where(squirrel.Eq{"p.product_id": productIDs}).
		OrderBy("p.product_id ASC").
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

	snapshots := make([]domain.ProductSnapshot, 0, len(productIDs))
	for rows.Next() {
		var snapshot domain.ProductSnapshot
		if err := rows.Scan(
			&snapshot.Name,
			&snapshot.InitialStock,
			&snapshot.BuyPrice,
			&snapshot.SellPrice,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot de produto: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *domain.CreateProductRequest) (int64, error) {
	query, args, err := squirrel.
		Insert("products").
		Columns("name", "uom_id", "category", "price_per_unit", "selling_price", "quantity").
		Values(product.Name, product.UomID, product.Category, product.PricePerUnit, product.SellingPrice, product.Quantity).
		Suffix("RETURNING product_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var productID int64
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&productID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return 0, fmt.Errorf("erro ao inserir produto: %w", err)
	}

	return productID, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *domain.UpdateProductRequest) (int64, error) {
	query, args, err := squirrel.
		Update("products").
		Set("name", product.Name).
		Set("uom_id", product.UomID).
		Set("category", product.Category).
		Set("price_per_unit", product.PricePerUnit).
		Set("selling_price", product.SellingPrice).
		Set("quantity", product.Quantity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"product_id": product.ProductID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execRowsAffected(ctx, query, args)
}

func (r *productRepository) DeleteProduct(ctx context.Context, productID int64) (int64, error) {
	query, args, err := squirrel.
		Delete("products").
		Where(squirrel.Eq{"product_id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execRowsAffected(ctx, query, args)
}

func (r *productRepository) execRowsAffected(ctx context.Context, query string, args []interface{}) (int64, error) {
	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
