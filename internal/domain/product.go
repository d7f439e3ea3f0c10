// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

type Product struct {
	ID           int64     `json:"product_id"`
	Name         string    `json:"name"`
	UomID        int64     `json:"uom_id"`
	UomName      string    `json:"uom_name"`
	Category     string    `json:"category"`
	PricePerUnit float64   `json:"price_per_unit"`
	SellingPrice float64   `json:"selling_price"`
	Quantity     int       `json:"quantity"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductSnapshot é a cópia pontual de estoque e preços de um produto,
// entrada para a simulação de receita. Imutável durante uma simulação.
type ProductSnapshot struct {
	Name         string  `json:"name"`
	InitialStock int     `json:"initial_stock"`
	BuyPrice     float64 `json:"buy_price"`
	SellPrice    float64 `json:"sell_price"`
}

type CreateProductRequest struct {
	Name         string  `json:"name"`
	UomID        int64   `json:"uom_id"`
	Category     string  `json:"category"`
	PricePerUnit float64 `json:"price_per_unit"`
	SellingPrice float64 `json:"selling_price"`
	Quantity     int     `json:"quantity"`
}

type UpdateProductRequest struct {
	ProductID    int64   `json:"product_id"`
	Name         string  `json:"name"`
	UomID        int64   `json:"uom_id"`
	Category     string  `json:"category"`
	PricePerUnit float64 `json:"price_per_unit"`
	SellingPrice float64 `json:"selling_price"`
	Quantity     int     `json:"quantity"`
}
