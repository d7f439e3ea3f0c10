package product

import "errors"

// Erros específicos para o contexto de produtos
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrNoMatchingProducts = errors.New("no matching products found")
	ErrNameRequired       = errors.New("product name is required")
	ErrUomRequired        = errors.New("uom_id is required")
	ErrNegativePrice      = errors.New("prices must be non-negative")
	ErrNegativeQuantity   = errors.New("quantity must be non-negative")
	ErrEmptyProductIDs    = errors.New("product_ids must be a non-empty list")
	ErrInvalidProductID   = errors.New("product_ids must contain positive integers only")
)
