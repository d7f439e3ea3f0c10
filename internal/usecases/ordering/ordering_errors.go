package ordering

import "errors"

// Erros específicos para o contexto de pedidos
var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrCustomerNameRequired = errors.New("customer_name is required")
	ErrOrderDetailsRequired = errors.New("order_details must be a non-empty list")
	ErrInvalidOrderItem     = errors.New("each order item needs product_id, quantity and total_price")
	ErrGenerateReference    = errors.New("error generating order reference")
)
