package domain

import "time"

type Order struct {
	ID           int64     `json:"order_id"`
	Reference    string    `json:"reference"`
	CustomerName string    `json:"customer_name"`
	TotalPrice   float64   `json:"total_price"`
	Datetime     time.Time `json:"datetime"`
	Items        []*OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	OrderID     int64   `json:"order_id"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	UomName     string  `json:"uom_name,omitempty"`
	Quantity    float64 `json:"quantity"`
	TotalPrice  float64 `json:"total_price"`
}

// SaveOrderRequest cria um novo pedido ou, quando OrderID está preenchido,
// atualiza o pedido existente substituindo todos os seus itens.
type SaveOrderRequest struct {
	OrderID      int64                   `json:"order_id,omitempty"`
	CustomerName string                  `json:"customer_name"`
	TotalPrice   float64                 `json:"total_price"`
	OrderDetails []*SaveOrderItemRequest `json:"order_details"`
}

type SaveOrderItemRequest struct {
	ProductID  int64   `json:"product_id"`
	Quantity   float64 `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
}
