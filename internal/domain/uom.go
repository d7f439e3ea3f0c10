package domain

// Uom representa uma unidade de medida (kg, unidade, litro, etc)
type Uom struct {
	ID   int64  `json:"uom_id"`
	Name string `json:"uom_name"`
}
