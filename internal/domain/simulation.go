package domain

// SimulationDetail é o resultado da simulação para um único produto
type SimulationDetail struct {
	Product             string  `json:"product"`
	SoldUnits           int     `json:"sold_units"`
	InitialStock        int     `json:"initial_stock"`
	RemainingStock      int     `json:"remaining_stock"`
	Revenue             float64 `json:"revenue"`
	Cost                float64 `json:"cost"`
	Profit              float64 `json:"profit"`
	ProfitMarginPercent float64 `json:"profit_margin_percent"`
}

// SimulationSummary agrega os valores de todos os produtos simulados.
// Todos os valores monetários são arredondados para duas casas decimais.
type SimulationSummary struct {
	TotalRevenue        float64 `json:"total_revenue"`
	TotalCost           float64 `json:"total_cost"`
	TotalProfit         float64 `json:"total_profit"`
	ProfitMarginPercent float64 `json:"profit_margin_percent"`
	TotalUnitsSold      int     `json:"total_units_sold"`
}

type SimulationResult struct {
	Summary SimulationSummary   `json:"summary"`
	Details []*SimulationDetail `json:"details"`
}
