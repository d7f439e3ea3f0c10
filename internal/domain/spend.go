package domain

import "time"

// SpendLineItem é um registro de compra datado com quantidade, custo unitário
// e categoria. Entrada para o agregador de gastos mensais.
type SpendLineItem struct {
	Date     time.Time `json:"date"`
	Qty      float64   `json:"qty"`
	Cost     float64   `json:"cost"`
	Category string    `json:"category"`
}

// CostDriver é a categoria com maior participação no gasto total do período
type CostDriver struct {
	Category string  `json:"category"`
	Spend    float64 `json:"spend"`
}

type SpendResult struct {
	TotalSpend        float64            `json:"total_spend"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
	HighestCostDriver *CostDriver        `json:"highest_cost_driver"`
}

// MonthlySpendEntry é o snapshot persistido do relatório de gastos de um mês,
// no formato de período mm-yyyy (ex: 01-2025)
type MonthlySpendEntry struct {
	ID        int64        `json:"id"`
	Period    string       `json:"period"`
	Report    *SpendResult `json:"report"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// AvailablePeriods representa os períodos mensais com snapshot de gastos disponível
type AvailablePeriods struct {
	Periods []string `json:"periods"` // Lista de períodos no formato mm-yyyy
	Years   []string `json:"years"`   // Lista de anos únicos disponíveis
	Months  []string `json:"months"`  // Lista de meses únicos disponíveis
}
