package simulating

import (
	"math/rand"
	"time"

	"github.com/vfg2006/grocery-manager-api/internal/domain"
	"github.com/vfg2006/grocery-manager-api/internal/usecases"
	"github.com/vfg2006/grocery-manager-api/pkg/utils"
)

const (
	// Limites aceitos para o horizonte de simulação
	MinDays = 1
	MaxDays = 365

	// Parâmetros da distribuição de demanda diária
	demandMean   = 5.0
	demandStdDev = 2.0
)

// Simulator simula a receita e o lucro de uma lista de produtos ao longo de
// um número de dias, com demanda diária aleatória por produto.
type Simulator interface {
	Simulate(products []domain.ProductSnapshot, days int, seed *int64) (*domain.SimulationResult, error)
}

type Service struct{}

func NewService() Simulator {
	return &Service{}
}

// Simulate executa a simulação de vendas.
//
// Determinismo: com a mesma seed e as mesmas entradas, duas chamadas produzem
// resultados idênticos. Cada chamada usa um gerador próprio, criado a partir
// da seed informada. Nenhum estado aleatório global é re-semeado, então
// chamadas concorrentes não interferem entre si. Seed nula usa uma fonte
// semeada pelo relógio e não garante repetibilidade.
func (s *Service) Simulate(products []domain.ProductSnapshot, days int, seed *int64) (*domain.SimulationResult, error) {
	if days < MinDays || days > MaxDays {
		return nil, usecases.NewInvalidArgument("days", "deve ser um inteiro entre 1 e 365")
	}

	if seed != nil && *seed < 0 {
		return nil, usecases.NewInvalidArgument("seed", "deve ser um inteiro não-negativo")
	}

	rng := newRand(seed)

	var totalRevenue, totalCost float64
	totalUnitsSold := 0
	details := make([]*domain.SimulationDetail, 0, len(products))

	for _, p := range products {
		stock := p.InitialStock
		soldTotal := 0

		for day := 0; day < days; day++ {
			salesToday := dailySales(rng, stock)
			soldTotal += salesToday
			stock -= salesToday
		}

		revenue := float64(soldTotal) * p.SellPrice
		cost := float64(soldTotal) * p.BuyPrice
		profit := revenue - cost

		totalRevenue += revenue
		totalCost += cost
		totalUnitsSold += soldTotal

		details = append(details, &domain.SimulationDetail{
			Product:             p.Name,
			SoldUnits:           soldTotal,
			InitialStock:        p.InitialStock,
			RemainingStock:      stock,
			Revenue:             revenue,
			Cost:                cost,
			Profit:              profit,
			ProfitMarginPercent: marginPercent(profit, revenue),
		})
	}

	totalProfit := totalRevenue - totalCost

	return &domain.SimulationResult{
		Summary: domain.SimulationSummary{
			TotalRevenue:        utils.RoundWithTwoDecimalPlace(totalRevenue),
			TotalCost:           utils.RoundWithTwoDecimalPlace(totalCost),
			TotalProfit:         utils.RoundWithTwoDecimalPlace(totalProfit),
			ProfitMarginPercent: marginPercent(totalProfit, totalRevenue),
			TotalUnitsSold:      totalUnitsSold,
		},
		Details: details,
	}, nil
}

// dailySales sorteia a demanda do dia (normal, média 5, desvio 2) truncada
// para inteiro não-negativo e limitada ao estoque restante
func dailySales(rng *rand.Rand, stock int) int {
	sales := int(rng.NormFloat64()*demandStdDev + demandMean)
	if sales < 0 {
		sales = 0
	}
	if sales > stock {
		sales = stock
	}
	return sales
}

// marginPercent retorna 0 quando a receita é 0 para nunca dividir por zero
func marginPercent(profit, revenue float64) float64 {
	if revenue <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(profit / revenue * 100)
}

func newRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
