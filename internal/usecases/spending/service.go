package spending

import (
	"github.com/vfg2006/grocery-manager-api/internal/domain"
	"github.com/vfg2006/grocery-manager-api/internal/usecases"
)

const (
	MinYear = 2000
	MaxYear = 2100

	// Categoria atribuída a itens sem categoria informada
	DefaultCategory = "Unknown"
)

// InvalidDatePolicy define o que fazer com itens cuja data é inválida
// (zero value). Os chamadores da aplicação divergiam nesse comportamento,
// então a escolha é configuração explícita do serviço.
type InvalidDatePolicy int

const (
	// RejectInvalidDate falha a agregação inteira com InvalidArgument (padrão)
	RejectInvalidDate InvalidDatePolicy = iota
	// SkipInvalidDate descarta silenciosamente o item ofensor
	SkipInvalidDate
)

// Aggregator calcula o gasto total com inventário em um mês alvo,
// com quebra por categoria e a categoria de maior custo.
type Aggregator interface {
	Aggregate(lines []domain.SpendLineItem, year, month int) (*domain.SpendResult, error)
}

type Service struct {
	invalidDatePolicy InvalidDatePolicy
}

type Option func(*Service)

func WithInvalidDatePolicy(policy InvalidDatePolicy) Option {
	return func(s *Service) {
		s.invalidDatePolicy = policy
	}
}

func NewService(opts ...Option) Aggregator {
	s := &Service{invalidDatePolicy: RejectInvalidDate}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Aggregate filtra os itens pelo ano/mês alvo e soma qty×cost por categoria.
// Puramente funcional: nenhum estado é mantido entre chamadas.
func (s *Service) Aggregate(lines []domain.SpendLineItem, year, month int) (*domain.SpendResult, error) {
	if year < MinYear || year > MaxYear {
		return nil, usecases.NewInvalidArgument("year", "deve ser um inteiro entre 2000 e 2100")
	}

	if month < 1 || month > 12 {
		return nil, usecases.NewInvalidArgument("month", "deve ser um inteiro entre 1 e 12")
	}

	totalSpend := 0.0
	categoryTotals := make(map[string]float64)

	for _, line := range lines {
		if line.Date.IsZero() {
			if s.invalidDatePolicy == SkipInvalidDate {
				continue
			}
			return nil, usecases.NewInvalidArgument("date", "cada item deve conter uma data válida")
		}

		if line.Qty < 0 {
			return nil, usecases.NewInvalidArgument("qty", "deve ser um número não-negativo")
		}

		if line.Cost < 0 {
			return nil, usecases.NewInvalidArgument("cost", "deve ser um número não-negativo")
		}

		if line.Date.Year() != year || int(line.Date.Month()) != month {
			continue
		}

		category := line.Category
		if category == "" {
			category = DefaultCategory
		}

		spend := line.Qty * line.Cost
		totalSpend += spend
		categoryTotals[category] += spend
	}

	return &domain.SpendResult{
		TotalSpend:        totalSpend,
		CategoryBreakdown: categoryTotals,
		HighestCostDriver: highestCostDriver(categoryTotals),
	}, nil
}

// highestCostDriver retorna a categoria de maior gasto acumulado. Empates são
// resolvidos pela menor categoria em ordem lexicográfica, para que o resultado
// não dependa da ordem de iteração do map.
func highestCostDriver(categoryTotals map[string]float64) *domain.CostDriver {
	var driver *domain.CostDriver

	for category, spend := range categoryTotals {
		if driver == nil || spend > driver.Spend || (spend == driver.Spend && category < driver.Category) {
			driver = &domain.CostDriver{Category: category, Spend: spend}
		}
	}

	return driver
}
