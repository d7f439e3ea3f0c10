package spending

import (
	"context"
	"time"

	"github.com/vfg2006/grocery-manager-api/infrastructure/repository"
	"github.com/vfg2006/grocery-manager-api/internal/domain"
	"github.com/vfg2006/grocery-manager-api/internal/usecases"
	"github.com/vfg2006/grocery-manager-api/pkg/utils"
)

// Reporter expõe o relatório mensal de gastos, servido a partir do snapshot
// persistido quando existe, ou calculado na hora a partir dos pedidos
type Reporter interface {
	GetMonthlyReport(ctx context.Context, year, month int) (*domain.SpendResult, error)
	GetAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error)
	BuildPeriodSnapshot(ctx context.Context, year, month int) (*domain.MonthlySpendEntry, error)
}

type ReportService struct {
	aggregator Aggregator
	orderRepo  repository.OrderRepository
	spendRepo  repository.MonthlySpendRepository
}

func NewReportService(
	aggregator Aggregator,
	orderRepo repository.OrderRepository,
	spendRepo repository.MonthlySpendRepository,
) Reporter {
	return &ReportService{
		aggregator: aggregator,
		orderRepo:  orderRepo,
		spendRepo:  spendRepo,
	}
}

func (s *ReportService) GetMonthlyReport(ctx context.Context, year, month int) (*domain.SpendResult, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}

	entry, err := s.spendRepo.GetByPeriod(ctx, utils.MonthPeriod(year, month))
	if err != nil {
		return nil, err
	}

	if entry != nil && entry.Report != nil {
		return entry.Report, nil
	}

	return s.computeReport(ctx, year, month)
}

// BuildPeriodSnapshot calcula o relatório do período a partir dos pedidos e
// persiste o resultado como snapshot
func (s *ReportService) BuildPeriodSnapshot(ctx context.Context, year, month int) (*domain.MonthlySpendEntry, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}

	report, err := s.computeReport(ctx, year, month)
	if err != nil {
		return nil, err
	}

	entry := &domain.MonthlySpendEntry{
		Period: utils.MonthPeriod(year, month),
		Report: report,
	}

	if err := s.spendRepo.SaveOrUpdate(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *ReportService) GetAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error) {
	periods, err := s.spendRepo.GetAllPeriods(ctx)
	if err != nil {
		return nil, err
	}

	available := &domain.AvailablePeriods{
		Periods: periods,
		Years:   make([]string, 0),
		Months:  make([]string, 0),
	}

	seenYears := make(map[string]struct{})
	seenMonths := make(map[string]struct{})

	for _, period := range periods {
		// Período no formato mm-yyyy
		if len(period) != 7 {
			continue
		}

		month, year := period[:2], period[3:]
		if _, ok := seenMonths[month]; !ok {
			seenMonths[month] = struct{}{}
			available.Months = append(available.Months, month)
		}
		if _, ok := seenYears[year]; !ok {
			seenYears[year] = struct{}{}
			available.Years = append(available.Years, year)
		}
	}

	return available, nil
}

func (s *ReportService) computeReport(ctx context.Context, year, month int) (*domain.SpendResult, error) {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	lines, err := s.orderRepo.ListPurchaseLines(ctx, monthStart, nextMonth)
	if err != nil {
		return nil, err
	}

	return s.aggregator.Aggregate(lines, year, month)
}

func validatePeriod(year, month int) error {
	if year < MinYear || year > MaxYear {
		return usecases.NewInvalidArgument("year", "deve ser um inteiro entre 2000 e 2100")
	}

	if month < 1 || month > 12 {
		return usecases.NewInvalidArgument("month", "deve ser um inteiro entre 1 e 12")
	}

	return nil
}
