package spending

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/grocery-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/grocery-manager-api/internal/domain"
	"github.com/vfg2006/grocery-manager-api/internal/usecases"
	"go.uber.org/mock/gomock"
)

func TestGetMonthlyReport_ServesPersistedSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockSpendRepo := mocks.NewMockMonthlySpendRepository(ctrl)

	persisted := &domain.SpendResult{
		TotalSpend:        150,
		CategoryBreakdown: map[string]float64{"Dairy": 150},
		HighestCostDriver: &domain.CostDriver{Category: "Dairy", Spend: 150},
	}

	mockSpendRepo.EXPECT().
		GetByPeriod(gomock.Any(), "03-2025").
		Return(&domain.MonthlySpendEntry{Period: "03-2025", Report: persisted}, nil)

	service := NewReportService(NewService(), mockOrderRepo, mockSpendRepo)

	report, err := service.GetMonthlyReport(context.Background(), 2025, 3)
	require.NoError(t, err)
	assert.Equal(t, persisted, report)
}

func TestGetMonthlyReport_ComputesWhenSnapshotAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockSpendRepo := mocks.NewMockMonthlySpendRepository(ctrl)

	mockSpendRepo.EXPECT().
		GetByPeriod(gomock.Any(), "06-2025").
		Return(nil, nil)

	monthStart := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	mockOrderRepo.EXPECT().
		ListPurchaseLines(gomock.Any(), monthStart, nextMonth).
		Return([]domain.SpendLineItem{
			{Date: day(2025, time.June, 10), Qty: 2, Cost: 25, Category: "Fruit"},
			{Date: day(2025, time.June, 12), Qty: 1, Cost: 30, Category: "Grains"},
		}, nil)

	service := NewReportService(NewService(), mockOrderRepo, mockSpendRepo)

	report, err := service.GetMonthlyReport(context.Background(), 2025, 6)
	require.NoError(t, err)

	assert.Equal(t, 80.0, report.TotalSpend)
	assert.Equal(t, map[string]float64{"Fruit": 50, "Grains": 30}, report.CategoryBreakdown)
	require.NotNil(t, report.HighestCostDriver)
	assert.Equal(t, "Fruit", report.HighestCostDriver.Category)
}

func TestGetMonthlyReport_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewReportService(
		NewService(),
		mocks.NewMockOrderRepository(ctrl),
		mocks.NewMockMonthlySpendRepository(ctrl),
	)

	_, err := service.GetMonthlyReport(context.Background(), 1999, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, usecases.ErrInvalidArgument)

	_, err = service.GetMonthlyReport(context.Background(), 2025, 13)
	require.Error(t, err)
	assert.ErrorIs(t, err, usecases.ErrInvalidArgument)
}

func TestBuildPeriodSnapshot_PersistsComputedReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockSpendRepo := mocks.NewMockMonthlySpendRepository(ctrl)

	mockOrderRepo.EXPECT().
		ListPurchaseLines(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.SpendLineItem{
			{Date: day(2025, time.August, 5), Qty: 3, Cost: 10, Category: "Vegetable"},
		}, nil)

	var saved *domain.MonthlySpendEntry
	mockSpendRepo.EXPECT().
		SaveOrUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.MonthlySpendEntry) error {
			saved = entry
			return nil
		})

	service := NewReportService(NewService(), mockOrderRepo, mockSpendRepo)

	entry, err := service.BuildPeriodSnapshot(context.Background(), 2025, 8)
	require.NoError(t, err)

	assert.Equal(t, "08-2025", entry.Period)
	require.NotNil(t, entry.Report)
	assert.Equal(t, 30.0, entry.Report.TotalSpend)

	require.NotNil(t, saved)
	assert.Equal(t, entry, saved)
}

func TestGetAvailablePeriods_SplitsYearsAndMonths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSpendRepo := mocks.NewMockMonthlySpendRepository(ctrl)
	mockSpendRepo.EXPECT().
		GetAllPeriods(gomock.Any()).
		Return([]string{"01-2024", "02-2024", "01-2025", "badformat"}, nil)

	service := NewReportService(NewService(), mocks.NewMockOrderRepository(ctrl), mockSpendRepo)

	available, err := service.GetAvailablePeriods(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"01-2024", "02-2024", "01-2025", "badformat"}, available.Periods)
	assert.Equal(t, []string{"2024", "2025"}, available.Years)
	assert.Equal(t, []string{"01", "02"}, available.Months)
}
