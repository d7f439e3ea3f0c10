package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/grocery-manager-api/internal/domain"
	"github.com/vfg2006/grocery-manager-api/internal/usecases/spending/mocks"
	"go.uber.org/mock/gomock"
)

func TestSyncMonthlySpend_BuildsSnapshotsForLookBackMonths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)

	service := &MonthlySpendSyncService{
		config: MonthlySpendSyncConfig{
			CronSchedule:  "0 5 1 * *",
			SyncEnabled:   true,
			MonthLookBack: 2,
		},
		reporter: mockReporter,
	}

	lastMonth := time.Now().AddDate(0, -1, 0)
	twoMonthsAgo := time.Now().AddDate(0, -2, 0)

	mockReporter.EXPECT().
		BuildPeriodSnapshot(gomock.Any(), lastMonth.Year(), int(lastMonth.Month())).
		Return(&domain.MonthlySpendEntry{
			Period: lastMonth.Format("01-2006"),
			Report: &domain.SpendResult{TotalSpend: 120},
		}, nil)

	mockReporter.EXPECT().
		BuildPeriodSnapshot(gomock.Any(), twoMonthsAgo.Year(), int(twoMonthsAgo.Month())).
		Return(&domain.MonthlySpendEntry{
			Period: twoMonthsAgo.Format("01-2006"),
			Report: &domain.SpendResult{TotalSpend: 80},
		}, nil)

	service.syncMonthlySpend(context.Background())

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestSyncMonthlySpend_KeepsGoingAfterPeriodFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)

	service := &MonthlySpendSyncService{
		config: MonthlySpendSyncConfig{
			SyncEnabled:   true,
			MonthLookBack: 2,
		},
		reporter: mockReporter,
	}

	lastMonth := time.Now().AddDate(0, -1, 0)
	twoMonthsAgo := time.Now().AddDate(0, -2, 0)

	mockReporter.EXPECT().
		BuildPeriodSnapshot(gomock.Any(), lastMonth.Year(), int(lastMonth.Month())).
		Return(nil, assert.AnError)

	// A falha de um período não impede o seguinte
	mockReporter.EXPECT().
		BuildPeriodSnapshot(gomock.Any(), twoMonthsAgo.Year(), int(twoMonthsAgo.Month())).
		Return(&domain.MonthlySpendEntry{
			Period: twoMonthsAgo.Format("01-2006"),
			Report: &domain.SpendResult{},
		}, nil)

	service.syncMonthlySpend(context.Background())

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
}

func TestGetStatus_ReportsConfiguration(t *testing.T) {
	service := &MonthlySpendSyncService{
		config: MonthlySpendSyncConfig{
			CronSchedule:  "0 5 1 * *",
			SyncEnabled:   true,
			MonthLookBack: 1,
		},
	}

	status := service.GetStatus()

	require.Equal(t, "0 5 1 * *", status["sync_cron"])
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, false, status["sync_running"])
}
