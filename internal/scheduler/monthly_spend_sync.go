package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/grocery-manager-api/internal/config"
	"github.com/vfg2006/grocery-manager-api/internal/usecases/spending"
	"github.com/vfg2006/grocery-manager-api/pkg/utils"
)

// MonthlySpendSyncConfig representa a configuração do agendador de snapshots mensais de gastos
type MonthlySpendSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	MonthLookBack int
}

// MonthlySpendSyncService gerencia o agendamento e execução da geração de snapshots mensais de gastos
type MonthlySpendSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlySpendSyncConfig
	reporter            spending.Reporter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewMonthlySpendSyncService cria uma nova instância do serviço de sincronização mensal de gastos
func NewMonthlySpendSyncService(
	reporter spending.Reporter,
	appConfig *config.Config,
) *MonthlySpendSyncService {
	syncConfig := MonthlySpendSyncConfig{
		CronSchedule:  appConfig.MonthlySpendSync.CronSchedule,
		SyncEnabled:   appConfig.MonthlySpendSync.Enabled,
		MonthLookBack: appConfig.MonthlySpendSync.MonthLookBack,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   syncConfig.CronSchedule,
		"sync_enabled":    syncConfig.SyncEnabled,
		"month_look_back": syncConfig.MonthLookBack,
	}).Info("Configuração do agendador de snapshots mensais de gastos carregada")

	return &MonthlySpendSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		reporter:    reporter,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *MonthlySpendSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização mensal de gastos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots mensais de gastos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMonthlySpend(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização mensal de gastos: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots mensais de gastos")
		s.scheduler.Stop()
	}()

	return nil
}

// syncMonthlySpend gera e persiste os snapshots de gastos dos meses anteriores
func (s *MonthlySpendSyncService) syncMonthlySpend(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização mensal de gastos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando geração de snapshots mensais de gastos")

	synced := 0

	for i := 1; i <= s.config.MonthLookBack; i++ {
		ref := time.Now().AddDate(0, -i, 0)
		year, month := ref.Year(), int(ref.Month())

		logrus.WithFields(logrus.Fields{
			"period": utils.MonthPeriod(year, month),
		}).Info("Período para geração de snapshot mensal de gastos")

		entry, err := s.reporter.BuildPeriodSnapshot(ctx, year, month)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"year":  year,
				"month": month,
			}).Error("Erro ao gerar snapshot mensal de gastos")
			continue
		}

		logrus.WithField("period", entry.Period).
			Debugf("Snapshot mensal de gastos gerado: %s", utils.PrettyJson(entry.Report))

		synced++
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"periods":  synced,
	}).Info("Sincronização mensal de gastos concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync dispara uma sincronização manual, caso nenhuma esteja em andamento
func (s *MonthlySpendSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização mensal de gastos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de gastos mensais")
	go s.syncMonthlySpend(context.Background())
}

// GetStatus retorna o status atual da sincronização
func (s *MonthlySpendSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
