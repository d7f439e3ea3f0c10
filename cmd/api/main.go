package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/grocery-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/grocery-manager-api/infrastructure/integrator/openweather"
	"github.com/vfg2006/grocery-manager-api/infrastructure/integrator/openweather/openweatherclient"
	"github.com/vfg2006/grocery-manager-api/infrastructure/repository"
	"github.com/vfg2006/grocery-manager-api/internal/api"
	"github.com/vfg2006/grocery-manager-api/internal/config"
	"github.com/vfg2006/grocery-manager-api/internal/scheduler"
	"github.com/vfg2006/grocery-manager-api/internal/usecases/ordering"
	"github.com/vfg2006/grocery-manager-api/internal/usecases/product"
	"github.com/vfg2006/grocery-manager-api/internal/usecases/simulating"
	"github.com/vfg2006/grocery-manager-api/internal/usecases/spending"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	productRepo := repository.NewProductRepository(pgConn)
	uomRepo := repository.NewUomRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)
	monthlySpendRepo := repository.NewMonthlySpendRepository(pgConn)

	productService := product.NewService(productRepo)
	orderService := ordering.NewService(orderRepo)

	simulator := simulating.NewService()
	aggregator := spending.NewService()
	reporter := spending.NewReportService(aggregator, orderRepo, monthlySpendRepo)

	weatherClient := openweatherclient.NewClient(cfg)
	weatherService := openweather.New(cfg, weatherClient)

	// Inicializa o agendador de snapshots mensais de gastos
	monthlySpendSyncService := scheduler.NewMonthlySpendSyncService(reporter, cfg)

	if err := monthlySpendSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots mensais de gastos")
	} else {
		logrus.Info("Agendador de snapshots mensais de gastos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		simulator,
		aggregator,
		reporter,
		productService,
		orderService,
		weatherService,
		uomRepo,
		monthlySpendSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
