package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/grocery-manager-api/infrastructure/integrator/openweather"
	"github.com/vfg2006/grocery-manager-api/infrastructure/repository"
	"github.com/vfg2006/grocery-manager-api/internal/api/handler"
	"github.com/vfg2006/grocery-manager-api/internal/api/handler/router"
	"github.com/vfg2006/grocery-manager-api/internal/config"
	"github.com/vfg2006/grocery-manager-api/internal/scheduler"
	"github.com/vfg2006/grocery-manager-api/internal/usecases/ordering"
	"github.com/vfg2006/grocery-manager-api/internal/usecases/product"
	"github.com/vfg2006/grocery-manager-api/internal/usecases/simulating"
	"github.com/vfg2006/grocery-manager-api/internal/usecases/spending"
	"github.com/vfg2006/grocery-manager-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	simulator simulating.Simulator,
	aggregator spending.Aggregator,
	reporter spending.Reporter,
	productService product.ProductService,
	orderService ordering.OrderService,
	weatherService openweather.WeatherIntegrator,
	uomRepo repository.UomRepository,
	monthlySpendSyncService *scheduler.MonthlySpendSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		MonthlySpendSyncService: monthlySpendSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Products(productService, uomRepo)...),
		router.WithRoutes(handler.Orders(orderService)...),
		router.WithRoutes(handler.Calculations(simulator, aggregator, productService)...),
		router.WithRoutes(handler.SpendReports(reporter)...),
		router.WithRoutes(handler.Weather(weatherService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
