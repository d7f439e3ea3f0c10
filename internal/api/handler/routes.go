package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/grocery-manager-api/infrastructure/integrator/openweather"
	"github.com/vfg2006/grocery-manager-api/infrastructure/repository"
	"github.com/vfg2006/grocery-manager-api/internal/api/handler/router"
	"github.com/vfg2006/grocery-manager-api/internal/usecases/ordering"
	"github.com/vfg2006/grocery-manager-api/internal/usecases/product"
	"github.com/vfg2006/grocery-manager-api/internal/usecases/simulating"
	"github.com/vfg2006/grocery-manager-api/internal/usecases/spending"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Products(service product.ProductService, uomRepo repository.UomRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:    "/v1/products",
			Method:  http.MethodPost,
			Handler: CreateProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodPut,
			Handler: UpdateProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodDelete,
			Handler: DeleteProduct(service),
		},
		{
			Path:    "/v1/uoms",
			Method:  http.MethodGet,
			Handler: ListUoms(uomRepo),
		},
	}
}

func Orders(service ordering.OrderService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/orders",
			Method:  http.MethodGet,
			Handler: ListOrders(service),
		},
		{
			Path:    "/v1/orders/recent",
			Method:  http.MethodGet,
			Handler: ListRecentOrders(service),
		},
		{
			Path:    "/v1/orders/:id",
			Method:  http.MethodGet,
			Handler: GetOrder(service),
		},
		{
			Path:    "/v1/orders",
			Method:  http.MethodPost,
			Handler: SaveOrder(service),
		},
		{
			Path:    "/v1/orders/:id",
			Method:  http.MethodDelete,
			Handler: DeleteOrder(service),
		},
	}
}

func Calculations(
	simulator simulating.Simulator,
	aggregator spending.Aggregator,
	productService product.ProductService,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/calc/revenue",
			Method:  http.MethodPost,
			Handler: SimulateRevenue(simulator, productService),
		},
		{
			Path:    "/v1/calc/spend",
			Method:  http.MethodPost,
			Handler: AggregateSpend(aggregator),
		},
	}
}

func SpendReports(service spending.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/spend/report",
			Method:  http.MethodGet,
			Handler: GetMonthlySpendReport(service),
		},
		{
			Path:    "/v1/spend/periods",
			Method:  http.MethodGet,
			Handler: GetAvailableSpendPeriods(service),
		},
	}
}

func Weather(service openweather.WeatherIntegrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/weather",
			Method:  http.MethodGet,
			Handler: GetCurrentWeather(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
