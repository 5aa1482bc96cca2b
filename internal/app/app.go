// Package app assembles the warehouse service from its stores, use cases and delivery layers.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tair/warehouse/internal/config"
	inventoryevent "github.com/tair/warehouse/internal/inventory/delivery/event"
	inventoryhttp "github.com/tair/warehouse/internal/inventory/delivery/http"
	inventorycommand "github.com/tair/warehouse/internal/inventory/usecase/command"
	orderhttp "github.com/tair/warehouse/internal/order/delivery/http"
	"github.com/tair/warehouse/internal/store"
	"github.com/tair/warehouse/pkg/logger"
	"github.com/tair/warehouse/pkg/middleware"
)

// App holds the wired warehouse service
type App struct {
	Config    *config.Config
	Store     store.Store
	Inventory *inventoryhttp.InventoryHandler
	Orders    *orderhttp.OrderHandler
	Stock     *inventoryevent.StockHandler
	Seeder    *inventorycommand.SeedInventoryHandler
}

// Router builds the HTTP surface: API routes, health checks, metrics and Swagger UI
func (a *App) Router() http.Handler {
	mwConfig := middleware.DefaultConfig()
	mwConfig.TimeoutDuration = a.Config.RequestTimeout
	mwConfig.OperationName = a.Config.ServiceName + "-http"

	router := mux.NewRouter()
	middleware.Register(router, mwConfig)

	a.Inventory.RegisterRoutes(router)
	a.Orders.RegisterRoutes(router)
	a.Orders.RegisterHealthCheck(router, a.Store)

	router.Handle("/metrics", promhttp.Handler())
	inventoryhttp.RegisterSwaggerDocs(router, httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return middleware.CORS(mwConfig, router)
}

// Seed loads the demo catalogue when the ledger is empty
func (a *App) Seed(ctx context.Context) error {
	created, err := a.Seeder.Handle(ctx, inventorycommand.SeedInventoryCommand{Items: inventorycommand.DemoInventory})
	if err != nil {
		return fmt.Errorf("failed to seed inventory: %w", err)
	}
	if created > 0 {
		logger.Info(ctx).Int("items", created).Msg("Seeded demo inventory")
	}
	return nil
}
