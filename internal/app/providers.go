package app

import (
	"github.com/google/wire"

	"github.com/tair/warehouse/internal/config"
	inventoryevent "github.com/tair/warehouse/internal/inventory/delivery/event"
	inventoryhttp "github.com/tair/warehouse/internal/inventory/delivery/http"
	inventorydomain "github.com/tair/warehouse/internal/inventory/domain"
	inventorycommand "github.com/tair/warehouse/internal/inventory/usecase/command"
	inventoryquery "github.com/tair/warehouse/internal/inventory/usecase/query"
	orderhttp "github.com/tair/warehouse/internal/order/delivery/http"
	orderdomain "github.com/tair/warehouse/internal/order/domain"
	ordercommand "github.com/tair/warehouse/internal/order/usecase/command"
	orderquery "github.com/tair/warehouse/internal/order/usecase/query"
	"github.com/tair/warehouse/internal/store"
	"github.com/tair/warehouse/pkg/auth"
	"github.com/tair/warehouse/pkg/middleware"
)

// ProvideInventoryRepository provides the ledger repository outside any transaction
func ProvideInventoryRepository(s store.Store) inventorydomain.InventoryRepository {
	return s.Repositories().Inventory
}

// ProvideOrderRepository provides the order repository outside any transaction
func ProvideOrderRepository(s store.Store) orderdomain.OrderRepository {
	return s.Repositories().Orders
}

// ProvideProtect guards mutating routes with bearer auth when a JWT secret is configured
func ProvideProtect(cfg *config.Config) middleware.HandlerWrapper {
	if cfg.JWTSecret == "" {
		return middleware.PassThrough
	}
	return middleware.RequireBearer(auth.NewValidator(cfg.JWTSecret))
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideInventoryRepository,
	ProvideOrderRepository,
)

var InventorySet = wire.NewSet(
	inventorycommand.NewRegisterItemHandler,
	inventorycommand.NewUpdateItemHandler,
	inventorycommand.NewRemoveItemHandler,
	inventorycommand.NewReceiveStockHandler,
	inventorycommand.NewSeedInventoryHandler,
	inventoryquery.NewGetItemHandler,
	inventoryquery.NewListItemsHandler,
	inventoryhttp.NewInventoryHandler,
	inventoryevent.NewStockHandler,
)

var OrderSet = wire.NewSet(
	ordercommand.NewCreateOrderHandler,
	ordercommand.NewDeleteOrderHandler,
	ordercommand.NewPickItemHandler,
	orderquery.NewGetOrderHandler,
	orderquery.NewListOrdersHandler,
	orderquery.NewGetStatsHandler,
	orderhttp.NewOrderHandler,
)
