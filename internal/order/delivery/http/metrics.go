package http

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	inventorydomain "github.com/tair/warehouse/internal/inventory/domain"
	"github.com/tair/warehouse/internal/order/domain"
	"github.com/tair/warehouse/internal/order/usecase/query"
)

var (
	picksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "warehouse_picks_total",
			Help: "Pick requests by outcome",
		},
		[]string{"outcome"},
	)

	itemsInStock = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "warehouse_items_in_stock",
			Help: "Units on hand across all SKUs, refreshed on dashboard reads",
		},
	)

	pendingOrders = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "warehouse_orders_pending",
			Help: "Orders not yet completed, refreshed on dashboard reads",
		},
	)
)

func init() {
	prometheus.MustRegister(picksTotal)
	prometheus.MustRegister(itemsInStock)
	prometheus.MustRegister(pendingOrders)
}

func pickOutcome(err error) string {
	switch {
	case err == nil:
		return "picked"
	case errors.Is(err, inventorydomain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrOrderNotFound):
		return "order_not_found"
	case errors.Is(err, domain.ErrUnknownSKU):
		return "unknown_sku"
	case errors.Is(err, domain.ErrDuplicatePick):
		return "duplicate"
	case errors.Is(err, domain.ErrInvalidPick):
		return "invalid"
	default:
		return "error"
	}
}

func recordStats(stats *query.DashboardStats) {
	itemsInStock.Set(float64(stats.ItemsInStock))
	pendingOrders.Set(float64(stats.PendingOrders))
}
