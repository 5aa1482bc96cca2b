package query

import (
	"context"
	"fmt"

	"github.com/tair/warehouse/internal/order/domain"
	"github.com/tair/warehouse/internal/store"
)

// GetStatsQuery represents the query for the dashboard counters
type GetStatsQuery struct{}

// DashboardStats summarises the ledger and the order book
type DashboardStats struct {
	TotalSKUs     int64 `json:"total_skus"`
	ItemsInStock  int64 `json:"items_in_stock"`
	TotalOrders   int64 `json:"total_orders"`
	PendingOrders int64 `json:"pending_orders"`
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	store store.Store
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(s store.Store) *GetStatsHandler {
	return &GetStatsHandler{store: s}
}

// Handle executes the get stats query. Every order that is not Completed,
// including Partial ones, counts as pending.
func (h *GetStatsHandler) Handle(ctx context.Context, _ GetStatsQuery) (*DashboardStats, error) {
	repos := h.store.Repositories()

	totals, err := repos.Inventory.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory totals: %w", err)
	}

	counts, err := repos.Orders.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	total := counts.Total()
	stats := &DashboardStats{
		TotalSKUs:     totals.SKUs,
		ItemsInStock:  totals.Quantity,
		TotalOrders:   total,
		PendingOrders: total - counts[domain.StatusCompleted],
	}

	return stats, nil
}
