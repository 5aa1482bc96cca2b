package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inventorydomain "github.com/tair/warehouse/internal/inventory/domain"
	"github.com/tair/warehouse/internal/order/domain"
	"github.com/tair/warehouse/internal/store"
)

func TestListOrders_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"first", "second", "third"} {
		require.NoError(t, s.Repositories().Orders.Create(ctx, domain.NewOrder(id, domain.Items{"A": 1}, base.Add(time.Duration(i)*time.Hour))))
	}

	orders, err := NewListOrdersHandler(s.Repositories().Orders).Handle(ctx, ListOrdersQuery{})
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "third", orders[0].ID)
	assert.Equal(t, "first", orders[2].ID)
}

func TestGetOrder(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, s.Repositories().Orders.Create(ctx, domain.NewOrder("o-1", domain.Items{"A": 2}, time.Now())))
	h := NewGetOrderHandler(s.Repositories().Orders)

	o, err := h.Handle(ctx, GetOrderQuery{ID: "o-1"})
	require.NoError(t, err)
	assert.Equal(t, 2, o.Requested["A"])

	_, err = h.Handle(ctx, GetOrderQuery{ID: "nope"})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestGetStats(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	repos := s.Repositories()
	require.NoError(t, repos.Inventory.Create(ctx, &inventorydomain.InventoryItem{SKU: "A", Name: "A", Quantity: 10}))
	require.NoError(t, repos.Inventory.Create(ctx, &inventorydomain.InventoryItem{SKU: "B", Name: "B", Quantity: 5}))

	pending := domain.NewOrder("p", domain.Items{"A": 2}, time.Now())
	partial := domain.NewOrder("q", domain.Items{"A": 2}, time.Now())
	partial.RecordPick("A", 1, time.Now())
	done := domain.NewOrder("r", domain.Items{"A": 2}, time.Now())
	done.RecordPick("A", 2, time.Now())
	for _, o := range []*domain.Order{pending, partial, done} {
		require.NoError(t, repos.Orders.Create(ctx, o))
	}

	stats, err := NewGetStatsHandler(s).Handle(ctx, GetStatsQuery{})
	require.NoError(t, err)
	assert.Equal(t, &DashboardStats{
		TotalSKUs:     2,
		ItemsInStock:  15,
		TotalOrders:   3,
		PendingOrders: 2,
	}, stats)
}
