package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	inventorydomain "github.com/tair/warehouse/internal/inventory/domain"
	orderdomain "github.com/tair/warehouse/internal/order/domain"
)

type memoryTables struct {
	items  map[string]inventorydomain.InventoryItem
	orders map[string]orderdomain.Order
}

func newMemoryTables() *memoryTables {
	return &memoryTables{
		items:  map[string]inventorydomain.InventoryItem{},
		orders: map[string]orderdomain.Order{},
	}
}

func (t *memoryTables) clone() *memoryTables {
	out := &memoryTables{
		items:  make(map[string]inventorydomain.InventoryItem, len(t.items)),
		orders: make(map[string]orderdomain.Order, len(t.orders)),
	}
	for sku, item := range t.items {
		out.items[sku] = item.Clone()
	}
	for id, order := range t.orders {
		out.orders[id] = order.Clone()
	}
	return out
}

// MemoryStore keeps the ledger and orders in process memory.
// Transactions are serialized and work on a staged copy that replaces the
// live tables only when the transaction function succeeds.
type MemoryStore struct {
	mu     sync.RWMutex
	tables *memoryTables
	now    func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: newMemoryTables(), now: time.Now}
}

// Repositories must not be used from inside a Transaction function; use the
// repositories passed to it instead.
func (s *MemoryStore) Repositories() Repositories {
	return s.bind(nil)
}

func (s *MemoryStore) Transaction(ctx context.Context, fn TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.tables.clone()
	if err := fn(ctx, s.bind(staged)); err != nil {
		return err
	}
	s.tables = staged
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) bind(tx *memoryTables) Repositories {
	return Repositories{
		Inventory: &memoryInventory{store: s, tx: tx},
		Orders:    &memoryOrders{store: s, tx: tx},
	}
}

// view runs fn against the staged tables of a transaction, or against the
// live tables under the store lock.
func (s *MemoryStore) view(tx *memoryTables, write bool, fn func(t *memoryTables) error) error {
	if tx != nil {
		return fn(tx)
	}
	if write {
		s.mu.Lock()
		defer s.mu.Unlock()
	} else {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	return fn(s.tables)
}

type memoryInventory struct {
	store *MemoryStore
	tx    *memoryTables
}

var _ inventorydomain.InventoryRepository = (*memoryInventory)(nil)

func (r *memoryInventory) Create(ctx context.Context, item *inventorydomain.InventoryItem) error {
	if item.Quantity < 0 {
		return inventorydomain.ErrInvalidQuantity
	}
	return r.store.view(r.tx, true, func(t *memoryTables) error {
		if _, ok := t.items[item.SKU]; ok {
			return inventorydomain.ErrDuplicateSKU
		}
		now := r.store.now()
		if item.CreatedAt.IsZero() {
			item.CreatedAt = now
		}
		item.UpdatedAt = now
		t.items[item.SKU] = item.Clone()
		return nil
	})
}

func (r *memoryInventory) FindBySKU(ctx context.Context, sku string) (*inventorydomain.InventoryItem, error) {
	var found inventorydomain.InventoryItem
	err := r.store.view(r.tx, false, func(t *memoryTables) error {
		item, ok := t.items[sku]
		if !ok {
			return inventorydomain.ErrNotFound
		}
		found = item.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (r *memoryInventory) FindAll(ctx context.Context) ([]inventorydomain.InventoryItem, error) {
	var items []inventorydomain.InventoryItem
	err := r.store.view(r.tx, false, func(t *memoryTables) error {
		items = make([]inventorydomain.InventoryItem, 0, len(t.items))
		for _, item := range t.items {
			items = append(items, item.Clone())
		}
		return nil
	})
	sort.Slice(items, func(i, j int) bool { return items[i].SKU < items[j].SKU })
	return items, err
}

func (r *memoryInventory) Update(ctx context.Context, item *inventorydomain.InventoryItem) error {
	if item.Quantity < 0 {
		return inventorydomain.ErrInvalidQuantity
	}
	return r.store.view(r.tx, true, func(t *memoryTables) error {
		existing, ok := t.items[item.SKU]
		if !ok {
			return inventorydomain.ErrNotFound
		}
		updated := item.Clone()
		existing.Quantity = updated.Quantity
		existing.Location = updated.Location
		existing.UpdatedAt = r.store.now()
		t.items[item.SKU] = existing
		return nil
	})
}

func (r *memoryInventory) Delete(ctx context.Context, sku string) error {
	return r.store.view(r.tx, true, func(t *memoryTables) error {
		if _, ok := t.items[sku]; !ok {
			return inventorydomain.ErrNotFound
		}
		delete(t.items, sku)
		return nil
	})
}

func (r *memoryInventory) Decrement(ctx context.Context, sku string, amount int) (int, error) {
	var qty int
	err := r.store.view(r.tx, true, func(t *memoryTables) error {
		item, ok := t.items[sku]
		if !ok {
			return inventorydomain.ErrNotFound
		}
		if item.Quantity < amount {
			return inventorydomain.ErrInsufficientStock
		}
		item.Quantity -= amount
		item.UpdatedAt = r.store.now()
		t.items[sku] = item
		qty = item.Quantity
		return nil
	})
	return qty, err
}

func (r *memoryInventory) Increment(ctx context.Context, sku string, amount int) (int, error) {
	var qty int
	err := r.store.view(r.tx, true, func(t *memoryTables) error {
		item, ok := t.items[sku]
		if !ok {
			return inventorydomain.ErrNotFound
		}
		item.Quantity += amount
		item.UpdatedAt = r.store.now()
		t.items[sku] = item
		qty = item.Quantity
		return nil
	})
	return qty, err
}

func (r *memoryInventory) Totals(ctx context.Context) (inventorydomain.Totals, error) {
	var totals inventorydomain.Totals
	err := r.store.view(r.tx, false, func(t *memoryTables) error {
		for _, item := range t.items {
			totals.SKUs++
			totals.Quantity += int64(item.Quantity)
		}
		return nil
	})
	return totals, err
}

type memoryOrders struct {
	store *MemoryStore
	tx    *memoryTables
}

var _ orderdomain.OrderRepository = (*memoryOrders)(nil)

func (r *memoryOrders) Create(ctx context.Context, order *orderdomain.Order) error {
	return r.store.view(r.tx, true, func(t *memoryTables) error {
		if _, ok := t.orders[order.ID]; ok {
			return fmt.Errorf("order %s already exists", order.ID)
		}
		if order.Picked == nil {
			order.Picked = orderdomain.Items{}
		}
		t.orders[order.ID] = order.Clone()
		return nil
	})
}

func (r *memoryOrders) FindByID(ctx context.Context, id string) (*orderdomain.Order, error) {
	var found orderdomain.Order
	err := r.store.view(r.tx, false, func(t *memoryTables) error {
		order, ok := t.orders[id]
		if !ok {
			return orderdomain.ErrOrderNotFound
		}
		found = order.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

// FindByIDForUpdate needs no extra locking: transactions already hold the store exclusively.
func (r *memoryOrders) FindByIDForUpdate(ctx context.Context, id string) (*orderdomain.Order, error) {
	return r.FindByID(ctx, id)
}

func (r *memoryOrders) FindAll(ctx context.Context) ([]orderdomain.Order, error) {
	var orders []orderdomain.Order
	err := r.store.view(r.tx, false, func(t *memoryTables) error {
		orders = make([]orderdomain.Order, 0, len(t.orders))
		for _, order := range t.orders {
			orders = append(orders, order.Clone())
		}
		return nil
	})
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})
	return orders, err
}

func (r *memoryOrders) SavePicks(ctx context.Context, order *orderdomain.Order) error {
	return r.store.view(r.tx, true, func(t *memoryTables) error {
		existing, ok := t.orders[order.ID]
		if !ok {
			return orderdomain.ErrOrderNotFound
		}
		existing.Picked = order.Picked.Clone()
		existing.Status = order.Status
		existing.UpdatedAt = order.UpdatedAt
		t.orders[order.ID] = existing
		return nil
	})
}

func (r *memoryOrders) Delete(ctx context.Context, id string) error {
	return r.store.view(r.tx, true, func(t *memoryTables) error {
		if _, ok := t.orders[id]; !ok {
			return orderdomain.ErrOrderNotFound
		}
		delete(t.orders, id)
		return nil
	})
}

func (r *memoryOrders) CountByStatus(ctx context.Context) (orderdomain.StatusCounts, error) {
	counts := orderdomain.StatusCounts{}
	err := r.store.view(r.tx, false, func(t *memoryTables) error {
		for _, order := range t.orders {
			counts[order.Status]++
		}
		return nil
	})
	return counts, err
}
