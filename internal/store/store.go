// Package store groups the ledger and order repositories behind one
// transactional boundary so a pick can change stock and order together.
package store

import (
	"context"

	inventorydomain "github.com/tair/warehouse/internal/inventory/domain"
	orderdomain "github.com/tair/warehouse/internal/order/domain"
)

// Repositories are the data access objects bound to one store or transaction
type Repositories struct {
	Inventory inventorydomain.InventoryRepository
	Orders    orderdomain.OrderRepository
}

// TxFunc runs against repositories scoped to a single transaction
type TxFunc func(ctx context.Context, repos Repositories) error

// Store is the persistence boundary of the warehouse
type Store interface {
	// Repositories returns repositories that run outside any transaction
	Repositories() Repositories
	// Transaction commits every change made through repos when fn returns nil
	// and discards all of them otherwise.
	Transaction(ctx context.Context, fn TxFunc) error
	Ping(ctx context.Context) error
}
