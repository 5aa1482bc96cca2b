package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	inventorydomain "github.com/tair/warehouse/internal/inventory/domain"
	inventoryrepo "github.com/tair/warehouse/internal/inventory/repository"
	orderdomain "github.com/tair/warehouse/internal/order/domain"
	orderrepo "github.com/tair/warehouse/internal/order/repository"
)

// GormStore persists to Postgres through gorm
type GormStore struct {
	db    *gorm.DB
	repos Repositories
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, repos: bind(db)}
}

func bind(db *gorm.DB) Repositories {
	return Repositories{
		Inventory: inventoryrepo.NewTracingInventoryRepository(inventoryrepo.NewGormInventoryRepository(db)),
		Orders:    orderrepo.NewTracingOrderRepository(orderrepo.NewGormOrderRepository(db)),
	}
}

func (s *GormStore) Repositories() Repositories {
	return s.repos
}

func (s *GormStore) Transaction(ctx context.Context, fn TxFunc) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, bind(tx))
	})
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// AutoMigrate creates or updates the inventory and orders tables
func (s *GormStore) AutoMigrate() error {
	if err := s.db.AutoMigrate(&inventorydomain.InventoryItem{}, &orderdomain.Order{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
