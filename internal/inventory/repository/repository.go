package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/warehouse/internal/inventory/domain"
	"github.com/tair/warehouse/pkg/database"
)

type GormInventoryRepository struct {
	db *gorm.DB
}

var _ domain.InventoryRepository = (*GormInventoryRepository)(nil)

func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

func (r *GormInventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	err := r.db.WithContext(ctx).Create(item).Error
	if database.IsDuplicateKeyErr(err) {
		return domain.ErrDuplicateSKU
	}
	return err
}

func (r *GormInventoryRepository) FindBySKU(ctx context.Context, sku string) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormInventoryRepository) FindAll(ctx context.Context) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	err := r.db.WithContext(ctx).Order("sku").Find(&items).Error
	return items, err
}

func (r *GormInventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	res := r.db.WithContext(ctx).
		Model(&domain.InventoryItem{}).
		Where("sku = ?", item.SKU).
		Updates(map[string]interface{}{
			"quantity":    item.Quantity,
			"location_id": item.Location,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormInventoryRepository) Delete(ctx context.Context, sku string) error {
	res := r.db.WithContext(ctx).Where("sku = ?", sku).Delete(&domain.InventoryItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Decrement relies on the row lock taken by the conditional UPDATE, so concurrent
// pickers of the same SKU are serialized by Postgres.
func (r *GormInventoryRepository) Decrement(ctx context.Context, sku string, amount int) (int, error) {
	var item domain.InventoryItem
	res := r.db.WithContext(ctx).
		Model(&item).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "quantity"}}}).
		Where("sku = ? AND quantity >= ?", sku, amount).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", amount))
	if res.Error != nil {
		return 0, fmt.Errorf("decrement %s: %w", sku, res.Error)
	}

	if res.RowsAffected == 0 {
		if _, err := r.FindBySKU(ctx, sku); err != nil {
			return 0, err
		}
		return 0, domain.ErrInsufficientStock
	}
	return item.Quantity, nil
}

func (r *GormInventoryRepository) Increment(ctx context.Context, sku string, amount int) (int, error) {
	var item domain.InventoryItem
	res := r.db.WithContext(ctx).
		Model(&item).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "quantity"}}}).
		Where("sku = ?", sku).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", amount))
	if res.Error != nil {
		return 0, fmt.Errorf("increment %s: %w", sku, res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, domain.ErrNotFound
	}
	return item.Quantity, nil
}

func (r *GormInventoryRepository) Totals(ctx context.Context) (domain.Totals, error) {
	var totals domain.Totals
	err := r.db.WithContext(ctx).
		Model(&domain.InventoryItem{}).
		Select("COUNT(*) AS skus, COALESCE(SUM(quantity), 0) AS quantity").
		Scan(&totals).Error
	return totals, err
}
