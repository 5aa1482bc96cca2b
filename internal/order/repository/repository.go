package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/warehouse/internal/order/domain"
)

type GormOrderRepository struct {
	db *gorm.DB
}

var _ domain.OrderRepository = (*GormOrderRepository)(nil)

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	return r.find(r.db.WithContext(ctx), id)
}

func (r *GormOrderRepository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Order, error) {
	return r.find(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) find(db *gorm.DB, id string) (*domain.Order, error) {
	var order domain.Order
	err := db.Where("id = ?", id).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if order.Picked == nil {
		order.Picked = domain.Items{}
	}
	return &order, nil
}

func (r *GormOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) SavePicks(ctx context.Context, order *domain.Order) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Order{ID: order.ID}).
		Select("picked_items", "status", "updated_at").
		Updates(order)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *GormOrderRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Order{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *GormOrderRepository) CountByStatus(ctx context.Context) (domain.StatusCounts, error) {
	var rows []struct {
		Status domain.Status
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := domain.StatusCounts{}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
