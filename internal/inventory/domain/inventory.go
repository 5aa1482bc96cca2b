package domain

import (
	"context"
	"time"
)

// InventoryItem is the ledger entry for one SKU
type InventoryItem struct {
	SKU         string    `json:"sku" gorm:"primaryKey;type:varchar(64)"`
	Name        string    `json:"name" gorm:"not null;index"`
	Description *string   `json:"description,omitempty"`
	Quantity    int       `json:"quantity" gorm:"not null;default:0;check:chk_inventory_quantity_non_negative,quantity >= 0"`
	Location    *string   `json:"location_id" gorm:"column:location_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (InventoryItem) TableName() string {
	return "inventory"
}

// Clone returns a copy that shares no pointers with i
func (i InventoryItem) Clone() InventoryItem {
	out := i
	if i.Description != nil {
		d := *i.Description
		out.Description = &d
	}
	if i.Location != nil {
		l := *i.Location
		out.Location = &l
	}
	return out
}

// Totals is the aggregate view over the whole ledger
type Totals struct {
	SKUs     int64 `json:"total_skus" gorm:"column:skus"`
	Quantity int64 `json:"items_in_stock" gorm:"column:quantity"`
}

// InventoryRepository defines the contract for ledger data access.
// Decrement and Increment must be atomic per SKU.
type InventoryRepository interface {
	Create(ctx context.Context, item *InventoryItem) error
	FindBySKU(ctx context.Context, sku string) (*InventoryItem, error)
	FindAll(ctx context.Context) ([]InventoryItem, error)
	// Update overwrites quantity and location of an existing entry
	Update(ctx context.Context, item *InventoryItem) error
	Delete(ctx context.Context, sku string) error
	// Decrement lowers quantity by amount and returns the new quantity.
	// It fails with ErrInsufficientStock, leaving the row untouched, when amount exceeds the quantity.
	Decrement(ctx context.Context, sku string, amount int) (int, error)
	Increment(ctx context.Context, sku string, amount int) (int, error)
	Totals(ctx context.Context) (Totals, error)
}
