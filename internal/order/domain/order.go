package domain

import (
	"context"
	"sort"
	"time"
)

// Status is the fulfillment state of an order
type Status string

const (
	StatusPending   Status = "Pending"
	StatusPartial   Status = "Partial"
	StatusCompleted Status = "Completed"
)

// Items maps SKU to a quantity
type Items map[string]int

// Clone returns an independent copy; a nil map clones to an empty one
func (i Items) Clone() Items {
	out := make(Items, len(i))
	for sku, qty := range i {
		out[sku] = qty
	}
	return out
}

// SKUs returns the keys in sorted order
func (i Items) SKUs() []string {
	skus := make([]string, 0, len(i))
	for sku := range i {
		skus = append(skus, sku)
	}
	sort.Strings(skus)
	return skus
}

// Order tracks requested and picked quantities for one customer order
type Order struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Requested Items     `json:"items" gorm:"column:items;type:jsonb;serializer:json;not null"`
	Picked    Items     `json:"picked_items" gorm:"column:picked_items;type:jsonb;serializer:json;not null"`
	Status    Status    `json:"status" gorm:"type:varchar(16);not null;default:'Pending';index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// NewOrder builds a Pending order with nothing picked yet.
// Status is only recomputed by RecordPick, so an empty order stays Pending until picked.
func NewOrder(id string, requested Items, createdAt time.Time) *Order {
	return &Order{
		ID:        id,
		Requested: requested.Clone(),
		Picked:    Items{},
		Status:    StatusPending,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

// DeriveStatus computes status from requested and picked quantities.
// Only requested SKUs are inspected; picks of other SKUs do not count.
func DeriveStatus(requested, picked Items) Status {
	completed := true
	started := false
	for sku, want := range requested {
		got := picked[sku]
		if got < want {
			completed = false
		}
		if got > 0 {
			started = true
		}
	}

	switch {
	case completed:
		return StatusCompleted
	case started:
		return StatusPartial
	default:
		return StatusPending
	}
}

// RecordPick adds qty to the cumulative pick count for sku and recomputes Status.
// The SKU does not have to be on the order and the total may exceed the requested quantity.
func (o *Order) RecordPick(sku string, qty int, at time.Time) Status {
	if o.Picked == nil {
		o.Picked = Items{}
	}
	o.Picked[sku] += qty
	o.Status = DeriveStatus(o.Requested, o.Picked)
	o.UpdatedAt = at
	return o.Status
}

// Outstanding returns the quantity still needed per requested SKU, omitting satisfied ones
func (o *Order) Outstanding() Items {
	out := Items{}
	for sku, want := range o.Requested {
		if rest := want - o.Picked[sku]; rest > 0 {
			out[sku] = rest
		}
	}
	return out
}

// Clone returns a deep copy of o
func (o Order) Clone() Order {
	out := o
	out.Requested = o.Requested.Clone()
	out.Picked = o.Picked.Clone()
	return out
}

// StatusCounts is the number of orders per status
type StatusCounts map[Status]int64

// Total sums every status bucket
func (c StatusCounts) Total() int64 {
	var total int64
	for _, n := range c {
		total += n
	}
	return total
}

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id string) (*Order, error)
	// FindByIDForUpdate loads the order and holds it against concurrent pickers until the transaction ends
	FindByIDForUpdate(ctx context.Context, id string) (*Order, error)
	// FindAll returns every order, most recent first
	FindAll(ctx context.Context) ([]Order, error)
	// SavePicks persists Picked, Status and UpdatedAt
	SavePicks(ctx context.Context, order *Order) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (StatusCounts, error)
}
