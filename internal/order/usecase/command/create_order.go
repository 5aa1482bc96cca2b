package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	inventorydomain "github.com/tair/warehouse/internal/inventory/domain"
	"github.com/tair/warehouse/internal/order/domain"
	"github.com/tair/warehouse/internal/store"
)

// CreateOrderCommand represents the command to open a new order
type CreateOrderCommand struct {
	Items domain.Items
}

// CreateOrderHandler handles create order command
type CreateOrderHandler struct {
	store store.Store
	newID func() string
	now   func() time.Time
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(s store.Store) *CreateOrderHandler {
	return &CreateOrderHandler{store: s, newID: uuid.NewString, now: time.Now}
}

// Handle checks every SKU against the ledger before anything is written.
// The first unknown SKU in sorted order is reported as an UnknownSKUError.
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	for sku, qty := range cmd.Items {
		if sku == "" {
			return nil, fmt.Errorf("%w: sku is required", domain.ErrInvalidItems)
		}
		if qty <= 0 {
			return nil, fmt.Errorf("%w: quantity for %s must be positive", domain.ErrInvalidItems, sku)
		}
	}

	order := domain.NewOrder(h.newID(), cmd.Items, h.now().UTC())

	err := h.store.Transaction(ctx, func(ctx context.Context, repos store.Repositories) error {
		for _, sku := range cmd.Items.SKUs() {
			if _, err := repos.Inventory.FindBySKU(ctx, sku); err != nil {
				if errors.Is(err, inventorydomain.ErrNotFound) {
					return &domain.UnknownSKUError{SKU: sku}
				}
				return fmt.Errorf("failed to look up %s: %w", sku, err)
			}
		}
		return repos.Orders.Create(ctx, order)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}
