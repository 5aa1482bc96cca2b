package command

import (
	"context"
	"fmt"

	"github.com/tair/warehouse/internal/inventory/domain"
)

// UpdateItemCommand overwrites quantity and location of a SKU.
// A nil Location clears the stored location.
type UpdateItemCommand struct {
	SKU      string
	Quantity int
	Location *string
}

// UpdateItemHandler handles update item command
type UpdateItemHandler struct {
	repo domain.InventoryRepository
}

// NewUpdateItemHandler creates a new update item handler
func NewUpdateItemHandler(repo domain.InventoryRepository) *UpdateItemHandler {
	return &UpdateItemHandler{repo: repo}
}

// Handle executes the update item command
func (h *UpdateItemHandler) Handle(ctx context.Context, cmd UpdateItemCommand) (*domain.InventoryItem, error) {
	if cmd.SKU == "" {
		return nil, domain.ErrSKURequired
	}

	if cmd.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", domain.ErrInvalidQuantity)
	}

	item := &domain.InventoryItem{
		SKU:      cmd.SKU,
		Quantity: cmd.Quantity,
		Location: cmd.Location,
	}

	if err := h.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	updated, err := h.repo.FindBySKU(ctx, cmd.SKU)
	if err != nil {
		return nil, fmt.Errorf("failed to reload item: %w", err)
	}

	return updated, nil
}
