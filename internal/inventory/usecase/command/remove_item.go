package command

import (
	"context"
	"fmt"

	"github.com/tair/warehouse/internal/inventory/domain"
)

// RemoveItemCommand represents the command to drop a SKU from the ledger.
// Orders that reference the SKU are left as they are.
type RemoveItemCommand struct {
	SKU string
}

// RemoveItemHandler handles remove item command
type RemoveItemHandler struct {
	repo domain.InventoryRepository
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(repo domain.InventoryRepository) *RemoveItemHandler {
	return &RemoveItemHandler{repo: repo}
}

// Handle executes the remove item command
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
	if cmd.SKU == "" {
		return domain.ErrSKURequired
	}

	if err := h.repo.Delete(ctx, cmd.SKU); err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}

	return nil
}
