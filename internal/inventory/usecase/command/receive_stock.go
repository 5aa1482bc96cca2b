package command

import (
	"context"
	"fmt"

	"github.com/tair/warehouse/internal/inventory/domain"
)

// ReceiveStockCommand puts Amount units of SKU back on the shelf
type ReceiveStockCommand struct {
	SKU    string
	Amount int
}

// ReceiveStockHandler handles receive stock command
type ReceiveStockHandler struct {
	repo domain.InventoryRepository
}

// NewReceiveStockHandler creates a new receive stock handler
func NewReceiveStockHandler(repo domain.InventoryRepository) *ReceiveStockHandler {
	return &ReceiveStockHandler{repo: repo}
}

// Handle returns the quantity after the increment
func (h *ReceiveStockHandler) Handle(ctx context.Context, cmd ReceiveStockCommand) (int, error) {
	if cmd.SKU == "" {
		return 0, domain.ErrSKURequired
	}

	if cmd.Amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidQuantity)
	}

	qty, err := h.repo.Increment(ctx, cmd.SKU, cmd.Amount)
	if err != nil {
		return 0, fmt.Errorf("failed to receive %s: %w", cmd.SKU, err)
	}

	return qty, nil
}
