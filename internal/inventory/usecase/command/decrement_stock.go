package command

import (
	"context"
	"fmt"

	"github.com/tair/warehouse/internal/inventory/domain"
)

// DecrementStockCommand takes Amount units of SKU out of the ledger
type DecrementStockCommand struct {
	SKU    string
	Amount int
}

// DecrementStockHandler handles decrement stock command.
// Build it on transaction-scoped repositories to join a larger unit of work.
type DecrementStockHandler struct {
	repo domain.InventoryRepository
}

// NewDecrementStockHandler creates a new decrement stock handler
func NewDecrementStockHandler(repo domain.InventoryRepository) *DecrementStockHandler {
	return &DecrementStockHandler{repo: repo}
}

// Handle returns the quantity left after the decrement
func (h *DecrementStockHandler) Handle(ctx context.Context, cmd DecrementStockCommand) (int, error) {
	if cmd.SKU == "" {
		return 0, domain.ErrSKURequired
	}

	if cmd.Amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidQuantity)
	}

	qty, err := h.repo.Decrement(ctx, cmd.SKU, cmd.Amount)
	if err != nil {
		return 0, fmt.Errorf("failed to decrement %s: %w", cmd.SKU, err)
	}

	return qty, nil
}
