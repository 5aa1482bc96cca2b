package command

import (
	"context"
	"fmt"

	"github.com/tair/warehouse/internal/order/domain"
)

// DeleteOrderCommand removes an order. Picked stock is not returned to the ledger.
type DeleteOrderCommand struct {
	ID string
}

// DeleteOrderHandler handles delete order command
type DeleteOrderHandler struct {
	repo domain.OrderRepository
}

// NewDeleteOrderHandler creates a new delete order handler
func NewDeleteOrderHandler(repo domain.OrderRepository) *DeleteOrderHandler {
	return &DeleteOrderHandler{repo: repo}
}

// Handle executes the delete order command
func (h *DeleteOrderHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if cmd.ID == "" {
		return domain.ErrOrderNotFound
	}

	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}
