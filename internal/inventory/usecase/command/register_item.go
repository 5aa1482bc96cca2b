package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/warehouse/internal/inventory/domain"
)

// RegisterItemCommand represents the command to add a SKU to the ledger
type RegisterItemCommand struct {
	SKU         string
	Name        string
	Description *string
	Quantity    int
	Location    *string
}

// RegisterItemHandler handles register item command
type RegisterItemHandler struct {
	repo domain.InventoryRepository
}

// NewRegisterItemHandler creates a new register item handler
func NewRegisterItemHandler(repo domain.InventoryRepository) *RegisterItemHandler {
	return &RegisterItemHandler{repo: repo}
}

// Handle executes the register item command
func (h *RegisterItemHandler) Handle(ctx context.Context, cmd RegisterItemCommand) (*domain.InventoryItem, error) {
	sku := strings.TrimSpace(cmd.SKU)
	if sku == "" {
		return nil, domain.ErrSKURequired
	}

	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	if cmd.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", domain.ErrInvalidQuantity)
	}

	item := &domain.InventoryItem{
		SKU:         sku,
		Name:        name,
		Description: cmd.Description,
		Quantity:    cmd.Quantity,
		Location:    cmd.Location,
	}

	if err := h.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to register item: %w", err)
	}

	return item, nil
}
