package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/warehouse/internal/inventory/domain"
)

// SeedInventoryCommand loads Items into an empty ledger
type SeedInventoryCommand struct {
	Items []RegisterItemCommand
}

func location(id string) *string { return &id }

// DemoInventory is the starter catalogue loaded on first boot
var DemoInventory = []RegisterItemCommand{
	{SKU: "SKU001", Name: "Wireless Mouse", Quantity: 150, Location: location("IL1-A-01")},
	{SKU: "SKU002", Name: "Mechanical Keyboard", Quantity: 80, Location: location("IL1-A-02")},
	{SKU: "SKU003", Name: "USB-C Cable", Quantity: 300, Location: location("IL2-D-01")},
	{SKU: "SKU004", Name: "Monitor Stand", Quantity: 50, Location: location("IL10-D-03")},
	{SKU: "SKU005", Name: "Laptop Sleeve", Quantity: 250, Location: location("IL4-E-04")},
}

// SeedInventoryHandler handles seed inventory command
type SeedInventoryHandler struct {
	repo     domain.InventoryRepository
	register *RegisterItemHandler
}

// NewSeedInventoryHandler creates a new seed inventory handler
func NewSeedInventoryHandler(repo domain.InventoryRepository) *SeedInventoryHandler {
	return &SeedInventoryHandler{repo: repo, register: NewRegisterItemHandler(repo)}
}

// Handle returns how many items were created. A ledger that already holds
// any SKU is left untouched.
func (h *SeedInventoryHandler) Handle(ctx context.Context, cmd SeedInventoryCommand) (int, error) {
	totals, err := h.repo.Totals(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count inventory: %w", err)
	}
	if totals.SKUs > 0 {
		return 0, nil
	}

	created := 0
	for _, item := range cmd.Items {
		if _, err := h.register.Handle(ctx, item); err != nil {
			if errors.Is(err, domain.ErrDuplicateSKU) {
				continue
			}
			return created, err
		}
		created++
	}

	return created, nil
}
