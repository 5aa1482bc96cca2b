package query

import (
	"context"
	"fmt"

	"github.com/tair/warehouse/internal/inventory/domain"
)

// GetItemQuery represents the query to get one ledger entry
type GetItemQuery struct {
	SKU string
}

// GetItemHandler handles get item query
type GetItemHandler struct {
	repo domain.InventoryRepository
}

// NewGetItemHandler creates a new get item handler
func NewGetItemHandler(repo domain.InventoryRepository) *GetItemHandler {
	return &GetItemHandler{repo: repo}
}

// Handle executes the get item query
func (h *GetItemHandler) Handle(ctx context.Context, query GetItemQuery) (*domain.InventoryItem, error) {
	if query.SKU == "" {
		return nil, domain.ErrSKURequired
	}

	item, err := h.repo.FindBySKU(ctx, query.SKU)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}
