package query

import (
	"context"
	"fmt"

	"github.com/tair/warehouse/internal/inventory/domain"
)

// ListItemsQuery represents the query to list the whole ledger
type ListItemsQuery struct{}

// ListItemsHandler handles list items query
type ListItemsHandler struct {
	repo domain.InventoryRepository
}

// NewListItemsHandler creates a new list items handler
func NewListItemsHandler(repo domain.InventoryRepository) *ListItemsHandler {
	return &ListItemsHandler{repo: repo}
}

// Handle returns every item ordered by SKU
func (h *ListItemsHandler) Handle(ctx context.Context, _ ListItemsQuery) ([]domain.InventoryItem, error) {
	items, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	if items == nil {
		items = []domain.InventoryItem{}
	}

	return items, nil
}
