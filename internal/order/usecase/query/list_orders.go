package query

import (
	"context"
	"fmt"

	"github.com/tair/warehouse/internal/order/domain"
)

// ListOrdersQuery represents the query to list orders
type ListOrdersQuery struct{}

// ListOrdersHandler handles list orders query
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle returns all orders, most recently created first
func (h *ListOrdersHandler) Handle(ctx context.Context, _ ListOrdersQuery) ([]domain.Order, error) {
	orders, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	if orders == nil {
		orders = []domain.Order{}
	}

	return orders, nil
}
