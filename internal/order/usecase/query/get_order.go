package query

import (
	"context"
	"fmt"

	"github.com/tair/warehouse/internal/order/domain"
)

// GetOrderQuery represents the query to get an order
type GetOrderQuery struct {
	ID string
}

// GetOrderHandler handles get order query
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(ctx context.Context, query GetOrderQuery) (*domain.Order, error) {
	if query.ID == "" {
		return nil, domain.ErrOrderNotFound
	}

	order, err := h.repo.FindByID(ctx, query.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}
