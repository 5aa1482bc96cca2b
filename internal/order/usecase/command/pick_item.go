package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	inventorydomain "github.com/tair/warehouse/internal/inventory/domain"
	inventorycommand "github.com/tair/warehouse/internal/inventory/usecase/command"
	"github.com/tair/warehouse/internal/order/domain"
	"github.com/tair/warehouse/internal/store"
	"github.com/tair/warehouse/pkg/logger"
)

// releaseTimeout bounds a key release detached from the request context
const releaseTimeout = 2 * time.Second

// IdempotencyGuard remembers which pick requests were already accepted
type IdempotencyGuard interface {
	// Acquire reports false when key was claimed before
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// PickPublisher announces committed picks to other services
type PickPublisher interface {
	PublishPick(ctx context.Context, order *domain.Order, sku string, quantity int) error
}

// PickItemCommand records that Quantity units of SKU were taken off the shelf for an order.
// IdempotencyKey is optional; a repeated key for the same order is rejected.
type PickItemCommand struct {
	OrderID        string
	SKU            string
	Quantity       int
	IdempotencyKey string
}

// PickResult is the outcome of a committed pick
type PickResult struct {
	OrderID   string        `json:"order_id"`
	SKU       string        `json:"sku"`
	Quantity  int           `json:"quantity"`
	Remaining int           `json:"remaining_stock"`
	Status    domain.Status `json:"order_status"`
}

// PickItemHandler handles pick item command
type PickItemHandler struct {
	store     store.Store
	guard     IdempotencyGuard
	publisher PickPublisher
	now       func() time.Time
}

// NewPickItemHandler creates a new pick item handler
func NewPickItemHandler(s store.Store, guard IdempotencyGuard, publisher PickPublisher) *PickItemHandler {
	return &PickItemHandler{store: s, guard: guard, publisher: publisher, now: time.Now}
}

// Handle decrements the ledger and updates the order's picked quantities in one
// transaction. The order row is locked before the inventory row.
func (h *PickItemHandler) Handle(ctx context.Context, cmd PickItemCommand) (*PickResult, error) {
	if cmd.OrderID == "" {
		return nil, fmt.Errorf("%w: order id is required", domain.ErrInvalidPick)
	}
	if cmd.SKU == "" {
		return nil, fmt.Errorf("%w: sku is required", domain.ErrInvalidPick)
	}
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidPick)
	}

	var key string
	if cmd.IdempotencyKey != "" && h.guard != nil {
		key = "pick:" + cmd.OrderID + ":" + cmd.IdempotencyKey
		ok, err := h.guard.Acquire(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to check idempotency key: %w", err)
		}
		if !ok {
			return nil, domain.ErrDuplicatePick
		}
	}

	var (
		result PickResult
		picked *domain.Order
	)
	err := h.store.Transaction(ctx, func(ctx context.Context, repos store.Repositories) error {
		order, err := repos.Orders.FindByIDForUpdate(ctx, cmd.OrderID)
		if err != nil {
			return err
		}

		remaining, err := inventorycommand.NewDecrementStockHandler(repos.Inventory).Handle(ctx, inventorycommand.DecrementStockCommand{
			SKU:    cmd.SKU,
			Amount: cmd.Quantity,
		})
		if errors.Is(err, inventorydomain.ErrNotFound) {
			return &domain.UnknownSKUError{SKU: cmd.SKU}
		}
		if err != nil {
			return err
		}

		status := order.RecordPick(cmd.SKU, cmd.Quantity, h.now().UTC())
		if err := repos.Orders.SavePicks(ctx, order); err != nil {
			return err
		}

		result = PickResult{
			OrderID:   order.ID,
			SKU:       cmd.SKU,
			Quantity:  cmd.Quantity,
			Remaining: remaining,
			Status:    status,
		}
		picked = order
		return nil
	})
	if err != nil {
		if key != "" {
			h.release(ctx, key)
		}
		return nil, err
	}

	if h.publisher != nil {
		if err := h.publisher.PublishPick(ctx, picked, cmd.SKU, cmd.Quantity); err != nil {
			logger.Error(ctx).Err(err).Str("order_id", cmd.OrderID).Msg("Failed to publish pick event")
		}
	}

	return &result, nil
}

// release frees key after a failed pick, even when ctx is already cancelled
func (h *PickItemHandler) release(ctx context.Context, key string) {
	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()

	if err := h.guard.Release(releaseCtx, key); err != nil {
		logger.Warn(ctx).Err(err).Str("key", key).Msg("Failed to release idempotency key")
	}
}
