// Package event applies inventory events consumed from Kafka to the ledger.
package event

import (
	"context"

	"github.com/tair/warehouse/internal/inventory/usecase/command"
	"github.com/tair/warehouse/kafka"
	"github.com/tair/warehouse/pkg/logger"
)

// StockHandler turns stock.received events into ledger increments
type StockHandler struct {
	receive *command.ReceiveStockHandler
}

func NewStockHandler(receive *command.ReceiveStockHandler) *StockHandler {
	return &StockHandler{receive: receive}
}

// Register subscribes the handler on consumer
func (h *StockHandler) Register(consumer *kafka.Consumer) {
	consumer.RegisterHandler(kafka.EventTypeStockReceived, kafka.StockReceived(h.HandleStockReceived))
}

func (h *StockHandler) HandleStockReceived(ctx context.Context, event kafka.StockReceivedEvent) error {
	qty, err := h.receive.Handle(ctx, command.ReceiveStockCommand{
		SKU:    event.SKU,
		Amount: event.Quantity,
	})
	if err != nil {
		return err
	}

	logger.Info(ctx).
		Str("sku", event.SKU).
		Int("received", event.Quantity).
		Int("quantity", qty).
		Msg("Stock received")
	return nil
}
