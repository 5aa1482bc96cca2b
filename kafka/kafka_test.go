package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/warehouse/internal/order/domain"
)

func TestPublishPick_PartialSendsOneEvent(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var event OrderPickedEvent
		if err := json.Unmarshal(val, &event); err != nil {
			return err
		}
		if event.OrderID != "o-1" || event.SKU != "SKU001" || event.Quantity != 2 || event.OrderStatus != "Partial" {
			return errors.New("unexpected order.picked payload")
		}
		return nil
	})

	p := NewPublisherWithProducer(producer)
	order := domain.NewOrder("o-1", domain.Items{"SKU001": 5}, time.Now())
	order.RecordPick("SKU001", 2, time.Now())

	require.NoError(t, p.PublishPick(context.Background(), order, "SKU001", 2))
	require.NoError(t, p.Close())
}

func TestPublishPick_CompletedAlsoSendsCompletion(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	producer.ExpectSendMessageAndSucceed()
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var event OrderCompletedEvent
		if err := json.Unmarshal(val, &event); err != nil {
			return err
		}
		if event.EventType != EventTypeOrderCompleted || event.Picked["SKU001"] != 5 {
			return errors.New("unexpected order.completed payload")
		}
		return nil
	})

	p := NewPublisherWithProducer(producer)
	order := domain.NewOrder("o-1", domain.Items{"SKU001": 5}, time.Now())
	order.RecordPick("SKU001", 5, time.Now())

	require.NoError(t, p.PublishPick(context.Background(), order, "SKU001", 5))
	require.NoError(t, p.Close())
}

func TestPublishPick_SendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewPublisherWithProducer(producer)
	order := domain.NewOrder("o-1", domain.Items{"SKU001": 5}, time.Now())

	err := p.PublishPick(context.Background(), order, "SKU001", 1)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}

func stockMessage(t *testing.T, headers ...sarama.RecordHeader) *sarama.ConsumerMessage {
	t.Helper()
	payload, err := json.Marshal(StockReceivedEvent{EventType: EventTypeStockReceived, SKU: "SKU001", Quantity: 7})
	require.NoError(t, err)
	return &sarama.ConsumerMessage{Topic: TopicStockReceived, Value: payload, Headers: toPointers(headers)}
}

func toPointers(headers []sarama.RecordHeader) []*sarama.RecordHeader {
	out := make([]*sarama.RecordHeader, len(headers))
	for i := range headers {
		out[i] = &headers[i]
	}
	return out
}

func TestConsumerDispatch_StockReceived(t *testing.T) {
	c := newConsumer(nil, "warehouse", []string{TopicStockReceived})

	var got StockReceivedEvent
	c.RegisterHandler(EventTypeStockReceived, StockReceived(func(ctx context.Context, event StockReceivedEvent) error {
		got = event
		return nil
	}))

	msg := stockMessage(t, sarama.RecordHeader{Key: []byte("event_type"), Value: []byte(EventTypeStockReceived)})
	require.NoError(t, c.dispatch(context.Background(), msg))
	assert.Equal(t, "SKU001", got.SKU)
	assert.Equal(t, 7, got.Quantity)
}

func TestConsumerDispatch_Errors(t *testing.T) {
	c := newConsumer(nil, "warehouse", nil)
	boom := errors.New("boom")
	c.RegisterHandler(EventTypeStockReceived, func(ctx context.Context, payload []byte) error { return boom })

	err := c.dispatch(context.Background(), stockMessage(t))
	assert.ErrorIs(t, err, ErrMissingEventType)

	err = c.dispatch(context.Background(), stockMessage(t, sarama.RecordHeader{Key: []byte("event_type"), Value: []byte("unknown")}))
	assert.ErrorIs(t, err, ErrNoHandler)

	err = c.dispatch(context.Background(), stockMessage(t, sarama.RecordHeader{Key: []byte("event_type"), Value: []byte(EventTypeStockReceived)}))
	assert.ErrorIs(t, err, boom)
}

func TestStockReceived_RejectsBadPayload(t *testing.T) {
	h := StockReceived(func(ctx context.Context, event StockReceivedEvent) error { return nil })
	assert.Error(t, h(context.Background(), []byte("{not json")))
}
