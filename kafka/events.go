package kafka

import "time"

// OrderPickedEvent is emitted after a pick has been committed
type OrderPickedEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	OrderID     string    `json:"order_id"`
	SKU         string    `json:"sku"`
	Quantity    int       `json:"quantity"`
	OrderStatus string    `json:"order_status"`
	Timestamp   time.Time `json:"timestamp"`
}

// OrderCompletedEvent is emitted when a pick completes an order
type OrderCompletedEvent struct {
	EventID   string         `json:"event_id"`
	EventType string         `json:"event_type"`
	OrderID   string         `json:"order_id"`
	Requested map[string]int `json:"items"`
	Picked    map[string]int `json:"picked_items"`
	Timestamp time.Time      `json:"timestamp"`
}

// StockReceivedEvent announces goods arriving at the warehouse
type StockReceivedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	SKU       string    `json:"sku"`
	Quantity  int       `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderPicked    = "order.picked"
	EventTypeOrderCompleted = "order.completed"
	EventTypeStockReceived  = "stock.received"
)

// Kafka topics
const (
	TopicOrderPicked    = "order-picked"
	TopicOrderCompleted = "order-completed"
	TopicStockReceived  = "stock-received"
)
