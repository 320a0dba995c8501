package models

const EventOrderCreated = "order_created"

// OrderCreatedEvent is the envelope published to the order_events exchange
// for every accepted order. The submission payload travels through untouched.
type OrderCreatedEvent struct {
	Event   string         `json:"event"`
	OrderID string         `json:"order_id"`
	Details map[string]any `json:"details"`
}

func NewOrderCreatedEvent(orderID string, details map[string]any) OrderCreatedEvent {
	return OrderCreatedEvent{
		Event:   EventOrderCreated,
		OrderID: orderID,
		Details: details,
	}
}
