package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"order-service/internal/metrics"
	"order-service/internal/models"
	"order-service/internal/rabbit"
)

// EventPublisher emits the order-created event for an accepted order.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, evt models.OrderCreatedEvent) error
}

type CreateOrderHandler struct {
	Publisher EventPublisher
	Log       zerolog.Logger
}

type createOrderResp struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

type errorResp struct {
	Message string `json:"message"`
}

func (h *CreateOrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var details map[string]any
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&details); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp{Message: "Invalid JSON body"})
		return
	}
	// The body must be a single JSON document; trailing data is malformed too.
	if dec.More() {
		writeJSON(w, http.StatusBadRequest, errorResp{Message: "Invalid JSON body"})
		return
	}

	orderID := uuid.NewString()
	evt := models.NewOrderCreatedEvent(orderID, details)

	ctx, cancel := rabbit.WithTimeout(r.Context())
	defer cancel()

	// Fire and forget: the order is accepted whether or not the event made it
	// out. A lost event is visible in logs and metrics only.
	if err := h.Publisher.PublishOrderCreated(ctx, evt); err != nil {
		metrics.EventPublishErrorsTotal.Inc()
		h.Log.Warn().Err(err).Str("order_id", orderID).Msg("order_created not published")
	} else {
		metrics.EventsPublishedTotal.Inc()
		h.Log.Info().Str("order_id", orderID).Msg("order_created published")
	}

	metrics.OrdersAcceptedTotal.Inc()
	writeJSON(w, http.StatusCreated, createOrderResp{
		Message: "Order placed and is being processed.",
		OrderID: orderID,
		Status:  "ACCEPTED",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
