package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	OrdersAcceptedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_accepted_total",
		Help: "Total order submissions accepted with 201",
	})
	EventsPublishedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "order_events_published_total",
		Help: "Total order_created events handed to the broker",
	})
	EventPublishErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "order_event_publish_errors_total",
		Help: "Total order_created publish attempts that failed",
	})
)

func init() {
	prometheus.MustRegister(OrdersAcceptedTotal, EventsPublishedTotal, EventPublishErrorsTotal)
}
