package rabbit

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"order-service/internal/models"
)

const ExchangeOrderEvents = "order_events"

type Conn struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func Connect(url string) (*Conn, error) {
	c, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := c.Channel()
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	return &Conn{Conn: c, Ch: ch}, nil
}

func (c *Conn) Close() error {
	if c.Ch != nil {
		_ = c.Ch.Close()
	}
	if c.Conn != nil {
		return c.Conn.Close()
	}
	return nil
}

// DeclareOrderEvents ensures the durable fanout exchange exists. Declaration
// is idempotent, so every publisher and subscriber can run it on startup.
func DeclareOrderEvents(ch *amqp.Channel) error {
	return ch.ExchangeDeclare(ExchangeOrderEvents, "fanout", true, false, false, false, nil)
}

// Publisher emits order events over a fresh connection per publish. Orders
// are accepted whether or not the broker is reachable, so nothing is pooled,
// confirmed, or retried here.
type Publisher struct {
	URL string
}

func NewPublisher(url string) *Publisher { return &Publisher{URL: url} }

// PublishOrderCreated sends evt to the order_events fanout exchange with an
// empty routing key and transient delivery. The connection is closed on every
// return path. The returned error is the caller's policy decision to act on
// or ignore.
func (p *Publisher) PublishOrderCreated(ctx context.Context, evt models.OrderCreatedEvent) error {
	rc, err := Connect(p.URL)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	if err := DeclareOrderEvents(rc.Ch); err != nil {
		return err
	}

	b, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	return rc.Ch.PublishWithContext(ctx, ExchangeOrderEvents, "", false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Transient,
		Body:         b,
		Timestamp:    time.Now(),
	})
}

func WithTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, 5*time.Second)
}
