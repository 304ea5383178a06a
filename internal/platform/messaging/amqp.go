// Package messaging publishes domain events to RabbitMQ.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// Event is the envelope written to the queue.
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurredAt"`
	Data       json.RawMessage `json:"data"`
}

// NewEvent encodes data into an envelope with a fresh id.
func NewEvent(eventType string, data interface{}) (Event, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Event{}, fmt.Errorf("encode %s payload: %w", eventType, err)
	}
	return Event{ID: uuid.NewString(), Type: eventType, OccurredAt: time.Now().UTC(), Data: raw}, nil
}

var ErrNotConfirmed = errors.New("message not confirmed by broker")

// AMQPPublisher publishes persistent messages to one durable queue and waits
// for the broker to confirm each one.
type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	queue    string
	confirms chan amqp.Confirmation
	logger   zerolog.Logger
	mu       sync.Mutex
}

// DialAMQP connects, declares queue and enables publisher confirms.
func DialAMQP(url, queue string, logger zerolog.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	if err := ch.Confirm(false); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable confirms: %w", err)
	}

	return &AMQPPublisher{
		conn:     conn,
		ch:       ch,
		queue:    queue,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
		logger:   logger.With().Str("component", "amqp").Str("queue", queue).Logger(),
	}, nil
}

// Publish sends evt and blocks until the broker acks it or ctx ends.
func (p *AMQPPublisher) Publish(ctx context.Context, evt Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    evt.ID,
		Type:         evt.Type,
		Timestamp:    evt.OccurredAt,
		Body:         body,
	}
	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", evt.Type, err)
	}

	select {
	case c := <-p.confirms:
		if !c.Ack {
			return fmt.Errorf("publish %s: %w", evt.Type, ErrNotConfirmed)
		}
	case <-ctx.Done():
		return fmt.Errorf("publish %s: %w", evt.Type, ctx.Err())
	}

	p.logger.Debug().Str("event_id", evt.ID).Str("event_type", evt.Type).Msg("event published")
	return nil
}

// Ping reports an error once the connection has closed.
func (p *AMQPPublisher) Ping(context.Context) error {
	if p.conn.IsClosed() {
		return errors.New("amqp connection closed")
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.ch.Close()
	return p.conn.Close()
}
