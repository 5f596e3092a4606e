package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"foodapp/models"

	"github.com/rabbitmq/amqp091-go"
)

// OrderPlacedRoutingKey is the routing key of new-order events
const OrderPlacedRoutingKey = "order.placed"

const publishTimeout = 10 * time.Second

// Publisher publishes order events to a durable topic exchange
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
}

// NewPublisher dials url and declares exchange
func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return &Publisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

// OrderPlaced publishes order under OrderPlacedRoutingKey
func (p *Publisher) OrderPlaced(ctx context.Context, order models.Order) error {
	msg, err := NewOrderPlacedMessage(order, time.Now())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,            // exchange
		OrderPlacedRoutingKey, // routing key
		false,                 // mandatory
		false,                 // immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("failed to publish order %s: %w", order.ID, err)
	}
	return nil
}

// NewOrderPlacedMessage encodes order as a persistent JSON message
func NewOrderPlacedMessage(order models.Order, now time.Time) (amqp091.Publishing, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return amqp091.Publishing{}, fmt.Errorf("failed to marshal order: %w", err)
	}

	return amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    order.ID,
		Type:         OrderPlacedRoutingKey,
		Timestamp:    now,
		Body:         body,
	}, nil
}

// Close closes the channel and the connection
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}
