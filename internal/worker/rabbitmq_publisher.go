package worker

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/spec-kit/scholarship-service/internal/config"
)

// Publisher delivers an encoded event to the broker.
type Publisher interface {
	Publish(ctx context.Context, id string, topic string, payload []byte) error
}

const (
	dialAttempts = 10
	dialBackoff  = 2 * time.Second
)

// RabbitMQPublisher publishes persistent messages to a durable queue.
type RabbitMQPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *zap.Logger
}

// NewRabbitMQPublisher dials the broker, retrying while it starts up, and
// declares the events queue.
func NewRabbitMQPublisher(ctx context.Context, cfg config.BrokerConfig, logger *zap.Logger) (*RabbitMQPublisher, error) {
	var conn *amqp.Connection
	var err error

	for i := 0; i < dialAttempts; i++ {
		conn, err = amqp.Dial(cfg.URL)
		if err == nil {
			break
		}
		logger.Warn("rabbitmq dial failed, retrying",
			zap.Int("attempt", i+1),
			zap.Duration("backoff", dialBackoff),
			zap.Error(err))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(dialBackoff):
		}
	}
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		cfg.Queue, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", cfg.Queue, err)
	}

	logger.Info("rabbitmq publisher ready", zap.String("queue", cfg.Queue))
	return &RabbitMQPublisher{conn: conn, channel: ch, queue: cfg.Queue, logger: logger}, nil
}

// Publish sends payload to the events queue with topic as the message type.
func (p *RabbitMQPublisher) Publish(ctx context.Context, id string, topic string, payload []byte) error {
	err := p.channel.PublishWithContext(ctx,
		"",      // exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			MessageId:    id,
			Type:         topic,
			ContentType:  "application/json",
			Timestamp:    time.Now().UTC(),
			Body:         payload,
			DeliveryMode: amqp.Persistent,
		})
	if err != nil {
		return fmt.Errorf("publish %s: %w", id, err)
	}
	p.logger.Debug("event published", zap.String("message_id", id), zap.String("type", topic))
	return nil
}

// Close releases the channel and connection.
func (p *RabbitMQPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
