package queue

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// channel is the part of *amqp.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends JSON messages to a single queue over one AMQP channel. It
// owns the connection it was built from and closes it on Close.
type Publisher struct {
	ch       channel
	conn     io.Closer
	exchange string
	queue    string
	log      *zap.Logger
}

// NewPublisher opens a channel on conn and declares a durable queue.
func NewPublisher(conn *amqp.Connection, exchange, queue string, log *zap.Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	return newPublisher(ch, conn, exchange, queue, log), nil
}

func newPublisher(ch channel, conn io.Closer, exchange, queue string, log *zap.Logger) *Publisher {
	return &Publisher{ch: ch, conn: conn, exchange: exchange, queue: queue, log: log}
}

func (p *Publisher) PublishJSON(ctx context.Context, v interface{}) error {
	body, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	// with the default exchange the routing key is the queue name
	if err := p.ch.PublishWithContext(ctx, p.exchange, p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	}); err != nil {
		return fmt.Errorf("publish to %s: %w", p.queue, err)
	}
	p.log.Debug("published message", zap.String("queue", p.queue), zap.Int("bytes", len(body)))
	return nil
}

// Close closes the channel, then the connection.
func (p *Publisher) Close() error {
	err := p.ch.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
