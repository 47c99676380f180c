// Package amqp publishes client notifications to RabbitMQ.
package amqp

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	amqp091 "github.com/rabbitmq/amqp091-go"
)

var ErrPublishNacked = errors.New("broker rejected the message")

// Client holds one connection and one confirming channel. Publish calls are
// serialized so every message waits for its own confirmation.
type Client struct {
	conn  *amqp091.Connection
	ch    *amqp091.Channel
	acks  <-chan amqp091.Confirmation
	mutex sync.Mutex
}

// Dial connects to url, enables publisher confirms and declares exchange as a
// durable topic exchange.
func Dial(url, exchange string) (*Client, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "failed to open rabbitmq channel")
	}

	if err = ch.ExchangeDeclare(exchange, amqp091.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errors.Wrapf(err, "failed to declare exchange %q", exchange)
	}

	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errors.Wrap(err, "failed to enable publisher confirms")
	}

	return &Client{
		conn: conn,
		ch:   ch,
		acks: ch.NotifyPublish(make(chan amqp091.Confirmation, 1)),
	}, nil
}

// Publish sends msg and blocks until the broker confirms it or ctx ends.
func (c *Client) Publish(ctx context.Context, exchange, key string, msg amqp091.Publishing) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if err := c.ch.PublishWithContext(ctx, exchange, key, false, false, msg); err != nil {
		return errors.Wrap(err, "failed to publish message")
	}

	select {
	case confirmation := <-c.acks:
		if !confirmation.Ack {
			return ErrPublishNacked
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) Close() error {
	chErr := c.ch.Close()
	connErr := c.conn.Close()
	if chErr != nil {
		return chErr
	}
	return connErr
}
