package amqp

import (
	"context"
	"encoding/json"
	"time"

	"foodcourt/internal/core/ports"

	"github.com/pkg/errors"
	amqp091 "github.com/rabbitmq/amqp091-go"
)

const OrderReadyRoutingKey = "notification.order.ready"

type publisher interface {
	Publish(ctx context.Context, exchange, key string, msg amqp091.Publishing) error
}

// orderReadyMessage is the payload consumed by the messaging service.
type orderReadyMessage struct {
	Phone          string `json:"phone"`
	OrderID        string `json:"orderId"`
	Pin            string `json:"pin"`
	RestaurantName string `json:"restaurantName"`
}

var _ ports.Notifier = (*OrderReadyNotifier)(nil)

// OrderReadyNotifier implements ports.Notifier by publishing a persistent
// JSON message per ready order.
type OrderReadyNotifier struct {
	publisher publisher
	exchange  string
	now       func() time.Time
}

func NewOrderReadyNotifier(publisher publisher, exchange string) *OrderReadyNotifier {
	return &OrderReadyNotifier{publisher: publisher, exchange: exchange, now: time.Now}
}

func (n *OrderReadyNotifier) NotifyOrderReady(ctx context.Context, notification ports.OrderReadyNotification) error {
	body, err := json.Marshal(orderReadyMessage{
		Phone:          notification.Phone,
		OrderID:        notification.OrderID.String(),
		Pin:            notification.Pin,
		RestaurantName: notification.RestaurantName,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode order ready notification")
	}

	return n.publisher.Publish(ctx, n.exchange, OrderReadyRoutingKey, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    notification.OrderID.String(),
		Timestamp:    n.now().UTC(),
		Type:         "order.ready",
		Body:         body,
	})
}
