package amqp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/ports"

	amqp091 "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, exchange, key string, msg amqp091.Publishing) error {
	return m.Called(ctx, exchange, key, msg).Error(0)
}

func TestOrderReadyNotifier_NotifyOrderReady(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.MustUUIDFromString("2b1c7f4e-8a3d-4f62-9e1a-0c5d7b9f3a21")
	sentAt := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	publisher := new(MockPublisher)
	var published amqp091.Publishing
	publisher.On("Publish", ctx, "notifications", OrderReadyRoutingKey, mock.Anything).
		Run(func(args mock.Arguments) { published = args.Get(3).(amqp091.Publishing) }).
		Return(nil).Once()

	notifier := NewOrderReadyNotifier(publisher, "notifications")
	notifier.now = func() time.Time { return sentAt }

	err := notifier.NotifyOrderReady(ctx, ports.OrderReadyNotification{
		Phone:          "+573001234567",
		OrderID:        orderID,
		Pin:            "482913",
		RestaurantName: "La Fonda",
	})

	require.NoError(t, err)
	publisher.AssertExpectations(t)

	assert.Equal(t, "application/json", published.ContentType)
	assert.Equal(t, amqp091.Persistent, published.DeliveryMode)
	assert.Equal(t, orderID.String(), published.MessageId)
	assert.Equal(t, sentAt, published.Timestamp)

	var body map[string]string
	require.NoError(t, json.Unmarshal(published.Body, &body))
	assert.Equal(t, map[string]string{
		"phone":          "+573001234567",
		"orderId":        orderID.String(),
		"pin":            "482913",
		"restaurantName": "La Fonda",
	}, body)
}

func TestOrderReadyNotifier_PropagatesPublishFailure(t *testing.T) {
	ctx := t.Context()
	publisher := new(MockPublisher)
	publisher.On("Publish", ctx, "notifications", OrderReadyRoutingKey, mock.Anything).
		Return(ErrPublishNacked).Once()

	err := NewOrderReadyNotifier(publisher, "notifications").NotifyOrderReady(ctx, ports.OrderReadyNotification{
		OrderID: kernel.NewUUID(),
	})

	require.ErrorIs(t, err, ErrPublishNacked)
}
