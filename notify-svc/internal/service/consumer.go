package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"restaurant-ordering/notify-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

type Consumer struct {
	Reader      MessageReader
	Store       NotificationStore
	Popularity  PopularityStore
	Broadcaster Broadcaster
	Log         *logrus.Entry
	// RetryDelay is the pause after a failed read.
	RetryDelay time.Duration
}

const defaultRetryDelay = time.Second

func NewConsumer(reader MessageReader, store NotificationStore, popularity PopularityStore, broadcaster Broadcaster, log *logrus.Entry) *Consumer {
	return &Consumer{
		Reader:      reader,
		Store:       store,
		Popularity:  popularity,
		Broadcaster: broadcaster,
		Log:         log,
		RetryDelay:  defaultRetryDelay,
	}
}

// Start reads the orders topic until ctx is cancelled. Unreadable
// messages are logged and skipped. Read errors pause for RetryDelay.
func (c *Consumer) Start(ctx context.Context) {
	c.Log.Info("starting order event consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.Log.Info("order event consumer stopped")
				return
			}
			c.Log.WithError(err).Error("error reading message")
			select {
			case <-ctx.Done():
				c.Log.Info("order event consumer stopped")
				return
			case <-time.After(c.RetryDelay):
			}
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.Log.WithError(err).WithField("offset", message.Offset).Warn("error unmarshaling message")
			continue
		}

		if event.Type != domain.OrderCreatedEvent {
			continue
		}
		if err := c.ProcessOrder(ctx, event); err != nil {
			c.Log.WithError(err).WithField("order_id", event.OrderID).Error("error processing order event")
		}
	}
}

// ProcessOrder stores the admin notification for a new order, pushes it to
// live clients and counts the ordered dishes. Redelivered events are
// recognised by order id and neither pushed nor counted twice.
func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderEvent) error {
	if event.OrderID == "" {
		return nil
	}

	n := NewOrderNotification(event)
	created, err := c.Store.Save(ctx, n)
	if err != nil {
		return err
	}
	if !created {
		c.Log.WithField("order_id", event.OrderID).Debug("duplicate order event")
		return nil
	}

	if c.Broadcaster != nil {
		c.Broadcaster.Broadcast(n)
	}

	if c.Popularity != nil && len(event.Items) > 0 {
		if err := c.Popularity.Record(ctx, n.Timestamp, event.Items); err != nil {
			return err
		}
	}

	c.Log.WithField("order_id", event.OrderID).Info("order notification stored")
	return nil
}

var _ ConsumerInterface = (*Consumer)(nil)
