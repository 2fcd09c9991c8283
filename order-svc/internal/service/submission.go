package service

import (
	"context"
	"time"

	"restaurant-ordering/order-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

// OrderGateway persists composed orders under the owner's order collection.
type OrderGateway struct {
	store     DocumentStore
	publisher OrderPublisher
	log       *logrus.Entry
}

func NewOrderGateway(store DocumentStore, publisher OrderPublisher, log *logrus.Entry) *OrderGateway {
	return &OrderGateway{store: store, publisher: publisher, log: log}
}

// Submit writes the order and returns the id assigned by the store. A
// failed write is reported as ErrBackendUnavailable and is never retried.
func (g *OrderGateway) Submit(ctx context.Context, order domain.Order) (string, error) {
	if order.UserID == "" {
		return "", ErrUnauthenticated
	}
	if len(order.Items) == 0 {
		return "", ErrCartEmpty
	}

	order.ID = ""
	id, err := g.store.Add(ctx, OrdersCollection(order.UserID), order)
	if err != nil {
		return "", unavailable("submit order", err)
	}

	if g.publisher != nil {
		event := domain.OrderEvent{
			Type:         domain.OrderCreatedEvent,
			OrderID:      id,
			UserID:       order.UserID,
			CustomerName: order.CustomerName,
			Total:        order.Total,
			ItemCount:    order.ItemCount(),
			Status:       order.Status,
			Items:        order.Items,
			Timestamp:    time.Now().UTC(),
		}
		if err := g.publisher.PublishOrder(ctx, event); err != nil {
			g.log.WithError(err).WithField("order_id", id).Warn("order stored but event not published")
		}
	}

	g.log.WithFields(logrus.Fields{
		"order_id": id,
		"user_id":  order.UserID,
		"total":    order.Total.StringFixed(2),
	}).Info("order submitted")

	return id, nil
}
