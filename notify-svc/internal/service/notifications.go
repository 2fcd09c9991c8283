package service

import (
	"context"
	"time"

	"restaurant-ordering/notify-svc/internal/domain"
)

const DefaultListLimit = 50

func NotificationID(orderID string) string {
	return "order_" + orderID
}

func NewOrderNotification(event domain.OrderEvent) domain.Notification {
	ts := event.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	customer := event.CustomerName
	if customer == "" {
		customer = "a customer"
	}

	return domain.Notification{
		ID:      NotificationID(event.OrderID),
		Type:    domain.NewOrderType,
		Title:   "New order",
		Message: "New order from " + customer,
		Order: domain.OrderSummary{
			ID:        event.OrderID,
			UserID:    event.UserID,
			Total:     event.Total,
			ItemCount: event.ItemCount,
			Status:    event.Status,
		},
		Timestamp: ts.UTC(),
	}
}

type NotificationService struct {
	store NotificationStore
}

func NewNotificationService(store NotificationStore) *NotificationService {
	return &NotificationService{store: store}
}

// List returns the newest notifications first.
func (s *NotificationService) List(ctx context.Context, limit int) ([]domain.Notification, error) {
	if limit <= 0 || limit > 500 {
		limit = DefaultListLimit
	}
	return s.store.List(ctx, limit)
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	return s.store.MarkRead(ctx, id)
}

var _ NotificationServiceInterface = (*NotificationService)(nil)
