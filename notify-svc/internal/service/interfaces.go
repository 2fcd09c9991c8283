package service

import (
	"context"
	"time"

	"restaurant-ordering/notify-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type NotificationStore interface {
	// Save stores n unless a notification with the same id exists. It
	// reports whether n was new.
	Save(ctx context.Context, n domain.Notification) (bool, error)
	List(ctx context.Context, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
}

type PopularityStore interface {
	Record(ctx context.Context, day time.Time, items []domain.EventItem) error
	Top(ctx context.Context, day *time.Time, limit int) ([]domain.DishPopularity, error)
}

type Broadcaster interface {
	Broadcast(n domain.Notification)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessOrder(ctx context.Context, event domain.OrderEvent) error
}

type NotificationServiceInterface interface {
	List(ctx context.Context, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
}

type AnalyticsServiceInterface interface {
	TopToday(ctx context.Context, limit int) ([]domain.DishPopularity, error)
	TopAllTime(ctx context.Context, limit int) ([]domain.DishPopularity, error)
}
