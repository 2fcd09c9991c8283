package tests

import (
	"io"
	"time"

	"restaurant-ordering/notify-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var placedAt = time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)

func quietLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func orderCreated(orderID string) domain.OrderEvent {
	return domain.OrderEvent{
		Type:         domain.OrderCreatedEvent,
		OrderID:      orderID,
		UserID:       "u1",
		CustomerName: "Ana",
		Total:        decimal.RequireFromString("43"),
		ItemCount:    3,
		Status:       "pending",
		Items: []domain.EventItem{
			{DishID: "paella", Category: "mains", Name: "Paella", Quantity: 2},
			{DishID: "sangria", Category: "drinks", Name: "Sangria", Quantity: 1},
		},
		Timestamp: placedAt,
	}
}
