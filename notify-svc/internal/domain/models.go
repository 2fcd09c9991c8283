package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderCreatedEvent = "order.created"
	NewOrderType      = "new_order"
)

type EventItem struct {
	DishID   string `json:"dish_id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// OrderEvent is the message order-svc publishes on the orders topic.
type OrderEvent struct {
	Type         string          `json:"type"`
	OrderID      string          `json:"order_id"`
	UserID       string          `json:"user_id"`
	CustomerName string          `json:"customer_name"`
	Total        decimal.Decimal `json:"total"`
	ItemCount    int             `json:"item_count"`
	Status       string          `json:"status"`
	Items        []EventItem     `json:"items"`
	Timestamp    time.Time       `json:"timestamp"`
}

type OrderSummary struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
	Status    string          `json:"status"`
}

type Notification struct {
	ID        string       `json:"id"`
	Type      string       `json:"type"`
	Title     string       `json:"title"`
	Message   string       `json:"message"`
	Order     OrderSummary `json:"order"`
	Timestamp time.Time    `json:"timestamp"`
	Read      bool         `json:"read"`
}

type DishPopularity struct {
	DishID   string  `json:"dish_id"`
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
}

const AdminRole = "admin"

type Principal struct {
	UserID    string
	SessionID string
	Role      string
}
