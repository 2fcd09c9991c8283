package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryStarters Category = "entradas"
	CategoryMains    Category = "platos-fuertes"
	CategoryDesserts Category = "postres"
	CategoryDrinks   Category = "bebidas"
)

var Categories = []Category{CategoryStarters, CategoryMains, CategoryDesserts, CategoryDrinks}

func ParseCategory(value string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == value {
			return c, true
		}
	}
	return "", false
}

type Dish struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	ImageURL    string          `json:"image_url"`
}

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// Session is the authenticated identity attached to a request. The role is
// resolved once at sign-in and never re-read while the session lives.
type Session struct {
	ID          string    `json:"session_id"`
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// CustomerName falls back to the email when no display name was given.
func (s *Session) CustomerName() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.Email
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentCash   PaymentMethod = "cash"
	PaymentMobile PaymentMethod = "mobile"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentCash, PaymentMobile:
		return true
	}
	return false
}

type OrderItem struct {
	DishID    string          `json:"dish_id"`
	Category  Category        `json:"category,omitempty"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type Order struct {
	ID            string          `json:"id,omitempty"`
	UserID        string          `json:"user_id"`
	CustomerName  string          `json:"customer_name"`
	Items         []OrderItem     `json:"items"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Status        OrderStatus     `json:"status"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (o Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// UserOrders groups the order history of one customer for the admin view.
type UserOrders struct {
	UserID   string  `json:"user_id"`
	UserName string  `json:"user_name"`
	Orders   []Order `json:"orders"`
}

type Table struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	Available bool   `json:"available"`
}

const OrderCreatedEvent = "order.created"

type OrderEvent struct {
	Type         string          `json:"type"`
	OrderID      string          `json:"order_id"`
	UserID       string          `json:"user_id"`
	CustomerName string          `json:"customer_name"`
	Total        decimal.Decimal `json:"total"`
	ItemCount    int             `json:"item_count"`
	Status       OrderStatus     `json:"status"`
	Items        []OrderItem     `json:"items"`
	Timestamp    time.Time       `json:"timestamp"`
}

// Document is one record of the document store. Data holds the raw JSON body.
type Document struct {
	Collection string          `json:"collection"`
	ID         string          `json:"id"`
	Data       json.RawMessage `json:"data"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (d Document) Decode(v any) error {
	return json.Unmarshal(d.Data, v)
}
