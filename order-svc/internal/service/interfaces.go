package service

import (
	"context"
	"io"
	"time"

	"restaurant-ordering/order-svc/internal/cart"
	"restaurant-ordering/order-svc/internal/domain"
)

// DocumentStore is the contract of the backing document database.
// Collections are slash separated paths such as "users/<uid>/orders".
type DocumentStore interface {
	Get(ctx context.Context, collection, id string) (domain.Document, error)
	Set(ctx context.Context, collection, id string, data any, merge bool) error
	Create(ctx context.Context, collection, id string, data any) error
	Add(ctx context.Context, collection string, data any) (string, error)
	List(ctx context.Context, collection string) ([]domain.Document, error)
	ListGroup(ctx context.Context, name string) ([]domain.Document, error)
	Delete(ctx context.Context, collection, id string) error
	UpdateIf(ctx context.Context, collection, id, field string, expected any, patch map[string]any) (bool, error)
}

type CartStore interface {
	Load(ctx context.Context, sessionID string) (*cart.Cart, error)
	Save(ctx context.Context, sessionID string, c *cart.Cart) error
	Clear(ctx context.Context, sessionID string) error
}

type SessionStore interface {
	Revoke(ctx context.Context, sessionID string, until time.Time) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

type AuthServiceInterface interface {
	Register(ctx context.Context, email, password, displayName string) (domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.Session, error)
	Logout(ctx context.Context, sess *domain.Session) error
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}

type MenuServiceInterface interface {
	List(ctx context.Context, category domain.Category) ([]domain.Dish, error)
	Get(ctx context.Context, category domain.Category, dishID string) (*domain.Dish, error)
	Create(ctx context.Context, sess *domain.Session, dish *domain.Dish) error
	Update(ctx context.Context, sess *domain.Session, dish *domain.Dish) error
	Delete(ctx context.Context, sess *domain.Session, category domain.Category, dishID string) error
	UpdateImage(ctx context.Context, sess *domain.Session, category domain.Category, dishID, imageURL string) error
}

type CartServiceInterface interface {
	Get(ctx context.Context, sess *domain.Session) (*cart.Cart, error)
	AddItem(ctx context.Context, sess *domain.Session, category domain.Category, dishID string) (*cart.Cart, error)
	RemoveItem(ctx context.Context, sess *domain.Session, category domain.Category, dishID string) (*cart.Cart, error)
	Clear(ctx context.Context, sess *domain.Session) error
}

type CheckoutServiceInterface interface {
	Checkout(ctx context.Context, sess *domain.Session, method domain.PaymentMethod, notes string) (domain.Order, error)
}

type OrderServiceInterface interface {
	History(ctx context.Context, sess *domain.Session) ([]domain.Order, error)
	ListAll(ctx context.Context, sess *domain.Session) ([]domain.UserOrders, error)
	Get(ctx context.Context, sess *domain.Session, userID, orderID string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, sess *domain.Session, userID, orderID string, status domain.OrderStatus) (*domain.Order, error)
	QRCode(ctx context.Context, sess *domain.Session, userID, orderID string) ([]byte, error)
	Export(ctx context.Context, sess *domain.Session, w io.Writer) error
}

type TableServiceInterface interface {
	List(ctx context.Context) ([]domain.Table, error)
	Create(ctx context.Context, sess *domain.Session, table *domain.Table) error
	Select(ctx context.Context, sess *domain.Session, tableID string) (*domain.Table, error)
	SetAvailability(ctx context.Context, sess *domain.Session, tableID string, available bool) (*domain.Table, error)
}

func requireSession(sess *domain.Session) error {
	if sess == nil || sess.UserID == "" {
		return ErrUnauthenticated
	}
	return nil
}

func requireAdmin(sess *domain.Session) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	if !sess.IsAdmin() {
		return ErrForbidden
	}
	return nil
}
