package service

import (
	"context"
	"time"

	"restaurant-ordering/order-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

type CheckoutService struct {
	carts   CartStore
	gateway *OrderGateway
	now     func() time.Time
	log     *logrus.Entry
}

func NewCheckoutService(carts CartStore, gateway *OrderGateway, log *logrus.Entry) *CheckoutService {
	return &CheckoutService{carts: carts, gateway: gateway, now: time.Now, log: log}
}

// Checkout composes the session cart into an order, submits it, and only
// then clears the cart. When submission fails the cart is left as it was so
// the customer can try again.
func (s *CheckoutService) Checkout(ctx context.Context, sess *domain.Session, method domain.PaymentMethod, notes string) (domain.Order, error) {
	if err := requireSession(sess); err != nil {
		return domain.Order{}, err
	}

	current, err := s.carts.Load(ctx, sess.ID)
	if err != nil {
		return domain.Order{}, unavailable("load cart", err)
	}

	order, err := Compose(current.Snapshot(), sess, method, s.now())
	if err != nil {
		return domain.Order{}, err
	}
	order.Notes = notes

	id, err := s.gateway.Submit(ctx, order)
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = id

	if err := s.carts.Clear(ctx, sess.ID); err != nil {
		s.log.WithError(err).WithField("order_id", id).Warn("order submitted but cart not cleared")
	}

	return order, nil
}

var _ CheckoutServiceInterface = (*CheckoutService)(nil)
