package service

import (
	"time"

	"restaurant-ordering/order-svc/internal/cart"
	"restaurant-ordering/order-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// Compose snapshots the cart into a pending order. It performs no I/O.
// An empty cart is reported before the session is looked at.
// Each subtotal is computed from its own line, and the total is the sum of
// the subtotals, so the two can never disagree.
func Compose(c *cart.Cart, sess *domain.Session, method domain.PaymentMethod, now time.Time) (domain.Order, error) {
	if c == nil || c.IsEmpty() {
		return domain.Order{}, ErrCartEmpty
	}
	if err := requireSession(sess); err != nil {
		return domain.Order{}, err
	}
	if !method.Valid() {
		return domain.Order{}, ErrInvalidPaymentMethod
	}

	lines := c.Items()
	items := make([]domain.OrderItem, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		subtotal := line.Subtotal()
		items = append(items, domain.OrderItem{
			DishID:    line.DishID,
			Category:  line.Category,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	now = now.UTC()
	return domain.Order{
		UserID:        sess.UserID,
		CustomerName:  sess.CustomerName(),
		Items:         items,
		Total:         total,
		PaymentMethod: method,
		Status:        domain.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}
