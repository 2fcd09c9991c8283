package service

import (
	"context"
	"io"
	"sort"
	"time"

	"restaurant-ordering/order-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

type OrderService struct {
	store     DocumentStore
	qrEncoder QRGenerator
	now       func() time.Time
	log       *logrus.Entry
}

func NewOrderService(store DocumentStore, qr QRGenerator, log *logrus.Entry) *OrderService {
	return &OrderService{store: store, qrEncoder: qr, now: time.Now, log: log}
}

func decodeOrder(doc domain.Document) (domain.Order, error) {
	var order domain.Order
	if err := doc.Decode(&order); err != nil {
		return domain.Order{}, err
	}
	order.ID = doc.ID
	if order.UserID == "" {
		order.UserID = ownerOf(doc.Collection)
	}
	return order, nil
}

func newestFirst(orders []domain.Order) {
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
}

// History lists the orders of the session owner, newest first.
func (s *OrderService) History(ctx context.Context, sess *domain.Session) ([]domain.Order, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}

	docs, err := s.store.List(ctx, OrdersCollection(sess.UserID))
	if err != nil {
		return nil, unavailable("list orders", err)
	}

	orders := make([]domain.Order, 0, len(docs))
	for _, doc := range docs {
		order, err := decodeOrder(doc)
		if err != nil {
			s.log.WithError(err).WithField("order_id", doc.ID).Warn("skipping unreadable order")
			continue
		}
		orders = append(orders, order)
	}
	newestFirst(orders)
	return orders, nil
}

// ListAll returns every order grouped by customer. Admin only.
func (s *OrderService) ListAll(ctx context.Context, sess *domain.Session) ([]domain.UserOrders, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	docs, err := s.store.ListGroup(ctx, ordersGroup)
	if err != nil {
		return nil, unavailable("list all orders", err)
	}

	byUser := map[string]*domain.UserOrders{}
	for _, doc := range docs {
		order, err := decodeOrder(doc)
		if err != nil || order.UserID == "" {
			continue
		}
		group, ok := byUser[order.UserID]
		if !ok {
			group = &domain.UserOrders{UserID: order.UserID, UserName: order.CustomerName}
			byUser[order.UserID] = group
		}
		group.Orders = append(group.Orders, order)
	}

	groups := make([]domain.UserOrders, 0, len(byUser))
	for _, group := range byUser {
		newestFirst(group.Orders)
		groups = append(groups, *group)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].UserName != groups[j].UserName {
			return groups[i].UserName < groups[j].UserName
		}
		return groups[i].UserID < groups[j].UserID
	})
	return groups, nil
}

// Get returns one order. Customers may only read their own orders.
func (s *OrderService) Get(ctx context.Context, sess *domain.Session, userID, orderID string) (*domain.Order, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	if !sess.IsAdmin() && sess.UserID != userID {
		return nil, ErrForbidden
	}

	doc, err := s.store.Get(ctx, OrdersCollection(userID), orderID)
	if err != nil {
		return nil, unavailable("get order", err)
	}
	order, err := decodeOrder(doc)
	if err != nil {
		return nil, unavailable("decode order", err)
	}
	return &order, nil
}

// UpdateStatus moves an order along the status workflow. Setting the
// current status again is accepted and changes nothing.
func (s *OrderService) UpdateStatus(ctx context.Context, sess *domain.Session, userID, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if _, err := ParseStatus(string(status)); err != nil {
		return nil, err
	}

	order, err := s.Get(ctx, sess, userID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == status {
		return order, nil
	}
	if !CanTransition(order.Status, status) {
		return nil, ErrInvalidTransition
	}

	now := s.now().UTC()
	patch := map[string]any{"status": status, "updated_at": now}
	ok, err := s.store.UpdateIf(ctx, OrdersCollection(userID), orderID, "status", order.Status, patch)
	if err != nil {
		return nil, unavailable("update order status", err)
	}
	if !ok {
		// someone else changed the status since we read it
		return nil, ErrInvalidTransition
	}

	s.log.WithFields(logrus.Fields{
		"order_id": orderID,
		"from":     order.Status,
		"to":       status,
	}).Info("order status changed")

	order.Status = status
	order.UpdatedAt = now
	return order, nil
}

func (s *OrderService) QRCode(ctx context.Context, sess *domain.Session, userID, orderID string) ([]byte, error) {
	if _, err := s.Get(ctx, sess, userID, orderID); err != nil {
		return nil, err
	}
	return s.qrEncoder.Generate(userID, orderID)
}

func (s *OrderService) Export(ctx context.Context, sess *domain.Session, w io.Writer) error {
	groups, err := s.ListAll(ctx, sess)
	if err != nil {
		return err
	}
	return WriteOrdersXLSX(w, groups)
}

var _ OrderServiceInterface = (*OrderService)(nil)
