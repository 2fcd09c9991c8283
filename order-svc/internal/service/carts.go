package service

import (
	"context"

	"restaurant-ordering/order-svc/internal/cart"
	"restaurant-ordering/order-svc/internal/domain"
)

// CartService applies add/remove events to the cart of one session. Dish
// name and price are taken from the menu, never from the client.
type CartService struct {
	carts CartStore
	menu  MenuServiceInterface
}

func NewCartService(carts CartStore, menu MenuServiceInterface) *CartService {
	return &CartService{carts: carts, menu: menu}
}

func (s *CartService) Get(ctx context.Context, sess *domain.Session) (*cart.Cart, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	c, err := s.carts.Load(ctx, sess.ID)
	if err != nil {
		return nil, unavailable("load cart", err)
	}
	return c, nil
}

func (s *CartService) AddItem(ctx context.Context, sess *domain.Session, category domain.Category, dishID string) (*cart.Cart, error) {
	c, err := s.Get(ctx, sess)
	if err != nil {
		return nil, err
	}

	dish, err := s.menu.Get(ctx, category, dishID)
	if err != nil {
		return nil, err
	}

	c.Add(*dish)
	if err := s.carts.Save(ctx, sess.ID, c); err != nil {
		return nil, unavailable("save cart", err)
	}
	return c, nil
}

func (s *CartService) RemoveItem(ctx context.Context, sess *domain.Session, category domain.Category, dishID string) (*cart.Cart, error) {
	c, err := s.Get(ctx, sess)
	if err != nil {
		return nil, err
	}

	before := c.Quantity(category, dishID)
	c.Remove(domain.Dish{ID: dishID, Category: category})
	if before == 0 {
		return c, nil
	}

	if err := s.carts.Save(ctx, sess.ID, c); err != nil {
		return nil, unavailable("save cart", err)
	}
	return c, nil
}

func (s *CartService) Clear(ctx context.Context, sess *domain.Session) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	return unavailable("clear cart", s.carts.Clear(ctx, sess.ID))
}

var _ CartServiceInterface = (*CartService)(nil)
