package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"restaurant-ordering/order-svc/internal/domain"
)

type MenuService struct {
	store DocumentStore
}

func NewMenuService(store DocumentStore) *MenuService {
	return &MenuService{store: store}
}

func validCategory(category domain.Category) error {
	if _, ok := domain.ParseCategory(string(category)); !ok {
		return ErrNotFound
	}
	return nil
}

func (s *MenuService) List(ctx context.Context, category domain.Category) ([]domain.Dish, error) {
	if err := validCategory(category); err != nil {
		return nil, err
	}

	docs, err := s.store.List(ctx, MenuCollection(category))
	if err != nil {
		return nil, unavailable("list menu", err)
	}

	dishes := make([]domain.Dish, 0, len(docs))
	for _, doc := range docs {
		var dish domain.Dish
		if err := doc.Decode(&dish); err != nil {
			continue
		}
		dish.ID = doc.ID
		dish.Category = category
		dishes = append(dishes, dish)
	}
	sort.SliceStable(dishes, func(i, j int) bool { return dishes[i].Name < dishes[j].Name })
	return dishes, nil
}

func (s *MenuService) Get(ctx context.Context, category domain.Category, dishID string) (*domain.Dish, error) {
	if err := validCategory(category); err != nil {
		return nil, err
	}

	doc, err := s.store.Get(ctx, MenuCollection(category), dishID)
	if err != nil {
		return nil, unavailable("get dish", err)
	}

	var dish domain.Dish
	if err := doc.Decode(&dish); err != nil {
		return nil, unavailable("decode dish", err)
	}
	dish.ID = doc.ID
	dish.Category = category
	return &dish, nil
}

func validateDish(dish *domain.Dish) error {
	dish.Name = strings.TrimSpace(dish.Name)
	if dish.Name == "" || dish.Price.IsNegative() {
		return ErrInvalidDish
	}
	return validCategory(dish.Category)
}

// Create stores a new dish. When dish.ID is empty the store assigns one.
func (s *MenuService) Create(ctx context.Context, sess *domain.Session, dish *domain.Dish) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if err := validateDish(dish); err != nil {
		return err
	}

	if dish.ID == "" {
		id, err := s.store.Add(ctx, MenuCollection(dish.Category), dish)
		if err != nil {
			return unavailable("create dish", err)
		}
		dish.ID = id
		return nil
	}

	err := s.store.Create(ctx, MenuCollection(dish.Category), dish.ID, dish)
	if errors.Is(err, domain.ErrAlreadyExists) {
		return ErrInvalidDish
	}
	return unavailable("create dish", err)
}

func (s *MenuService) Update(ctx context.Context, sess *domain.Session, dish *domain.Dish) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if err := validateDish(dish); err != nil {
		return err
	}

	current, err := s.Get(ctx, dish.Category, dish.ID)
	if err != nil {
		return err
	}
	if dish.ImageURL == "" {
		dish.ImageURL = current.ImageURL
	}

	return unavailable("update dish", s.store.Set(ctx, MenuCollection(dish.Category), dish.ID, dish, false))
}

func (s *MenuService) Delete(ctx context.Context, sess *domain.Session, category domain.Category, dishID string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if err := validCategory(category); err != nil {
		return err
	}
	return unavailable("delete dish", s.store.Delete(ctx, MenuCollection(category), dishID))
}

func (s *MenuService) UpdateImage(ctx context.Context, sess *domain.Session, category domain.Category, dishID, imageURL string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if _, err := s.Get(ctx, category, dishID); err != nil {
		return err
	}
	patch := map[string]any{"image_url": imageURL}
	return unavailable("update dish image", s.store.Set(ctx, MenuCollection(category), dishID, patch, true))
}

var _ MenuServiceInterface = (*MenuService)(nil)
