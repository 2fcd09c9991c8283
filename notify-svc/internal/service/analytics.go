package service

import (
	"context"
	"time"

	"restaurant-ordering/notify-svc/internal/domain"
)

type AnalyticsService struct {
	store PopularityStore
	now   func() time.Time
}

func NewAnalyticsService(store PopularityStore) *AnalyticsService {
	return &AnalyticsService{store: store, now: time.Now}
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 50 {
		return 10
	}
	return limit
}

// TopToday ranks dishes by quantity ordered since midnight UTC.
func (s *AnalyticsService) TopToday(ctx context.Context, limit int) ([]domain.DishPopularity, error) {
	today := s.now().UTC()
	return s.store.Top(ctx, &today, clampLimit(limit))
}

func (s *AnalyticsService) TopAllTime(ctx context.Context, limit int) ([]domain.DishPopularity, error) {
	return s.store.Top(ctx, nil, clampLimit(limit))
}

var _ AnalyticsServiceInterface = (*AnalyticsService)(nil)
