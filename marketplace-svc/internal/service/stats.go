package service

import (
	"context"
	"time"

	"tiffinbox/marketplace-svc/internal/domain"
)

const topDishesLimit = 5

// StatsService combines the lifetime counters kept on the restaurant row with
// the daily rollups agg-svc maintains in Redis.
type StatsService struct {
	repo  Repository
	stats StatsReader
	now   func() time.Time
}

func NewStatsService(repo Repository, stats StatsReader) *StatsService {
	return &StatsService{repo: repo, stats: stats, now: time.Now}
}

var _ StatsServiceInterface = (*StatsService)(nil)

func (s *StatsService) RestaurantStats(ctx context.Context, actor *domain.User, restaurantID int) (*domain.RestaurantStats, error) {
	if !canManageRestaurant(actor, restaurantID) {
		return nil, ErrForbidden
	}
	rest, err := s.repo.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	out := &domain.RestaurantStats{
		RestaurantID: rest.ID,
		TotalOrders:  rest.TotalOrders,
		TotalRevenue: rest.TotalRevenue,
		TopDishes:    []domain.DishMetric{},
	}
	if s.stats == nil {
		return out, nil
	}

	today := s.now().UTC()
	top, err := s.stats.TopDishes(ctx, restaurantID, today, topDishesLimit)
	if err != nil {
		return nil, err
	}
	if top != nil {
		out.TopDishes = top
	}
	if out.TodayRevenue, err = s.stats.Revenue(ctx, restaurantID, today); err != nil {
		return nil, err
	}
	return out, nil
}
