package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
	"github.com/fooddelivery/restaurant-api/internal/core/ports"
)

// RestaurantService serves restaurants, reading the full listing through the cache.
type RestaurantService struct {
	repo  ports.RestaurantRepository
	cache ports.RestaurantCache
	log   zerolog.Logger
}

func NewRestaurantService(repo ports.RestaurantRepository, cache ports.RestaurantCache, log zerolog.Logger) *RestaurantService {
	return &RestaurantService{repo: repo, cache: cache, log: log}
}

// ListRestaurants prefers the cached listing. Cache failures are logged and
// the store answers instead.
func (s *RestaurantService) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Msg("restaurant cache read failed, using store")
		case ok:
			return cached, nil
		}
	}

	restaurants, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, restaurants); err != nil {
			s.log.Warn().Err(err).Msg("restaurant cache write failed")
		}
	}
	return restaurants, nil
}

func (s *RestaurantService) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RestaurantService) CreateRestaurant(ctx context.Context, in ports.RestaurantInput) (*domain.Restaurant, error) {
	r := &domain.Restaurant{
		Name:     in.Name,
		Address:  in.Address,
		Phone:    in.Phone,
		Rating:   in.Rating,
		Category: in.Category,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	s.log.Info().Int64("restaurant_id", r.ID).Str("name", r.Name).Msg("restaurant created")
	return r, nil
}

func (s *RestaurantService) UpdateRestaurant(ctx context.Context, id int64, in ports.RestaurantInput) error {
	r := &domain.Restaurant{
		ID:       id,
		Name:     in.Name,
		Address:  in.Address,
		Phone:    in.Phone,
		Rating:   in.Rating,
		Category: in.Category,
	}
	if err := s.repo.Update(ctx, r); err != nil {
		return err
	}
	s.invalidate(ctx)

	s.log.Info().Int64("restaurant_id", id).Msg("restaurant updated")
	return nil
}

func (s *RestaurantService) DeleteRestaurant(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)

	s.log.Info().Int64("restaurant_id", id).Msg("restaurant deleted")
	return nil
}

func (s *RestaurantService) invalidate(ctx context.Context) {
	invalidateRestaurants(ctx, s.cache, s.log)
}

func invalidateRestaurants(ctx context.Context, cache ports.RestaurantCache, log zerolog.Logger) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("restaurant cache invalidation failed")
	}
}
