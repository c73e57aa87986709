package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
	"github.com/fooddelivery/restaurant-api/internal/core/ports"
)

type DishService struct {
	repo        ports.DishRepository
	restaurants ports.RestaurantRepository
	cache       ports.RestaurantCache
	events      eventSink
	log         zerolog.Logger
}

func NewDishService(
	repo ports.DishRepository,
	restaurants ports.RestaurantRepository,
	cache ports.RestaurantCache,
	notifier ports.Notifier,
	log zerolog.Logger,
) *DishService {
	return &DishService{
		repo:        repo,
		restaurants: restaurants,
		cache:       cache,
		events:      newEventSink(notifier),
		log:         log,
	}
}

func (s *DishService) ListDishes(ctx context.Context) ([]domain.Dish, error) {
	return s.repo.List(ctx)
}

func (s *DishService) GetDish(ctx context.Context, id int64) (*domain.Dish, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DishService) CreateDish(ctx context.Context, in ports.DishInput) (*domain.Dish, error) {
	if err := s.checkRestaurant(ctx, in.RestaurantID); err != nil {
		return nil, err
	}

	d := &domain.Dish{
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Category:     in.Category,
		RestaurantID: in.RestaurantID,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	invalidateRestaurants(ctx, s.cache, s.log)
	s.events.emit(ctx, domain.EventDishAdded, d.ID, d.Name)

	s.log.Info().Int64("dish_id", d.ID).Int64("restaurant_id", d.RestaurantID).Msg("dish created")
	return d, nil
}

func (s *DishService) UpdateDish(ctx context.Context, id int64, in ports.DishInput) error {
	if err := s.checkRestaurant(ctx, in.RestaurantID); err != nil {
		return err
	}

	d := &domain.Dish{
		ID:           id,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Category:     in.Category,
		RestaurantID: in.RestaurantID,
	}
	if err := s.repo.Update(ctx, d); err != nil {
		return err
	}
	invalidateRestaurants(ctx, s.cache, s.log)
	s.events.emit(ctx, domain.EventDishUpdated, d.ID, d.Name)

	s.log.Info().Int64("dish_id", id).Msg("dish updated")
	return nil
}

func (s *DishService) DeleteDish(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidateRestaurants(ctx, s.cache, s.log)

	s.log.Info().Int64("dish_id", id).Msg("dish deleted")
	return nil
}

func (s *DishService) checkRestaurant(ctx context.Context, id int64) error {
	ok, err := s.restaurants.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: restaurant with ID %d does not exist", domain.ErrInvalidRequest, id)
	}
	return nil
}
