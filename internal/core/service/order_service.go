package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
	"github.com/fooddelivery/restaurant-api/internal/core/ports"
)

type OrderService struct {
	repo        ports.OrderRepository
	users       ports.UserRepository
	restaurants ports.RestaurantRepository
	dishes      ports.DishRepository
	events      eventSink
	log         zerolog.Logger
}

func NewOrderService(
	repo ports.OrderRepository,
	users ports.UserRepository,
	restaurants ports.RestaurantRepository,
	dishes ports.DishRepository,
	notifier ports.Notifier,
	log zerolog.Logger,
) *OrderService {
	return &OrderService{
		repo:        repo,
		users:       users,
		restaurants: restaurants,
		dishes:      dishes,
		events:      newEventSink(notifier),
		log:         log,
	}
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *OrderService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrderService) OrderStats(ctx context.Context) (domain.OrderStats, error) {
	return s.repo.Stats(ctx)
}

func (s *OrderService) CreateOrder(ctx context.Context, in ports.OrderInput) (*domain.Order, error) {
	o, err := s.buildOrder(ctx, 0, in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	s.events.emit(ctx, domain.EventOrderAdded, o.ID, o.Status)

	s.log.Info().
		Int64("order_id", o.ID).
		Int64("user_id", o.UserID).
		Int64("restaurant_id", o.RestaurantID).
		Int("lines", len(o.Lines)).
		Msg("order created")
	return o, nil
}

// UpdateOrder rewrites the order and replaces its lines with in.Lines.
func (s *OrderService) UpdateOrder(ctx context.Context, id int64, in ports.OrderInput) error {
	o, err := s.buildOrder(ctx, id, in)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, o); err != nil {
		return err
	}
	s.events.emit(ctx, domain.EventOrderUpdated, o.ID, o.Status)

	s.log.Info().Int64("order_id", id).Str("status", o.Status).Msg("order updated")
	return nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("order_id", id).Msg("order deleted")
	return nil
}

// buildOrder checks every reference in the input and returns the order to store.
func (s *OrderService) buildOrder(ctx context.Context, id int64, in ports.OrderInput) (*domain.Order, error) {
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: an order needs at least one dish", domain.ErrInvalidRequest)
	}

	ok, err := s.users.Exists(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: user with ID %d does not exist", domain.ErrInvalidRequest, in.UserID)
	}

	ok, err = s.restaurants.Exists(ctx, in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: restaurant with ID %d does not exist", domain.ErrInvalidRequest, in.RestaurantID)
	}

	requested := make([]int64, 0, len(in.Lines))
	seen := make(map[int64]bool, len(in.Lines))
	lines := make([]domain.OrderLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		if seen[l.DishID] {
			return nil, fmt.Errorf("%w: dish %d appears more than once", domain.ErrInvalidRequest, l.DishID)
		}
		if l.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity for dish %d must be at least 1", domain.ErrInvalidRequest, l.DishID)
		}
		seen[l.DishID] = true
		requested = append(requested, l.DishID)
		lines = append(lines, domain.OrderLine{OrderID: id, DishID: l.DishID, Quantity: l.Quantity})
	}

	found, err := s.dishes.ExistingIDs(ctx, requested)
	if err != nil {
		return nil, err
	}
	if missing := missingIDs(requested, found); len(missing) > 0 {
		return nil, fmt.Errorf("%w: dishes with IDs %s do not exist", domain.ErrInvalidRequest, joinIDs(missing))
	}

	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = domain.OrderStatusPending
	}

	return &domain.Order{
		ID:              id,
		UserID:          in.UserID,
		RestaurantID:    in.RestaurantID,
		OrderDate:       in.OrderDate.UTC(),
		DeliveryAddress: in.DeliveryAddress,
		Status:          status,
		Lines:           lines,
	}, nil
}

// missingIDs returns the members of requested absent from found, in request order.
func missingIDs(requested, found []int64) []int64 {
	have := make(map[int64]bool, len(found))
	for _, id := range found {
		have[id] = true
	}
	var missing []int64
	for _, id := range requested {
		if !have[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ", ")
}
