package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
	"github.com/fooddelivery/restaurant-api/internal/core/ports"
)

// newContext builds an echo context for a JSON request with optional :id.
func newContext(method, target, body, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

type stubAuthService struct {
	loginFn func(ctx context.Context, username, password string) (*ports.LoginResult, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, username, password)
}

type stubRestaurantService struct {
	listFn   func(ctx context.Context) ([]domain.Restaurant, error)
	getFn    func(ctx context.Context, id int64) (*domain.Restaurant, error)
	createFn func(ctx context.Context, in ports.RestaurantInput) (*domain.Restaurant, error)
	updateFn func(ctx context.Context, id int64, in ports.RestaurantInput) error
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubRestaurantService) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return s.listFn(ctx)
}

func (s *stubRestaurantService) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	return s.getFn(ctx, id)
}

func (s *stubRestaurantService) CreateRestaurant(ctx context.Context, in ports.RestaurantInput) (*domain.Restaurant, error) {
	return s.createFn(ctx, in)
}

func (s *stubRestaurantService) UpdateRestaurant(ctx context.Context, id int64, in ports.RestaurantInput) error {
	return s.updateFn(ctx, id, in)
}

func (s *stubRestaurantService) DeleteRestaurant(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubOrderService struct {
	listFn   func(ctx context.Context) ([]domain.Order, error)
	getFn    func(ctx context.Context, id int64) (*domain.Order, error)
	createFn func(ctx context.Context, in ports.OrderInput) (*domain.Order, error)
	updateFn func(ctx context.Context, id int64, in ports.OrderInput) error
	deleteFn func(ctx context.Context, id int64) error
	statsFn  func(ctx context.Context) (domain.OrderStats, error)
}

func (s *stubOrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.listFn(ctx)
}

func (s *stubOrderService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return s.getFn(ctx, id)
}

func (s *stubOrderService) CreateOrder(ctx context.Context, in ports.OrderInput) (*domain.Order, error) {
	return s.createFn(ctx, in)
}

func (s *stubOrderService) UpdateOrder(ctx context.Context, id int64, in ports.OrderInput) error {
	return s.updateFn(ctx, id, in)
}

func (s *stubOrderService) DeleteOrder(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubOrderService) OrderStats(ctx context.Context) (domain.OrderStats, error) {
	return s.statsFn(ctx)
}

type stubUserService struct {
	listFn     func(ctx context.Context) ([]domain.User, error)
	getFn      func(ctx context.Context, id int64) (*domain.User, error)
	createFn   func(ctx context.Context, in ports.UserInput) (*domain.User, error)
	updateFn   func(ctx context.Context, id int64, in ports.UserInput) error
	passwordFn func(ctx context.Context, id int64, password string) error
	deleteFn   func(ctx context.Context, id int64) error
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) CreateUser(ctx context.Context, in ports.UserInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}

func (s *stubUserService) UpdateUser(ctx context.Context, id int64, in ports.UserInput) error {
	return s.updateFn(ctx, id, in)
}

func (s *stubUserService) ChangePassword(ctx context.Context, id int64, password string) error {
	return s.passwordFn(ctx, id, password)
}

func (s *stubUserService) DeleteUser(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}
