package domain

import "errors"

// Authentication and authorization outcomes.
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("access forbidden")
	ErrUnknownRole    = errors.New("unknown role")
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrDishNotFound       = errors.New("dish not found")
	ErrOrderNotFound      = errors.New("order not found")

	ErrUsernameTaken = errors.New("username already exists")
	ErrIDMismatch    = errors.New("id in path does not match id in body")
)
