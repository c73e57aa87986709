package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userSummaryResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expires_at"`
	User      userSummaryResponse `json:"user"`
}

type meResponse struct {
	Subject string `json:"sub"`
	Role    string `json:"role"`
}

// --- Restaurants ---

type restaurantCreateRequest struct {
	Name     string   `json:"name"     validate:"required,max=255"`
	Address  string   `json:"address"  validate:"max=255"`
	Phone    string   `json:"phone"    validate:"required,max=15,phone"`
	Rating   *float64 `json:"rating"   validate:"required,gte=0,lte=10"`
	Category string   `json:"category" validate:"required,max=100"`
}

type restaurantUpdateRequest struct {
	RestaurantID int64    `json:"restaurant_id" validate:"required"`
	Name         string   `json:"name"          validate:"required,max=255"`
	Address      string   `json:"address"       validate:"required,max=255"`
	Phone        string   `json:"phone"         validate:"required,max=15,phone"`
	Rating       *float64 `json:"rating"        validate:"required,gte=0,lte=10"`
	Category     string   `json:"category"      validate:"required,max=100"`
}

type restaurantResponse struct {
	RestaurantID int64          `json:"restaurant_id"`
	Name         string         `json:"name"`
	Address      string         `json:"address"`
	Phone        string         `json:"phone"`
	Rating       float64        `json:"rating"`
	Category     string         `json:"category"`
	Dishes       []dishResponse `json:"dishes"`
}

// --- Dishes ---

type dishRequest struct {
	DishID       int64   `json:"dish_id"`
	Name         string  `json:"name"          validate:"required,max=255"`
	Description  string  `json:"description"   validate:"required,max=500"`
	Price        float64 `json:"price"         validate:"gte=0"`
	Category     string  `json:"category"      validate:"required,max=100"`
	RestaurantID int64   `json:"restaurant_id" validate:"required"`
}

type dishResponse struct {
	DishID       int64   `json:"dish_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	RestaurantID int64   `json:"restaurant_id"`
}

// --- Orders ---

type orderDetailRequest struct {
	DishID   int64 `json:"dish_id"  validate:"required"`
	Quantity int   `json:"quantity" validate:"required,min=1"`
}

type orderRequest struct {
	OrderID         int64                `json:"order_id"`
	UserID          int64                `json:"user_id"          validate:"required"`
	RestaurantID    int64                `json:"restaurant_id"    validate:"required"`
	OrderDate       time.Time            `json:"order_date"       validate:"required"`
	Status          string               `json:"status"           validate:"max=50"`
	DeliveryAddress string               `json:"delivery_address" validate:"required,max=255"`
	OrderDetails    []orderDetailRequest `json:"order_details"    validate:"required,min=1,unique=DishID,dive"`
}

type orderDetailResponse struct {
	DishID   int64 `json:"dish_id"`
	Quantity int   `json:"quantity"`
}

type orderResponse struct {
	OrderID         int64                 `json:"order_id"`
	UserID          int64                 `json:"user_id"`
	RestaurantID    int64                 `json:"restaurant_id"`
	OrderDate       time.Time             `json:"order_date"`
	DeliveryAddress string                `json:"delivery_address"`
	Status          string                `json:"status"`
	OrderDetails    []orderDetailResponse `json:"order_details"`
}

type orderSummaryResponse struct {
	OrderID         int64     `json:"order_id"`
	RestaurantID    int64     `json:"restaurant_id"`
	OrderDate       time.Time `json:"order_date"`
	DeliveryAddress string    `json:"delivery_address"`
	Status          string    `json:"status"`
}

type orderStatsResponse struct {
	TotalOrders     int64 `json:"total_orders"`
	CompletedOrders int64 `json:"completed_orders"`
	PendingOrders   int64 `json:"pending_orders"`
}

// --- Roles ---

type roleResponse struct {
	RoleID int64  `json:"role_id"`
	Name   string `json:"name"`
}

// --- Users ---

type userCreateRequest struct {
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name"  validate:"required,max=255"`
	Username  string `json:"username"   validate:"required,max=255"`
	Password  string `json:"password"   validate:"required,min=6"`
	Address   string `json:"address"    validate:"max=255"`
	Phone     string `json:"phone"      validate:"required,max=15,phone"`
	Email     string `json:"email"      validate:"required,max=100,email"`
	RoleID    int64  `json:"role_id"    validate:"required"`
}

type userUpdateRequest struct {
	UserID    int64  `json:"user_id"    validate:"required"`
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name"  validate:"required,max=255"`
	Username  string `json:"username"   validate:"required,max=255"`
	Password  string `json:"password"   validate:"omitempty,min=6"`
	Address   string `json:"address"    validate:"max=255"`
	Phone     string `json:"phone"      validate:"required,max=15,phone"`
	Email     string `json:"email"      validate:"required,max=100,email"`
	RoleID    int64  `json:"role_id"    validate:"required"`
}

type userResponse struct {
	UserID    int64                  `json:"user_id"`
	FirstName string                 `json:"first_name"`
	LastName  string                 `json:"last_name"`
	Username  string                 `json:"username"`
	Address   string                 `json:"address"`
	Phone     string                 `json:"phone"`
	Email     string                 `json:"email"`
	RoleID    int64                  `json:"role_id"`
	Orders    []orderSummaryResponse `json:"orders"`
}
