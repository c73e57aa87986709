package handler

import (
	"github.com/fooddelivery/restaurant-api/internal/core/domain"
	"github.com/fooddelivery/restaurant-api/internal/core/ports"
)

func toRestaurantResponse(r domain.Restaurant) restaurantResponse {
	dishes := make([]dishResponse, 0, len(r.Dishes))
	for _, d := range r.Dishes {
		dishes = append(dishes, toDishResponse(d))
	}
	return restaurantResponse{
		RestaurantID: r.ID,
		Name:         r.Name,
		Address:      r.Address,
		Phone:        r.Phone,
		Rating:       r.Rating,
		Category:     r.Category,
		Dishes:       dishes,
	}
}

func toDishResponse(d domain.Dish) dishResponse {
	return dishResponse{
		DishID:       d.ID,
		Name:         d.Name,
		Description:  d.Description,
		Price:        d.Price,
		Category:     d.Category,
		RestaurantID: d.RestaurantID,
	}
}

func toOrderResponse(o domain.Order) orderResponse {
	details := make([]orderDetailResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		details = append(details, orderDetailResponse{DishID: l.DishID, Quantity: l.Quantity})
	}
	return orderResponse{
		OrderID:         o.ID,
		UserID:          o.UserID,
		RestaurantID:    o.RestaurantID,
		OrderDate:       o.OrderDate,
		DeliveryAddress: o.DeliveryAddress,
		Status:          o.Status,
		OrderDetails:    details,
	}
}

// toUserResponse never carries the password hash.
func toUserResponse(u domain.User) userResponse {
	orders := make([]orderSummaryResponse, 0, len(u.Orders))
	for _, o := range u.Orders {
		orders = append(orders, orderSummaryResponse{
			OrderID:         o.ID,
			RestaurantID:    o.RestaurantID,
			OrderDate:       o.OrderDate,
			DeliveryAddress: o.DeliveryAddress,
			Status:          o.Status,
		})
	}
	return userResponse{
		UserID:    u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Address:   u.Address,
		Phone:     u.Phone,
		Email:     u.Email,
		RoleID:    u.RoleID,
		Orders:    orders,
	}
}

func toRestaurantInput(name, address, phone string, rating *float64, category string) ports.RestaurantInput {
	in := ports.RestaurantInput{Name: name, Address: address, Phone: phone, Category: category}
	if rating != nil {
		in.Rating = *rating
	}
	return in
}

func toOrderInput(req orderRequest) ports.OrderInput {
	lines := make([]ports.OrderLineInput, 0, len(req.OrderDetails))
	for _, d := range req.OrderDetails {
		lines = append(lines, ports.OrderLineInput{DishID: d.DishID, Quantity: d.Quantity})
	}
	return ports.OrderInput{
		UserID:          req.UserID,
		RestaurantID:    req.RestaurantID,
		OrderDate:       req.OrderDate,
		Status:          req.Status,
		DeliveryAddress: req.DeliveryAddress,
		Lines:           lines,
	}
}

func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}
