package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
	"github.com/fooddelivery/restaurant-api/internal/core/ports"
)

func TestRestaurantHandler_List(t *testing.T) {
	h := NewRestaurantHandler(&stubRestaurantService{
		listFn: func(context.Context) ([]domain.Restaurant, error) {
			return []domain.Restaurant{
				{ID: 1, Name: "Pizza Palace", Rating: 4.5, Dishes: []domain.Dish{{ID: 1, Name: "Margherita", Price: 12.99, RestaurantID: 1}}},
				{ID: 2, Name: "Sushi World"},
			}, nil
		},
	})

	c, rec := newContext(http.MethodGet, "/api/restaurants", "", "")
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body []restaurantResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 2 || len(body[0].Dishes) != 1 || body[0].Dishes[0].Name != "Margherita" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body[1].Dishes == nil {
		t.Fatalf("dishes must encode as an empty array, not null")
	}
}

func TestRestaurantHandler_Get_InvalidID(t *testing.T) {
	h := NewRestaurantHandler(&stubRestaurantService{})
	for _, id := range []string{"abc", "0", "-3"} {
		c, _ := newContext(http.MethodGet, "/api/restaurants/"+id, "", id)
		if err := h.Get(c); !errors.Is(err, domain.ErrInvalidRequest) {
			t.Fatalf("id %q: expected ErrInvalidRequest, got %v", id, err)
		}
	}
}

func TestRestaurantHandler_Get_NotFound(t *testing.T) {
	h := NewRestaurantHandler(&stubRestaurantService{
		getFn: func(context.Context, int64) (*domain.Restaurant, error) {
			return nil, domain.ErrRestaurantNotFound
		},
	})
	c, _ := newContext(http.MethodGet, "/api/restaurants/99", "", "99")
	if err := h.Get(c); !errors.Is(err, domain.ErrRestaurantNotFound) {
		t.Fatalf("expected ErrRestaurantNotFound, got %v", err)
	}
}

func TestRestaurantHandler_Create(t *testing.T) {
	h := NewRestaurantHandler(&stubRestaurantService{
		createFn: func(_ context.Context, in ports.RestaurantInput) (*domain.Restaurant, error) {
			if in.Name != "Taco Town" || in.Rating != 0 || in.Phone != "555-0101" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Restaurant{ID: 8, Name: in.Name, Phone: in.Phone, Rating: in.Rating, Category: in.Category}, nil
		},
	})

	c, rec := newContext(http.MethodPost, "/api/restaurants",
		`{"name":"Taco Town","phone":"555-0101","rating":0,"category":"Mexican"}`, "")
	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/api/restaurants/8" {
		t.Fatalf("unexpected Location %q", loc)
	}
}

func TestRestaurantHandler_Create_Validation(t *testing.T) {
	h := NewRestaurantHandler(&stubRestaurantService{
		createFn: func(context.Context, ports.RestaurantInput) (*domain.Restaurant, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	})

	cases := map[string]struct {
		body string
		want string
	}{
		"missing rating": {`{"name":"A","phone":"1","category":"c"}`, "rating is required"},
		"rating above 10": {`{"name":"A","phone":"1","rating":11,"category":"c"}`, "rating must be at most 10"},
		"bad phone":       {`{"name":"A","phone":"call me","rating":1,"category":"c"}`, "phone may only contain"},
		"long name":       {`{"name":"` + strings.Repeat("x", 256) + `","phone":"1","rating":1,"category":"c"}`, "name must be at most 255"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newContext(http.MethodPost, "/api/restaurants", tc.body, "")
			err := h.Create(c)
			if !errors.Is(err, domain.ErrInvalidRequest) {
				t.Fatalf("expected ErrInvalidRequest, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q in %q", tc.want, err.Error())
			}
		})
	}
}

func TestRestaurantHandler_Update_IDMismatch(t *testing.T) {
	h := NewRestaurantHandler(&stubRestaurantService{
		updateFn: func(context.Context, int64, ports.RestaurantInput) error {
			t.Fatalf("service must not be called")
			return nil
		},
	})
	c, _ := newContext(http.MethodPut, "/api/restaurants/1",
		`{"restaurant_id":2,"name":"A","address":"B","phone":"1","rating":3,"category":"c"}`, "1")
	if err := h.Update(c); !errors.Is(err, domain.ErrIDMismatch) {
		t.Fatalf("expected ErrIDMismatch, got %v", err)
	}
}

func TestRestaurantHandler_Update(t *testing.T) {
	var gotID int64
	h := NewRestaurantHandler(&stubRestaurantService{
		updateFn: func(_ context.Context, id int64, in ports.RestaurantInput) error {
			gotID = id
			if in.Address != "B" || in.Rating != 3 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return nil
		},
	})
	c, rec := newContext(http.MethodPut, "/api/restaurants/1",
		`{"restaurant_id":1,"name":"A","address":"B","phone":"1","rating":3,"category":"c"}`, "1")
	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent || gotID != 1 {
		t.Fatalf("expected 204 for id 1, got %d for id %d", rec.Code, gotID)
	}
}

func TestRestaurantHandler_Delete(t *testing.T) {
	h := NewRestaurantHandler(&stubRestaurantService{
		deleteFn: func(_ context.Context, id int64) error {
			if id != 4 {
				return domain.ErrRestaurantNotFound
			}
			return nil
		},
	})
	c, rec := newContext(http.MethodDelete, "/api/restaurants/4", "", "4")
	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
