package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"

	"github.com/fooddelivery/restaurant-api/internal/api/metrics"
	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RestaurantCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRestaurantCache(client, ttl), mr
}

func sampleRestaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{
			ID: 1, Name: "Pizza Palace", Phone: "555-0101", Rating: 4.5, Category: "Italian",
			Dishes: []domain.Dish{{ID: 1, Name: "Margherita", Price: 12.99, Category: "Pizza", RestaurantID: 1}},
		},
		{ID: 2, Name: "Sushi World", Rating: 4.8, Category: "Japanese", Dishes: []domain.Dish{}},
	}
}

func TestNewRestaurantCache_DefaultTTL(t *testing.T) {
	c := NewRestaurantCache(nil, 0)
	if c.ttl != defaultRestaurantTTL {
		t.Fatalf("expected default ttl, got %v", c.ttl)
	}
	c = NewRestaurantCache(nil, time.Minute)
	if c.ttl != time.Minute {
		t.Fatalf("expected configured ttl, got %v", c.ttl)
	}
}

func TestRestaurantCache_SetThenGet(t *testing.T) {
	cache, mr := newTestCache(t, 10*time.Minute)
	ctx := context.Background()

	if err := cache.Set(ctx, sampleRestaurants()); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !mr.Exists(restaurantListKey) {
		t.Fatalf("expected %q to be stored", restaurantListKey)
	}
	if ttl := mr.TTL(restaurantListKey); ttl != 10*time.Minute {
		t.Fatalf("expected ttl 10m after set, got %v", ttl)
	}

	hits := testutil.ToFloat64(metrics.RestaurantCacheTotal.WithLabelValues("hit"))
	got, ok, err := cache.Get(ctx)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if len(got) != 2 || got[0].Name != "Pizza Palace" || len(got[0].Dishes) != 1 || got[0].Dishes[0].Price != 12.99 {
		t.Fatalf("unexpected restaurants: %+v", got)
	}
	if d := testutil.ToFloat64(metrics.RestaurantCacheTotal.WithLabelValues("hit")) - hits; d != 1 {
		t.Fatalf("expected one hit recorded, got %v", d)
	}
}

func TestRestaurantCache_HitSlidesExpiry(t *testing.T) {
	cache, mr := newTestCache(t, 10*time.Minute)
	ctx := context.Background()

	if err := cache.Set(ctx, sampleRestaurants()); err != nil {
		t.Fatalf("set: %v", err)
	}

	mr.FastForward(8 * time.Minute)
	if ttl := mr.TTL(restaurantListKey); ttl != 2*time.Minute {
		t.Fatalf("expected 2m left before the hit, got %v", ttl)
	}
	if _, ok, err := cache.Get(ctx); err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if ttl := mr.TTL(restaurantListKey); ttl != 10*time.Minute {
		t.Fatalf("expected the hit to reset ttl to 10m, got %v", ttl)
	}

	// 16 minutes after Set, the entry survives only because of the hit.
	mr.FastForward(8 * time.Minute)
	if _, ok, err := cache.Get(ctx); err != nil || !ok {
		t.Fatalf("expected entry kept alive by the previous hit, got ok=%v err=%v", ok, err)
	}
}

func TestRestaurantCache_ExpiresWithoutHits(t *testing.T) {
	cache, mr := newTestCache(t, 10*time.Minute)
	ctx := context.Background()

	if err := cache.Set(ctx, sampleRestaurants()); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(10*time.Minute + time.Second)

	misses := testutil.ToFloat64(metrics.RestaurantCacheTotal.WithLabelValues("miss"))
	errs := testutil.ToFloat64(metrics.RestaurantCacheTotal.WithLabelValues("error"))
	got, ok, err := cache.Get(ctx)
	if err != nil || ok || got != nil {
		t.Fatalf("expected clean miss, got %v ok=%v err=%v", got, ok, err)
	}
	if d := testutil.ToFloat64(metrics.RestaurantCacheTotal.WithLabelValues("miss")) - misses; d != 1 {
		t.Fatalf("expected one miss recorded, got %v", d)
	}
	if d := testutil.ToFloat64(metrics.RestaurantCacheTotal.WithLabelValues("error")) - errs; d != 0 {
		t.Fatalf("a miss must not be recorded as an error, got %v", d)
	}
}

func TestRestaurantCache_Invalidate(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	if err := cache.Set(ctx, sampleRestaurants()); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := cache.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if mr.Exists(restaurantListKey) {
		t.Fatalf("expected %q to be deleted", restaurantListKey)
	}
	if _, ok, err := cache.Get(ctx); err != nil || ok {
		t.Fatalf("expected miss after invalidate, got ok=%v err=%v", ok, err)
	}

	// Invalidating an absent key is not an error.
	if err := cache.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate absent key: %v", err)
	}
}

func TestRestaurantCache_ServerError(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	mr.SetError("LOADING Redis is loading the dataset in memory")

	errs := testutil.ToFloat64(metrics.RestaurantCacheTotal.WithLabelValues("error"))
	if _, ok, err := cache.Get(context.Background()); err == nil || ok {
		t.Fatalf("expected error, got ok=%v err=%v", ok, err)
	}
	if d := testutil.ToFloat64(metrics.RestaurantCacheTotal.WithLabelValues("error")) - errs; d != 1 {
		t.Fatalf("expected one error recorded, got %v", d)
	}
}

func TestRestaurantCache_CorruptPayload(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	if err := mr.Set(restaurantListKey, "{not json"); err != nil {
		t.Fatalf("seed key: %v", err)
	}
	if _, ok, err := cache.Get(context.Background()); err == nil || ok {
		t.Fatalf("expected decode error, got ok=%v err=%v", ok, err)
	}
}

func TestDecodeRestaurants(t *testing.T) {
	raw := []byte(`[{"restaurant_id":1,"name":"Pizza Place","rating":8.5,"dishes":[{"dish_id":2,"restaurant_id":1,"price":12.99}]}]`)
	got, err := decodeRestaurants(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 || got[0].Name != "Pizza Place" {
		t.Fatalf("unexpected restaurants: %+v", got)
	}
	if len(got[0].Dishes) != 1 || got[0].Dishes[0].ID != 2 || got[0].Dishes[0].Price != 12.99 {
		t.Fatalf("dishes not decoded: %+v", got[0].Dishes)
	}
}
