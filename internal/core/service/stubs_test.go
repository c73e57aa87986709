package service

import (
	"context"
	"sort"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubRestaurantRepo struct {
	items     map[int64]domain.Restaurant
	nextID    int64
	listCalls int
	err       error
}

func newStubRestaurantRepo(rs ...domain.Restaurant) *stubRestaurantRepo {
	r := &stubRestaurantRepo{items: make(map[int64]domain.Restaurant)}
	for _, x := range rs {
		r.items[x.ID] = x
		if x.ID > r.nextID {
			r.nextID = x.ID
		}
	}
	return r
}

func (r *stubRestaurantRepo) List(context.Context) ([]domain.Restaurant, error) {
	r.listCalls++
	if r.err != nil {
		return nil, r.err
	}
	out := make([]domain.Restaurant, 0, len(r.items))
	for _, x := range r.items {
		out = append(out, x)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubRestaurantRepo) FindByID(_ context.Context, id int64) (*domain.Restaurant, error) {
	x, ok := r.items[id]
	if !ok {
		return nil, domain.ErrRestaurantNotFound
	}
	return &x, nil
}

func (r *stubRestaurantRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.items[id]
	return ok, r.err
}

func (r *stubRestaurantRepo) Create(_ context.Context, x *domain.Restaurant) error {
	if r.err != nil {
		return r.err
	}
	r.nextID++
	x.ID = r.nextID
	r.items[x.ID] = *x
	return nil
}

func (r *stubRestaurantRepo) Update(_ context.Context, x *domain.Restaurant) error {
	if _, ok := r.items[x.ID]; !ok {
		return domain.ErrRestaurantNotFound
	}
	r.items[x.ID] = *x
	return nil
}

func (r *stubRestaurantRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrRestaurantNotFound
	}
	delete(r.items, id)
	return nil
}

type stubDishRepo struct {
	items  map[int64]domain.Dish
	nextID int64
}

func newStubDishRepo(ds ...domain.Dish) *stubDishRepo {
	r := &stubDishRepo{items: make(map[int64]domain.Dish)}
	for _, d := range ds {
		r.items[d.ID] = d
		if d.ID > r.nextID {
			r.nextID = d.ID
		}
	}
	return r
}

func (r *stubDishRepo) List(context.Context) ([]domain.Dish, error) {
	out := make([]domain.Dish, 0, len(r.items))
	for _, d := range r.items {
		out = append(out, d)
	}
	return out, nil
}

func (r *stubDishRepo) FindByID(_ context.Context, id int64) (*domain.Dish, error) {
	d, ok := r.items[id]
	if !ok {
		return nil, domain.ErrDishNotFound
	}
	return &d, nil
}

func (r *stubDishRepo) ExistingIDs(_ context.Context, ids []int64) ([]int64, error) {
	var out []int64
	for _, id := range ids {
		if _, ok := r.items[id]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

func (r *stubDishRepo) Create(_ context.Context, d *domain.Dish) error {
	r.nextID++
	d.ID = r.nextID
	r.items[d.ID] = *d
	return nil
}

func (r *stubDishRepo) Update(_ context.Context, d *domain.Dish) error {
	if _, ok := r.items[d.ID]; !ok {
		return domain.ErrDishNotFound
	}
	r.items[d.ID] = *d
	return nil
}

func (r *stubDishRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrDishNotFound
	}
	delete(r.items, id)
	return nil
}

type stubOrderRepo struct {
	items  map[int64]domain.Order
	nextID int64
	stats  domain.OrderStats
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{items: make(map[int64]domain.Order)}
}

func (r *stubOrderRepo) List(context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(r.items))
	for _, o := range r.items {
		out = append(out, o)
	}
	return out, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id int64) (*domain.Order, error) {
	o, ok := r.items[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return &o, nil
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) error {
	r.nextID++
	o.ID = r.nextID
	for i := range o.Lines {
		o.Lines[i].OrderID = o.ID
	}
	r.items[o.ID] = *o
	return nil
}

func (r *stubOrderRepo) Update(_ context.Context, o *domain.Order) error {
	if _, ok := r.items[o.ID]; !ok {
		return domain.ErrOrderNotFound
	}
	r.items[o.ID] = *o
	return nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *stubOrderRepo) Stats(context.Context) (domain.OrderStats, error) {
	return r.stats, nil
}

type stubUserRepo struct {
	items  map[int64]domain.User
	nextID int64
}

func newStubUserRepo(us ...domain.User) *stubUserRepo {
	r := &stubUserRepo{items: make(map[int64]domain.User)}
	for _, u := range us {
		r.items[u.ID] = u
		if u.ID > r.nextID {
			r.nextID = u.ID
		}
	}
	return r
}

func (r *stubUserRepo) List(context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.items))
	for _, u := range r.items {
		out = append(out, u)
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.items[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *stubUserRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.items[id]
	return ok, nil
}

func (r *stubUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range r.items {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	r.nextID++
	u.ID = r.nextID
	r.items[u.ID] = *u
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	cur, ok := r.items[u.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if u.PasswordHash == "" {
		u.PasswordHash = cur.PasswordHash
	}
	r.items[u.ID] = *u
	return nil
}

func (r *stubUserRepo) UpdatePasswordHash(_ context.Context, id int64, hash string) error {
	u, ok := r.items[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	r.items[id] = u
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.items, id)
	return nil
}

type stubRoleRepo struct{}

func (stubRoleRepo) List(context.Context) ([]domain.RoleRecord, error) {
	return []domain.RoleRecord{{ID: 1, Name: "Admin"}, {ID: 2, Name: "User"}}, nil
}

func (s stubRoleRepo) FindByID(ctx context.Context, id int64) (*domain.RoleRecord, error) {
	roles, _ := s.List(ctx)
	for _, r := range roles {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

// ---------------------------------------------------------------------------
// Cache and notifier stubs
// ---------------------------------------------------------------------------

type stubCache struct {
	data          []domain.Restaurant
	present       bool
	getErr        error
	setErr        error
	invalidateErr error
	sets          int
	invalidations int
}

func (c *stubCache) Get(context.Context) ([]domain.Restaurant, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.data, c.present, nil
}

func (c *stubCache) Set(_ context.Context, rs []domain.Restaurant) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.data, c.present = rs, true
	return nil
}

func (c *stubCache) Invalidate(context.Context) error {
	c.invalidations++
	c.data, c.present = nil, false
	return c.invalidateErr
}

type stubNotifier struct {
	events []domain.Event
}

func (n *stubNotifier) Notify(_ context.Context, e domain.Event) {
	n.events = append(n.events, e)
}
