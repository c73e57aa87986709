package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

type UserRepository struct {
	db     *mongo.Database
	col    *mongo.Collection
	roles  *mongo.Collection
	orders *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		db:     db,
		col:    db.Collection(collectionUsers),
		roles:  db.Collection(collectionRoles),
		orders: db.Collection(collectionOrders),
	}
}

type mongoUser struct {
	ID           int64  `bson:"_id"`
	FirstName    string `bson:"first_name"`
	LastName     string `bson:"last_name"`
	Username     string `bson:"username"`
	PasswordHash string `bson:"password_hash"`
	Address      string `bson:"address"`
	Phone        string `bson:"phone"`
	Email        string `bson:"email"`
	RoleID       int64  `bson:"role_id"`
}

func toMongoUser(u *domain.User) mongoUser {
	return mongoUser{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Address:      u.Address,
		Phone:        u.Phone,
		Email:        u.Email,
		RoleID:       u.RoleID,
	}
}

func (mu mongoUser) toDomain() domain.User {
	return domain.User{
		ID:           mu.ID,
		FirstName:    mu.FirstName,
		LastName:     mu.LastName,
		Username:     mu.Username,
		PasswordHash: mu.PasswordHash,
		Address:      mu.Address,
		Phone:        mu.Phone,
		Email:        mu.Email,
		RoleID:       mu.RoleID,
		Orders:       []domain.Order{},
	}
}

// List returns every user with the user's orders (without lines).
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, sortByID())
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	var docs []mongoUser
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	orders, err := findOrders(ctx, r.orders, bson.M{})
	if err != nil {
		return nil, err
	}
	byUser := make(map[int64][]domain.Order, len(docs))
	for _, o := range orders {
		byUser[o.UserID] = append(byUser[o.UserID], o)
	}

	users := make([]domain.User, 0, len(docs))
	for _, d := range docs {
		u := d.toDomain()
		if own := byUser[u.ID]; own != nil {
			u.Orders = own
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoUser
	if err := r.col.FindOne(ctx, byID(id)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	orders, err := findOrders(ctx, r.orders, bson.M{"user_id": id})
	if err != nil {
		return nil, err
	}
	u := doc.toDomain()
	u.Orders = orders
	return &u, nil
}

// FindCredential resolves a username to its stored digest and role name.
func (r *UserRepository) FindCredential(ctx context.Context, identity string) (*domain.Credential, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoUser
	if err := r.col.FindOne(ctx, bson.M{"username": identity}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}

	var rec domain.RoleRecord
	if err := r.roles.FindOne(ctx, byID(doc.RoleID)).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// A dangling role reference is an internal failure, not a not-found.
			return nil, fmt.Errorf("find credential role: user %d has no role %d", doc.ID, doc.RoleID)
		}
		return nil, fmt.Errorf("find credential role: %w", err)
	}
	role, err := domain.ParseRole(rec.Name)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", doc.ID, err)
	}

	return &domain.Credential{
		UserID:       doc.ID,
		Username:     doc.Username,
		PasswordHash: doc.PasswordHash,
		Role:         role,
	}, nil
}

func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ok, err := exists(ctx, r.col, byID(id))
	if err != nil {
		return false, fmt.Errorf("user exists: %w", err)
	}
	return ok, nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ok, err := exists(ctx, r.col, bson.M{"username": username})
	if err != nil {
		return false, fmt.Errorf("username exists: %w", err)
	}
	return ok, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collectionUsers)
	if err != nil {
		return err
	}
	u.ID = id
	if _, err := r.col.InsertOne(ctx, toMongoUser(u)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	if u.Orders == nil {
		u.Orders = []domain.Order{}
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"username":   u.Username,
		"address":    u.Address,
		"phone":      u.Phone,
		"email":      u.Email,
		"role_id":    u.RoleID,
	}
	if u.PasswordHash != "" {
		set["password_hash"] = u.PasswordHash
	}

	res, err := r.col.UpdateOne(ctx, byID(u.ID), bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, byID(id), bson.M{"$set": bson.M{"password_hash": hash}})
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete removes the lines of every order the user placed, those orders, and
// then the user.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ok, err := exists(ctx, r.col, byID(id))
	if err != nil {
		return fmt.Errorf("user exists: %w", err)
	}
	if !ok {
		return domain.ErrUserNotFound
	}

	orderIDs, err := idsOf(ctx, r.orders, bson.M{"user_id": id})
	if err != nil {
		return fmt.Errorf("collect user orders: %w", err)
	}
	if _, err := r.db.Collection(collectionOrderDishes).DeleteMany(ctx, bson.M{"order_id": bson.M{"$in": orderIDs}}); err != nil {
		return fmt.Errorf("delete user order lines: %w", err)
	}
	if _, err := r.orders.DeleteMany(ctx, bson.M{"user_id": id}); err != nil {
		return fmt.Errorf("delete user orders: %w", err)
	}
	res, err := r.col.DeleteOne(ctx, byID(id))
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
