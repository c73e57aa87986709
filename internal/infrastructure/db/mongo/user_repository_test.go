package mongo

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

func TestUserRepository_Delete(t *testing.T) {
	mt := newMockT(t)

	mt.Run("order lines, orders, then the user", func(mt *mtest.T) {
		mt.AddMockResponses(
			countReply(1),
			idsReply(1, 4),
			writeReply(3),
			writeReply(2),
			writeReply(1),
		)

		if err := NewUserRepository(mt.DB).Delete(context.Background(), 2); err != nil {
			mt.Fatalf("delete: %v", err)
		}

		cmds := startedCommands(mt)
		assertSequence(mt.T, cmds,
			"aggregate users",
			"find orders",
			"delete order_dishes",
			"delete orders",
			"delete users",
		)
		if got := inIDs(mt.T, cmds[2].filter, "order_id"); !equalIDs(got, []int64{1, 4}) {
			mt.Fatalf("unexpected order ids in line filter: %v", got)
		}
		if id, ok := cmds[3].filter.Lookup("user_id").Int64OK(); !ok || id != 2 {
			mt.Fatalf("unexpected order filter: %s", cmds[3].filter)
		}
	})

	mt.Run("user without orders", func(mt *mtest.T) {
		mt.AddMockResponses(
			countReply(1),
			idsReply(),
			writeReply(0),
			writeReply(0),
			writeReply(1),
		)

		if err := NewUserRepository(mt.DB).Delete(context.Background(), 7); err != nil {
			mt.Fatalf("delete: %v", err)
		}

		cmds := startedCommands(mt)
		assertSequence(mt.T, cmds,
			"aggregate users",
			"find orders",
			"delete order_dishes",
			"delete orders",
			"delete users",
		)
		if got := inIDs(mt.T, cmds[2].filter, "order_id"); len(got) != 0 {
			mt.Fatalf("expected empty order ids, got %v", got)
		}
	})

	mt.Run("unknown user", func(mt *mtest.T) {
		mt.AddMockResponses(countReply(0))

		err := NewUserRepository(mt.DB).Delete(context.Background(), 50)
		if !errors.Is(err, domain.ErrUserNotFound) {
			mt.Fatalf("expected ErrUserNotFound, got %v", err)
		}
		assertSequence(mt.T, startedCommands(mt), "aggregate users")
	})
}

func TestUserRepository_FindCredential(t *testing.T) {
	mt := newMockT(t)
	johndoe := bson.D{
		{Key: "_id", Value: int64(2)},
		{Key: "username", Value: "johndoe"},
		{Key: "password_hash", Value: "CxTVAaWURCoBxoWVQbyz6BZNGD0yk3uFGDVEL2nVyU4="},
		{Key: "role_id", Value: int64(2)},
	}

	mt.Run("joins the role", func(mt *mtest.T) {
		mt.AddMockResponses(
			docsReply(johndoe),
			docsReply(bson.D{{Key: "_id", Value: int64(2)}, {Key: "name", Value: "User"}}),
		)

		cred, err := NewUserRepository(mt.DB).FindCredential(context.Background(), "johndoe")
		if err != nil {
			mt.Fatalf("find credential: %v", err)
		}
		if cred.UserID != 2 || cred.Role != domain.RoleUser || cred.PasswordHash == "" {
			mt.Fatalf("unexpected credential: %+v", cred)
		}
	})

	mt.Run("unknown username", func(mt *mtest.T) {
		mt.AddMockResponses(docsReply())

		_, err := NewUserRepository(mt.DB).FindCredential(context.Background(), "nobody")
		if !errors.Is(err, domain.ErrUserNotFound) {
			mt.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	mt.Run("dangling role is an internal failure", func(mt *mtest.T) {
		mt.AddMockResponses(docsReply(johndoe), docsReply())

		_, err := NewUserRepository(mt.DB).FindCredential(context.Background(), "johndoe")
		if err == nil {
			mt.Fatalf("expected an error for a missing role record")
		}
		for _, sentinel := range []error{domain.ErrRoleNotFound, domain.ErrUserNotFound, domain.ErrUnauthorized} {
			if errors.Is(err, sentinel) {
				mt.Fatalf("missing role must not map to %v, got %v", sentinel, err)
			}
		}
	})
}
