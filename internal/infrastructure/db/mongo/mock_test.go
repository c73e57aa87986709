package mongo

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// newMockT returns an mtest harness backed by a mock deployment; no server is needed.
func newMockT(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

// countReply answers the aggregate behind CountDocuments.
func countReply(n int64) bson.D {
	if n == 0 {
		return mtest.CreateCursorResponse(0, "food_delivery.count", mtest.FirstBatch)
	}
	return mtest.CreateCursorResponse(0, "food_delivery.count", mtest.FirstBatch, bson.D{{Key: "n", Value: n}})
}

// docsReply answers a find with a single, exhausted batch.
func docsReply(docs ...bson.D) bson.D {
	return mtest.CreateCursorResponse(0, "food_delivery.find", mtest.FirstBatch, docs...)
}

func idsReply(ids ...int64) bson.D {
	docs := make([]bson.D, len(ids))
	for i, id := range ids {
		docs[i] = bson.D{{Key: "_id", Value: id}}
	}
	return docsReply(docs...)
}

func writeReply(n int32) bson.D {
	return mtest.CreateSuccessResponse(bson.E{Key: "n", Value: n}, bson.E{Key: "nModified", Value: n})
}

// command is one started command as seen by the driver's monitor.
type command struct {
	name   string
	coll   string
	filter bson.Raw
}

func (c command) String() string { return c.name + " " + c.coll }

func startedCommands(mt *mtest.T) []command {
	var out []command
	for _, evt := range mt.GetAllStartedEvents() {
		c := command{name: evt.CommandName}
		if v, err := evt.Command.LookupErr(evt.CommandName); err == nil {
			c.coll, _ = v.StringValueOK()
		}
		if q, err := evt.Command.LookupErr("deletes", "0", "q"); err == nil {
			c.filter, _ = q.DocumentOK()
		}
		out = append(out, c)
	}
	return out
}

// assertSequence checks the "<command> <collection>" pairs in issue order.
func assertSequence(t *testing.T, cmds []command, want ...string) {
	t.Helper()
	got := make([]string, len(cmds))
	for i, c := range cmds {
		got[i] = c.String()
	}
	if strings.Join(got, ", ") != strings.Join(want, ", ") {
		t.Fatalf("unexpected command sequence:\n got: %s\nwant: %s", strings.Join(got, ", "), strings.Join(want, ", "))
	}
}

// inIDs returns the ids of the $in operator at path, failing unless it is encoded as an array.
func inIDs(t *testing.T, filter bson.Raw, path ...string) []int64 {
	t.Helper()
	v, err := filter.LookupErr(append(path, "$in")...)
	if err != nil {
		t.Fatalf("filter %s has no $in under %v: %v", filter, path, err)
	}
	if v.Type != bson.TypeArray {
		t.Fatalf("$in under %v encoded as %s, want array", path, v.Type)
	}
	var ids []int64
	if err := v.Unmarshal(&ids); err != nil {
		t.Fatalf("decode $in under %v: %v", path, err)
	}
	return ids
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
