package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Integer identifiers are allocated from one counter document per collection:
// { _id: <collection>, seq: <last issued id> }.
type counter struct {
	Seq int64 `bson:"seq"`
}

func nextID(ctx context.Context, db *mongo.Database, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var c counter
	err := db.Collection(collectionCounters).
		FindOneAndUpdate(ctx, bson.M{"_id": name}, bson.M{"$inc": bson.M{"seq": int64(1)}}, opts).
		Decode(&c)
	if err != nil {
		return 0, fmt.Errorf("next %s id: %w", name, err)
	}
	return c.Seq, nil
}

// advanceCounter moves the counter forward to at least seq; it never moves it back.
func advanceCounter(ctx context.Context, db *mongo.Database, name string, seq int64) error {
	_, err := db.Collection(collectionCounters).UpdateOne(ctx,
		bson.M{"_id": name},
		bson.M{"$max": bson.M{"seq": seq}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("advance %s counter: %w", name, err)
	}
	return nil
}

// exists reports whether a document matching filter is stored in coll.
func exists(ctx context.Context, coll *mongo.Collection, filter any) (bool, error) {
	n, err := coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// idsOf projects the _id of every document matching filter.
func idsOf(ctx context.Context, coll *mongo.Collection, filter any) ([]int64, error) {
	cur, err := coll.Find(ctx, filter, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	var docs []struct {
		ID int64 `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

func byID(id int64) bson.M { return bson.M{"_id": id} }

func sortByID() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
}
