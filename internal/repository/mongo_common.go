package repository

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// findAll runs a filtered Find and decodes every document.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) ([]T, error) {
	cur, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	defer func() { _ = cur.Close(ctx) }()

	var out []T
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return out, nil
}

// findOne decodes a single document, mapping "no documents" to (nil, nil).
func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) (*T, error) {
	var out T
	err := coll.FindOne(ctx, filter).Decode(&out)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find one %s: %w", coll.Name(), err)
	}
	return &out, nil
}

// updateByID applies a $set patch and returns the updated document, or
// (nil, nil) when no document matched.
func updateByID[T any](ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, set bson.M) (*T, error) {
	if len(set) == 0 {
		return findOne[T](ctx, coll, bson.M{"_id": id})
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out T
	err := coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&out)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update %s %s: %w", coll.Name(), id.Hex(), err)
	}
	return &out, nil
}

// deleteByID removes a document and returns what was deleted, or (nil, nil)
// when nothing matched.
func deleteByID[T any](ctx context.Context, coll *mongo.Collection, id primitive.ObjectID) (*T, error) {
	var out T
	err := coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&out)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete %s %s: %w", coll.Name(), id.Hex(), err)
	}
	return &out, nil
}

// containsInsensitive is the case-insensitive substring filter used by the
// text searches.
func containsInsensitive(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

// inRangeInclusive is the [min, max] filter used by the numeric searches.
func inRangeInclusive(min, max float64) bson.M {
	return bson.M{"$gte": min, "$lte": max}
}
