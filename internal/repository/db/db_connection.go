package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// Connect dials MongoDB, verifies the connection and ensures indexes.
// The returned close func must be called on shutdown.
func Connect(ctx context.Context, uri, database string) (*mongo.Database, func(context.Context) error, error) {
	dialCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongodb at %q: %w", uri, err)
	}

	// Fail fast if the server cannot be reached
	if err := client.Ping(dialCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongodb: %w", err)
	}

	mdb := client.Database(database)
	if err := ensureIndexes(dialCtx, mdb); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	return mdb, client.Disconnect, nil
}

// ensureIndexes creates the unique account indexes. Username and email must
// be unique across users; everything else is looked up by _id or plain filters.
func ensureIndexes(ctx context.Context, mdb *mongo.Database) error {
	users := mdb.Collection("users")
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}
