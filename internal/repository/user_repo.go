package repository

import (
	"context"
	"fmt"

	"travelplanner/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserMongo struct {
	coll *mongo.Collection
}

func NewUserMongo(db *mongo.Database) *UserMongo {
	return &UserMongo{coll: db.Collection("users")}
}

// Ensure implementation of the Users interface at compile time.
var _ Users = (*UserMongo)(nil)

func (r *UserMongo) Create(ctx context.Context, u models.User) (models.User, error) {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		return models.User{}, fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	return u, nil
}

func (r *UserMongo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return findOne[models.User](ctx, r.coll, bson.M{"_id": id})
}

func (r *UserMongo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return findOne[models.User](ctx, r.coll, bson.M{"email": email})
}

func (r *UserMongo) Update(ctx context.Context, id primitive.ObjectID, upd models.UserUpdate) (*models.User, error) {
	set := bson.M{}
	if upd.Username != nil {
		set["username"] = *upd.Username
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	return updateByID[models.User](ctx, r.coll, id, set)
}

func (r *UserMongo) Delete(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return deleteByID[models.User](ctx, r.coll, id)
}

func (r *UserMongo) SetPassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"password": hash}})
	if err != nil {
		return fmt.Errorf("set password for user %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("set password: user %s not found", id.Hex())
	}
	return nil
}

func (r *UserMongo) AddToken(ctx context.Context, id primitive.ObjectID, tokenID string) error {
	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$push": bson.M{"tokens": tokenID}})
	if err != nil {
		return fmt.Errorf("add token for user %s: %w", id.Hex(), err)
	}
	return nil
}

func (r *UserMongo) AppendRef(ctx context.Context, id primitive.ObjectID, field string, ref primitive.ObjectID) error {
	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$addToSet": bson.M{field: ref}})
	if err != nil {
		return fmt.Errorf("append %s ref for user %s: %w", field, id.Hex(), err)
	}
	return nil
}

func (r *UserMongo) RemoveRef(ctx context.Context, id primitive.ObjectID, field string, ref primitive.ObjectID) error {
	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$pull": bson.M{field: ref}})
	if err != nil {
		return fmt.Errorf("remove %s ref for user %s: %w", field, id.Hex(), err)
	}
	return nil
}
