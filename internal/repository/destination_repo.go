package repository

import (
	"context"
	"fmt"

	"travelplanner/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DestinationMongo struct {
	coll *mongo.Collection
}

func NewDestinationMongo(db *mongo.Database) *DestinationMongo {
	return &DestinationMongo{coll: db.Collection("destinations")}
}

var _ Destinations = (*DestinationMongo)(nil)

func (r *DestinationMongo) Create(ctx context.Context, d models.Destination) (models.Destination, error) {
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, d); err != nil {
		return models.Destination{}, fmt.Errorf("insert destination %q: %w", d.Name, err)
	}
	return d, nil
}

func (r *DestinationMongo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Destination, error) {
	return findOne[models.Destination](ctx, r.coll, bson.M{"_id": id})
}

func (r *DestinationMongo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Destination, error) {
	if len(ids) == 0 {
		return []models.Destination{}, nil
	}
	return findAll[models.Destination](ctx, r.coll, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *DestinationMongo) List(ctx context.Context) ([]models.Destination, error) {
	return findAll[models.Destination](ctx, r.coll, bson.M{})
}

func (r *DestinationMongo) Update(ctx context.Context, id primitive.ObjectID, upd models.DestinationUpdate) (*models.Destination, error) {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.Budget != nil {
		set["budget"] = *upd.Budget
	}
	if upd.ImageURL != nil {
		set["imageUrl"] = *upd.ImageURL
	}
	if upd.Attractions != nil {
		set["attractions"] = upd.Attractions
	}
	return updateByID[models.Destination](ctx, r.coll, id, set)
}

func (r *DestinationMongo) Delete(ctx context.Context, id primitive.ObjectID) (*models.Destination, error) {
	return deleteByID[models.Destination](ctx, r.coll, id)
}

func (r *DestinationMongo) FindByName(ctx context.Context, name string) ([]models.Destination, error) {
	return findAll[models.Destination](ctx, r.coll, bson.M{"name": containsInsensitive(name)})
}

func (r *DestinationMongo) FindByCategory(ctx context.Context, category string) ([]models.Destination, error) {
	return findAll[models.Destination](ctx, r.coll, bson.M{"category": containsInsensitive(category)})
}

func (r *DestinationMongo) FindByBudgetRange(ctx context.Context, min, max float64) ([]models.Destination, error) {
	return findAll[models.Destination](ctx, r.coll, bson.M{"budget": inRangeInclusive(min, max)})
}

func (r *DestinationMongo) AppendReview(ctx context.Context, id, reviewID primitive.ObjectID) error {
	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$addToSet": bson.M{"reviews": reviewID}})
	if err != nil {
		return fmt.Errorf("append review ref for destination %s: %w", id.Hex(), err)
	}
	return nil
}

func (r *DestinationMongo) RemoveReview(ctx context.Context, id, reviewID primitive.ObjectID) error {
	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$pull": bson.M{"reviews": reviewID}})
	if err != nil {
		return fmt.Errorf("remove review ref for destination %s: %w", id.Hex(), err)
	}
	return nil
}
