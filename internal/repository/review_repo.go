package repository

import (
	"context"
	"fmt"

	"travelplanner/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewMongo struct {
	coll *mongo.Collection
}

func NewReviewMongo(db *mongo.Database) *ReviewMongo {
	return &ReviewMongo{coll: db.Collection("reviews")}
}

var _ Reviews = (*ReviewMongo)(nil)

func (r *ReviewMongo) Create(ctx context.Context, rev models.Review) (models.Review, error) {
	if rev.ID.IsZero() {
		rev.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, rev); err != nil {
		return models.Review{}, fmt.Errorf("insert review for destination %s: %w", rev.Destination.Hex(), err)
	}
	return rev, nil
}

func (r *ReviewMongo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	return findOne[models.Review](ctx, r.coll, bson.M{"_id": id})
}

func (r *ReviewMongo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Review, error) {
	if len(ids) == 0 {
		return []models.Review{}, nil
	}
	return findAll[models.Review](ctx, r.coll, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *ReviewMongo) List(ctx context.Context) ([]models.Review, error) {
	return findAll[models.Review](ctx, r.coll, bson.M{})
}

func (r *ReviewMongo) Update(ctx context.Context, id primitive.ObjectID, upd models.ReviewUpdate) (*models.Review, error) {
	set := bson.M{}
	if upd.Rating != nil {
		set["rating"] = *upd.Rating
	}
	if upd.Comment != nil {
		set["comment"] = *upd.Comment
	}
	if upd.HelpfulVotes != nil {
		set["helpfulVotes"] = *upd.HelpfulVotes
	}
	return updateByID[models.Review](ctx, r.coll, id, set)
}

func (r *ReviewMongo) Delete(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	return deleteByID[models.Review](ctx, r.coll, id)
}

func (r *ReviewMongo) FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.Review, error) {
	return findAll[models.Review](ctx, r.coll, bson.M{"user": user})
}

func (r *ReviewMongo) FindByDestinations(ctx context.Context, dests []primitive.ObjectID) ([]models.Review, error) {
	if len(dests) == 0 {
		return []models.Review{}, nil
	}
	return findAll[models.Review](ctx, r.coll, bson.M{"destination": bson.M{"$in": dests}})
}

func (r *ReviewMongo) FindByRatingRange(ctx context.Context, min, max float64) ([]models.Review, error) {
	return findAll[models.Review](ctx, r.coll, bson.M{"rating": inRangeInclusive(min, max)})
}
