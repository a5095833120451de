package repository

import (
	"context"
	"fmt"

	"travelplanner/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TripPlanMongo struct {
	coll *mongo.Collection
}

func NewTripPlanMongo(db *mongo.Database) *TripPlanMongo {
	return &TripPlanMongo{coll: db.Collection("tripplans")}
}

var _ TripPlans = (*TripPlanMongo)(nil)

func (r *TripPlanMongo) Create(ctx context.Context, t models.TripPlan) (models.TripPlan, error) {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return models.TripPlan{}, fmt.Errorf("insert trip plan for user %s: %w", t.User.Hex(), err)
	}
	return t, nil
}

func (r *TripPlanMongo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.TripPlan, error) {
	return findOne[models.TripPlan](ctx, r.coll, bson.M{"_id": id})
}

func (r *TripPlanMongo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.TripPlan, error) {
	if len(ids) == 0 {
		return []models.TripPlan{}, nil
	}
	return findAll[models.TripPlan](ctx, r.coll, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *TripPlanMongo) List(ctx context.Context) ([]models.TripPlan, error) {
	return findAll[models.TripPlan](ctx, r.coll, bson.M{})
}

func (r *TripPlanMongo) Update(ctx context.Context, id primitive.ObjectID, upd models.TripPlanUpdate) (*models.TripPlan, error) {
	set := bson.M{}
	if upd.StartDate != nil {
		set["startDate"] = *upd.StartDate
	}
	if upd.EndDate != nil {
		set["endDate"] = *upd.EndDate
	}
	if upd.Budget != nil {
		set["budget"] = *upd.Budget
	}
	if upd.Activities != nil {
		set["activities"] = upd.Activities
	}
	if upd.Accommodations != nil {
		set["accommodations"] = upd.Accommodations
	}
	return updateByID[models.TripPlan](ctx, r.coll, id, set)
}

func (r *TripPlanMongo) Delete(ctx context.Context, id primitive.ObjectID) (*models.TripPlan, error) {
	return deleteByID[models.TripPlan](ctx, r.coll, id)
}

func (r *TripPlanMongo) FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.TripPlan, error) {
	return findAll[models.TripPlan](ctx, r.coll, bson.M{"user": user})
}

func (r *TripPlanMongo) FindByDestinations(ctx context.Context, dests []primitive.ObjectID) ([]models.TripPlan, error) {
	if len(dests) == 0 {
		return []models.TripPlan{}, nil
	}
	return findAll[models.TripPlan](ctx, r.coll, bson.M{"destination": bson.M{"$in": dests}})
}

func (r *TripPlanMongo) FindByBudgetRange(ctx context.Context, min, max float64) ([]models.TripPlan, error) {
	return findAll[models.TripPlan](ctx, r.coll, bson.M{"budget": inRangeInclusive(min, max)})
}
