package repository

import (
	"context"
	"fmt"
	"time"

	"travelplanner/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingMongo struct {
	coll *mongo.Collection
}

func NewBookingMongo(db *mongo.Database) *BookingMongo {
	return &BookingMongo{coll: db.Collection("bookings")}
}

var _ Bookings = (*BookingMongo)(nil)

func (r *BookingMongo) Create(ctx context.Context, b models.Booking) (models.Booking, error) {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return models.Booking{}, fmt.Errorf("insert booking for user %s: %w", b.User.Hex(), err)
	}
	return b, nil
}

func (r *BookingMongo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	return findOne[models.Booking](ctx, r.coll, bson.M{"_id": id})
}

func (r *BookingMongo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Booking, error) {
	if len(ids) == 0 {
		return []models.Booking{}, nil
	}
	return findAll[models.Booking](ctx, r.coll, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *BookingMongo) List(ctx context.Context) ([]models.Booking, error) {
	return findAll[models.Booking](ctx, r.coll, bson.M{})
}

func (r *BookingMongo) Update(ctx context.Context, id primitive.ObjectID, upd models.BookingUpdate) (*models.Booking, error) {
	set := bson.M{}
	if upd.StartDate != nil {
		set["startDate"] = *upd.StartDate
	}
	if upd.EndDate != nil {
		set["endDate"] = *upd.EndDate
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.FlightDetails != nil {
		set["flightDetails"] = upd.FlightDetails
	}
	if upd.AccommodationDetails != nil {
		set["accommodationDetails"] = upd.AccommodationDetails
	}
	return updateByID[models.Booking](ctx, r.coll, id, set)
}

func (r *BookingMongo) Delete(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	return deleteByID[models.Booking](ctx, r.coll, id)
}

func (r *BookingMongo) FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.Booking, error) {
	return findAll[models.Booking](ctx, r.coll, bson.M{"user": user})
}

func (r *BookingMongo) FindByStatus(ctx context.Context, status string) ([]models.Booking, error) {
	return findAll[models.Booking](ctx, r.coll, bson.M{"status": status})
}

func (r *BookingMongo) FindByDestinations(ctx context.Context, dests []primitive.ObjectID) ([]models.Booking, error) {
	if len(dests) == 0 {
		return []models.Booking{}, nil
	}
	return findAll[models.Booking](ctx, r.coll, bson.M{"destination": bson.M{"$in": dests}})
}

func (r *BookingMongo) FindUpcomingByUser(ctx context.Context, user primitive.ObjectID, from time.Time) ([]models.Booking, error) {
	return findAll[models.Booking](ctx, r.coll, bson.M{
		"user":      user,
		"startDate": bson.M{"$gte": from},
	})
}
