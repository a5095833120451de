package repository

import (
	"context"
	"time"

	"travelplanner/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Back-reference fields on the users collection.
const (
	RefTrips    = "trips"
	RefBookings = "bookings"
	RefReviews  = "reviews"
)

// Lookups that miss return (nil, nil); callers decide whether that is an error.

type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, upd models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	SetPassword(ctx context.Context, id primitive.ObjectID, hash string) error
	AddToken(ctx context.Context, id primitive.ObjectID, tokenID string) error
	AppendRef(ctx context.Context, id primitive.ObjectID, field string, ref primitive.ObjectID) error
	RemoveRef(ctx context.Context, id primitive.ObjectID, field string, ref primitive.ObjectID) error
}

type Destinations interface {
	Create(ctx context.Context, d models.Destination) (models.Destination, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Destination, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Destination, error)
	List(ctx context.Context) ([]models.Destination, error)
	Update(ctx context.Context, id primitive.ObjectID, upd models.DestinationUpdate) (*models.Destination, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Destination, error)
	FindByName(ctx context.Context, name string) ([]models.Destination, error)
	FindByCategory(ctx context.Context, category string) ([]models.Destination, error)
	FindByBudgetRange(ctx context.Context, min, max float64) ([]models.Destination, error)
	AppendReview(ctx context.Context, id, reviewID primitive.ObjectID) error
	RemoveReview(ctx context.Context, id, reviewID primitive.ObjectID) error
}

type Reviews interface {
	Create(ctx context.Context, r models.Review) (models.Review, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Review, error)
	List(ctx context.Context) ([]models.Review, error)
	Update(ctx context.Context, id primitive.ObjectID, upd models.ReviewUpdate) (*models.Review, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.Review, error)
	FindByDestinations(ctx context.Context, dests []primitive.ObjectID) ([]models.Review, error)
	FindByRatingRange(ctx context.Context, min, max float64) ([]models.Review, error)
}

type TripPlans interface {
	Create(ctx context.Context, t models.TripPlan) (models.TripPlan, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.TripPlan, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.TripPlan, error)
	List(ctx context.Context) ([]models.TripPlan, error)
	Update(ctx context.Context, id primitive.ObjectID, upd models.TripPlanUpdate) (*models.TripPlan, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.TripPlan, error)
	FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.TripPlan, error)
	FindByDestinations(ctx context.Context, dests []primitive.ObjectID) ([]models.TripPlan, error)
	FindByBudgetRange(ctx context.Context, min, max float64) ([]models.TripPlan, error)
}

type Bookings interface {
	Create(ctx context.Context, b models.Booking) (models.Booking, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
	Update(ctx context.Context, id primitive.ObjectID, upd models.BookingUpdate) (*models.Booking, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.Booking, error)
	FindByStatus(ctx context.Context, status string) ([]models.Booking, error)
	FindByDestinations(ctx context.Context, dests []primitive.ObjectID) ([]models.Booking, error)
	FindUpcomingByUser(ctx context.Context, user primitive.ObjectID, from time.Time) ([]models.Booking, error)
}

type Repository struct {
	Users        Users
	Destinations Destinations
	Reviews      Reviews
	TripPlans    TripPlans
	Bookings     Bookings
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		Users:        NewUserMongo(db),
		Destinations: NewDestinationMongo(db),
		Reviews:      NewReviewMongo(db),
		TripPlans:    NewTripPlanMongo(db),
		Bookings:     NewBookingMongo(db),
	}
}
