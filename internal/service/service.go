package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travelplanner/internal/models"
	"travelplanner/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shared sentinels. Handlers map ErrNotFound to 404 and ErrInvalidInput to
// 400; everything else surfaces as 500 with the failure message verbatim.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// A text search that resolves zero destinations is an explicit failure,
	// distinct from "destination exists but has no dependents".
	ErrNoMatchingDestinations = fmt.Errorf("no destinations match the given name: %w", ErrNotFound)
)

type Authorization interface {
	Login(ctx context.Context, email, password string) (string, error)
	ChangePassword(ctx context.Context, userID, newPassword string) error
	Authenticate(ctx context.Context, accessToken string) (*models.User, error)
}

type Users interface {
	Create(ctx context.Context, username, email, password string) (models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id string) (*models.User, error)
	TripPlans(ctx context.Context, id string) ([]models.TripPlan, error)
	UpcomingTrips(ctx context.Context, id string) ([]models.TripPlan, error)
	PastTrips(ctx context.Context, id string) ([]models.TripPlan, error)
	Bookings(ctx context.Context, id string) ([]models.Booking, error)
	Reviews(ctx context.Context, id string) ([]models.Review, error)
}

type Destinations interface {
	Create(ctx context.Context, d models.Destination) (models.Destination, error)
	Get(ctx context.Context, id string) (*models.Destination, error)
	Update(ctx context.Context, id string, upd models.DestinationUpdate) (*models.Destination, error)
	Delete(ctx context.Context, id string) (*models.Destination, error)
	List(ctx context.Context) ([]models.Destination, error)
	SearchByName(ctx context.Context, name string) ([]models.Destination, error)
	SearchByCategory(ctx context.Context, category string) ([]models.Destination, error)
	SearchByBudgetRange(ctx context.Context, min, max float64) ([]models.Destination, error)
	TopRated(ctx context.Context) ([]models.Destination, error)
}

type Reviews interface {
	Create(ctx context.Context, r models.Review) (models.Review, error)
	Get(ctx context.Context, id string) (*models.Review, error)
	Update(ctx context.Context, id string, upd models.ReviewUpdate) (*models.Review, error)
	Delete(ctx context.Context, id string) (*models.Review, error)
	List(ctx context.Context) ([]models.Review, error)
	SearchByDestination(ctx context.Context, destinationName string) ([]models.Review, error)
	SearchByRatingRange(ctx context.Context, min, max float64) ([]models.Review, error)
}

type TripPlans interface {
	Create(ctx context.Context, t models.TripPlan) (models.TripPlan, error)
	Get(ctx context.Context, id string) (*models.TripPlan, error)
	Update(ctx context.Context, id string, upd models.TripPlanUpdate) (*models.TripPlan, error)
	Delete(ctx context.Context, id string) (*models.TripPlan, error)
	List(ctx context.Context) ([]models.TripPlan, error)
	ListByUser(ctx context.Context, userID string) ([]models.TripPlan, error)
	SearchByDestination(ctx context.Context, destinationName string) ([]models.TripPlan, error)
	SearchByBudgetRange(ctx context.Context, min, max float64) ([]models.TripPlan, error)
	Popular(ctx context.Context) ([]models.TripPlan, error)
}

type Bookings interface {
	Create(ctx context.Context, b models.Booking) (models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	Update(ctx context.Context, id string, upd models.BookingUpdate) (*models.Booking, error)
	Delete(ctx context.Context, id string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	SearchByStatus(ctx context.Context, status string) ([]models.Booking, error)
	SearchByDestination(ctx context.Context, destinationName string) ([]models.Booking, error)
	UpcomingForUser(ctx context.Context, userID string) ([]models.Booking, error)
}

// AuthConfig carries the signing material loaded once at process start.
type AuthConfig struct {
	SigningKey []byte
	TokenTTL   time.Duration
}

type Service struct {
	Auth         Authorization
	Users        Users
	Destinations Destinations
	Reviews      Reviews
	TripPlans    TripPlans
	Bookings     Bookings
}

func NewService(repos *repository.Repository, auth AuthConfig) *Service {
	return &Service{
		Auth:         NewAuthService(repos.Users, auth),
		Users:        NewUserService(repos.Users, repos.TripPlans, repos.Bookings, repos.Reviews),
		Destinations: NewDestinationService(repos.Destinations, repos.Reviews),
		Reviews:      NewReviewService(repos.Reviews, repos.Users, repos.Destinations),
		TripPlans:    NewTripPlanService(repos.TripPlans, repos.Bookings, repos.Users, repos.Destinations),
		Bookings:     NewBookingService(repos.Bookings, repos.Users, repos.Destinations),
	}
}

// parseID converts a path/claim id into an ObjectID. A malformed id can never
// match a record, so it is reported as not found rather than a store error.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("id %q: %w", id, ErrNotFound)
	}
	return oid, nil
}

func destinationIDs(dests []models.Destination) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, len(dests))
	for i, d := range dests {
		ids[i] = d.ID
	}
	return ids
}
