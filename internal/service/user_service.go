package service

import (
	"context"
	"fmt"
	"time"

	"travelplanner/internal/models"
	"travelplanner/internal/ranking"
	"travelplanner/internal/repository"
)

// ErrEmailImmutable is returned when an update tries to move the account to
// an email no user record holds.
var ErrEmailImmutable = fmt.Errorf("email cannot be updated: %w", ErrInvalidInput)

// UserService covers account CRUD and the expanded reference-list views,
// including the read-time upcoming/past trip partition.
type UserService struct {
	users    repository.Users
	trips    repository.TripPlans
	bookings repository.Bookings
	reviews  repository.Reviews

	now func() time.Time
}

func NewUserService(users repository.Users, trips repository.TripPlans, bookings repository.Bookings, reviews repository.Reviews) *UserService {
	return &UserService{
		users:    users,
		trips:    trips,
		bookings: bookings,
		reviews:  reviews,
		now:      time.Now,
	}
}

// Create hashes the password before the record is stored; the plaintext is
// never persisted.
func (s *UserService) Create(ctx context.Context, username, email, password string) (models.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	return s.users.Create(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.getUser(ctx, id)
}

// Update applies profile changes. An email change is only accepted when the
// target email already belongs to a user record.
func (s *UserService) Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if upd.Email != nil {
		existing, err := s.users.GetByEmail(ctx, *upd.Email)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrEmailImmutable
		}
	}
	u, err := s.users.Update(ctx, oid, upd)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id string) (*models.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	u, err := s.users.Delete(ctx, oid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return u, nil
}

// TripPlans expands the user's trip reference list into full records.
func (s *UserService) TripPlans(ctx context.Context, id string) ([]models.TripPlan, error) {
	u, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.trips.GetByIDs(ctx, u.Trips)
}

// UpcomingTrips returns the user's trips whose end date is at or after now.
// The partition is computed at read time, never stored.
func (s *UserService) UpcomingTrips(ctx context.Context, id string) ([]models.TripPlan, error) {
	trips, err := s.TripPlans(ctx, id)
	if err != nil {
		return nil, err
	}
	upcoming, _ := ranking.PartitionTripsByEndDate(trips, s.now())
	return upcoming, nil
}

// PastTrips returns the user's trips whose end date is strictly before now.
func (s *UserService) PastTrips(ctx context.Context, id string) ([]models.TripPlan, error) {
	trips, err := s.TripPlans(ctx, id)
	if err != nil {
		return nil, err
	}
	_, past := ranking.PartitionTripsByEndDate(trips, s.now())
	return past, nil
}

// Bookings expands the user's booking reference list into full records.
func (s *UserService) Bookings(ctx context.Context, id string) ([]models.Booking, error) {
	u, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.bookings.GetByIDs(ctx, u.Bookings)
}

// Reviews expands the user's review reference list into full records.
func (s *UserService) Reviews(ctx context.Context, id string) ([]models.Review, error) {
	u, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.reviews.GetByIDs(ctx, u.Reviews)
}

func (s *UserService) getUser(ctx context.Context, id string) (*models.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return u, nil
}
