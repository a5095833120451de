package service

import (
	"context"
	"fmt"
	"time"

	"travelplanner/internal/models"
	"travelplanner/internal/repository"
)

// BookingService holds booking CRUD and the user/status/destination/upcoming
// lookups.
type BookingService struct {
	bookings     repository.Bookings
	users        repository.Users
	destinations repository.Destinations

	now func() time.Time
}

func NewBookingService(bookings repository.Bookings, users repository.Users, destinations repository.Destinations) *BookingService {
	return &BookingService{
		bookings:     bookings,
		users:        users,
		destinations: destinations,
		now:          time.Now,
	}
}

// Create validates references and the date range, stores the booking, then
// mirrors its id into the owner's bookings list.
func (s *BookingService) Create(ctx context.Context, b models.Booking) (models.Booking, error) {
	if err := checkRefs(ctx, s.users, s.destinations, b.User, b.Destination); err != nil {
		return models.Booking{}, err
	}
	if !b.StartDate.IsZero() && !b.EndDate.IsZero() && b.EndDate.Before(b.StartDate) {
		return models.Booking{}, fmt.Errorf("end date precedes start date: %w", ErrInvalidInput)
	}

	created, err := s.bookings.Create(ctx, b)
	if err != nil {
		return models.Booking{}, err
	}
	if err := s.users.AppendRef(ctx, created.User, repository.RefBookings, created.ID); err != nil {
		return models.Booking{}, err
	}
	return created, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	b, err := s.bookings.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}
	return b, nil
}

func (s *BookingService) Update(ctx context.Context, id string, upd models.BookingUpdate) (*models.Booking, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if upd.StartDate != nil && upd.EndDate != nil && upd.EndDate.Before(*upd.StartDate) {
		return nil, fmt.Errorf("end date precedes start date: %w", ErrInvalidInput)
	}
	b, err := s.bookings.Update(ctx, oid, upd)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}
	return b, nil
}

// Delete removes the booking and drops it from the owner's bookings list.
func (s *BookingService) Delete(ctx context.Context, id string) (*models.Booking, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	b, err := s.bookings.Delete(ctx, oid)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}
	if err := s.users.RemoveRef(ctx, b.User, repository.RefBookings, b.ID); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	oid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	return s.bookings.FindByUser(ctx, oid)
}

func (s *BookingService) SearchByStatus(ctx context.Context, status string) ([]models.Booking, error) {
	return s.bookings.FindByStatus(ctx, status)
}

func (s *BookingService) SearchByDestination(ctx context.Context, destinationName string) ([]models.Booking, error) {
	dests, err := s.destinations.FindByName(ctx, destinationName)
	if err != nil {
		return nil, err
	}
	if len(dests) == 0 {
		return nil, ErrNoMatchingDestinations
	}
	return s.bookings.FindByDestinations(ctx, destinationIDs(dests))
}

// UpcomingForUser returns the user's bookings starting at or after now.
func (s *BookingService) UpcomingForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	oid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	return s.bookings.FindUpcomingByUser(ctx, oid, s.now())
}
