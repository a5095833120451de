package service

import (
	"context"
	"fmt"

	"travelplanner/internal/models"
	"travelplanner/internal/ranking"
	"travelplanner/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TripPlanService holds trip-plan CRUD, the searches and the booking-count
// popularity ranking.
type TripPlanService struct {
	trips        repository.TripPlans
	bookings     repository.Bookings
	users        repository.Users
	destinations repository.Destinations
}

func NewTripPlanService(trips repository.TripPlans, bookings repository.Bookings, users repository.Users, destinations repository.Destinations) *TripPlanService {
	return &TripPlanService{trips: trips, bookings: bookings, users: users, destinations: destinations}
}

// checkRefs rejects records whose user or destination reference does not
// resolve to an existing record.
func checkRefs(ctx context.Context, users repository.Users, destinations repository.Destinations, user, dest primitive.ObjectID) error {
	u, err := users.GetByID(ctx, user)
	if err != nil {
		return err
	}
	if u == nil {
		return fmt.Errorf("user %s does not exist: %w", user.Hex(), ErrInvalidInput)
	}
	d, err := destinations.GetByID(ctx, dest)
	if err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("destination %s does not exist: %w", dest.Hex(), ErrInvalidInput)
	}
	return nil
}

// Create validates references and the date range, stores the plan, then
// mirrors its id into the owner's trips list.
func (s *TripPlanService) Create(ctx context.Context, t models.TripPlan) (models.TripPlan, error) {
	if err := checkRefs(ctx, s.users, s.destinations, t.User, t.Destination); err != nil {
		return models.TripPlan{}, err
	}
	if !t.StartDate.IsZero() && !t.EndDate.IsZero() && t.EndDate.Before(t.StartDate) {
		return models.TripPlan{}, fmt.Errorf("end date precedes start date: %w", ErrInvalidInput)
	}

	created, err := s.trips.Create(ctx, t)
	if err != nil {
		return models.TripPlan{}, err
	}
	if err := s.users.AppendRef(ctx, created.User, repository.RefTrips, created.ID); err != nil {
		return models.TripPlan{}, err
	}
	return created, nil
}

func (s *TripPlanService) Get(ctx context.Context, id string) (*models.TripPlan, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	t, err := s.trips.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("trip plan %s: %w", id, ErrNotFound)
	}
	return t, nil
}

func (s *TripPlanService) Update(ctx context.Context, id string, upd models.TripPlanUpdate) (*models.TripPlan, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if upd.StartDate != nil && upd.EndDate != nil && upd.EndDate.Before(*upd.StartDate) {
		return nil, fmt.Errorf("end date precedes start date: %w", ErrInvalidInput)
	}
	t, err := s.trips.Update(ctx, oid, upd)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("trip plan %s: %w", id, ErrNotFound)
	}
	return t, nil
}

// Delete removes the plan and drops it from the owner's trips list.
func (s *TripPlanService) Delete(ctx context.Context, id string) (*models.TripPlan, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	t, err := s.trips.Delete(ctx, oid)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("trip plan %s: %w", id, ErrNotFound)
	}
	if err := s.users.RemoveRef(ctx, t.User, repository.RefTrips, t.ID); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TripPlanService) List(ctx context.Context) ([]models.TripPlan, error) {
	return s.trips.List(ctx)
}

func (s *TripPlanService) ListByUser(ctx context.Context, userID string) ([]models.TripPlan, error) {
	oid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	return s.trips.FindByUser(ctx, oid)
}

func (s *TripPlanService) SearchByDestination(ctx context.Context, destinationName string) ([]models.TripPlan, error) {
	dests, err := s.destinations.FindByName(ctx, destinationName)
	if err != nil {
		return nil, err
	}
	if len(dests) == 0 {
		return nil, ErrNoMatchingDestinations
	}
	return s.trips.FindByDestinations(ctx, destinationIDs(dests))
}

func (s *TripPlanService) SearchByBudgetRange(ctx context.Context, min, max float64) ([]models.TripPlan, error) {
	if min > max {
		return nil, fmt.Errorf("min budget exceeds max: %w", ErrInvalidInput)
	}
	return s.trips.FindByBudgetRange(ctx, min, max)
}

// Popular ranks every trip plan by how many bookings share its destination,
// most-booked first.
func (s *TripPlanService) Popular(ctx context.Context) ([]models.TripPlan, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	return ranking.PopularTripPlans(trips, bookings), nil
}
