package service

import (
	"context"
	"fmt"

	"travelplanner/internal/models"
	"travelplanner/internal/repository"
)

const (
	minRating = 1
	maxRating = 5
)

// ReviewService holds review CRUD with reference validation and the
// destination-name and rating-range searches.
type ReviewService struct {
	reviews      repository.Reviews
	users        repository.Users
	destinations repository.Destinations
}

func NewReviewService(reviews repository.Reviews, users repository.Users, destinations repository.Destinations) *ReviewService {
	return &ReviewService{reviews: reviews, users: users, destinations: destinations}
}

func validRating(r float64) error {
	if r < minRating || r > maxRating {
		return fmt.Errorf("rating must be between %d and %d: %w", minRating, maxRating, ErrInvalidInput)
	}
	return nil
}

// Create validates the user and destination references and the rating range,
// stores the review, then mirrors its id into the user's and destination's
// review lists. The mirror writes are separate operations; a crash in
// between leaves the back-index stale, which the read paths tolerate.
func (s *ReviewService) Create(ctx context.Context, r models.Review) (models.Review, error) {
	if err := validRating(r.Rating); err != nil {
		return models.Review{}, err
	}

	u, err := s.users.GetByID(ctx, r.User)
	if err != nil {
		return models.Review{}, err
	}
	if u == nil {
		return models.Review{}, fmt.Errorf("review user %s does not exist: %w", r.User.Hex(), ErrInvalidInput)
	}
	d, err := s.destinations.GetByID(ctx, r.Destination)
	if err != nil {
		return models.Review{}, err
	}
	if d == nil {
		return models.Review{}, fmt.Errorf("review destination %s does not exist: %w", r.Destination.Hex(), ErrInvalidInput)
	}

	created, err := s.reviews.Create(ctx, r)
	if err != nil {
		return models.Review{}, err
	}
	if err := s.users.AppendRef(ctx, created.User, repository.RefReviews, created.ID); err != nil {
		return models.Review{}, err
	}
	if err := s.destinations.AppendReview(ctx, created.Destination, created.ID); err != nil {
		return models.Review{}, err
	}
	return created, nil
}

func (s *ReviewService) Get(ctx context.Context, id string) (*models.Review, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	r, err := s.reviews.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("review %s: %w", id, ErrNotFound)
	}
	return r, nil
}

func (s *ReviewService) Update(ctx context.Context, id string, upd models.ReviewUpdate) (*models.Review, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if upd.Rating != nil {
		if err := validRating(*upd.Rating); err != nil {
			return nil, err
		}
	}
	r, err := s.reviews.Update(ctx, oid, upd)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("review %s: %w", id, ErrNotFound)
	}
	return r, nil
}

// Delete removes the review and drops its id from both back-indexes.
func (s *ReviewService) Delete(ctx context.Context, id string) (*models.Review, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	r, err := s.reviews.Delete(ctx, oid)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("review %s: %w", id, ErrNotFound)
	}
	if err := s.users.RemoveRef(ctx, r.User, repository.RefReviews, r.ID); err != nil {
		return nil, err
	}
	if err := s.destinations.RemoveReview(ctx, r.Destination, r.ID); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *ReviewService) List(ctx context.Context) ([]models.Review, error) {
	return s.reviews.List(ctx)
}

// SearchByDestination resolves destination ids by case-insensitive name
// first; zero matching destinations is an explicit failure, not an empty
// result.
func (s *ReviewService) SearchByDestination(ctx context.Context, destinationName string) ([]models.Review, error) {
	dests, err := s.destinations.FindByName(ctx, destinationName)
	if err != nil {
		return nil, err
	}
	if len(dests) == 0 {
		return nil, ErrNoMatchingDestinations
	}
	return s.reviews.FindByDestinations(ctx, destinationIDs(dests))
}

func (s *ReviewService) SearchByRatingRange(ctx context.Context, min, max float64) ([]models.Review, error) {
	if min > max {
		return nil, fmt.Errorf("min rating exceeds max: %w", ErrInvalidInput)
	}
	return s.reviews.FindByRatingRange(ctx, min, max)
}
