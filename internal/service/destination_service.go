package service

import (
	"context"
	"fmt"

	"travelplanner/internal/models"
	"travelplanner/internal/ranking"
	"travelplanner/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DestinationService covers destination CRUD plus the rating-derived views.
type DestinationService struct {
	destinations repository.Destinations
	reviews      repository.Reviews
}

func NewDestinationService(destinations repository.Destinations, reviews repository.Reviews) *DestinationService {
	return &DestinationService{destinations: destinations, reviews: reviews}
}

func (s *DestinationService) Create(ctx context.Context, d models.Destination) (models.Destination, error) {
	return s.destinations.Create(ctx, d)
}

func (s *DestinationService) Get(ctx context.Context, id string) (*models.Destination, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	d, err := s.destinations.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("destination %s: %w", id, ErrNotFound)
	}
	return d, nil
}

func (s *DestinationService) Update(ctx context.Context, id string, upd models.DestinationUpdate) (*models.Destination, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	d, err := s.destinations.Update(ctx, oid, upd)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("destination %s: %w", id, ErrNotFound)
	}
	return d, nil
}

func (s *DestinationService) Delete(ctx context.Context, id string) (*models.Destination, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	d, err := s.destinations.Delete(ctx, oid)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("destination %s: %w", id, ErrNotFound)
	}
	return d, nil
}

func (s *DestinationService) List(ctx context.Context) ([]models.Destination, error) {
	return s.destinations.List(ctx)
}

func (s *DestinationService) SearchByName(ctx context.Context, name string) ([]models.Destination, error) {
	return s.destinations.FindByName(ctx, name)
}

func (s *DestinationService) SearchByCategory(ctx context.Context, category string) ([]models.Destination, error) {
	return s.destinations.FindByCategory(ctx, category)
}

func (s *DestinationService) SearchByBudgetRange(ctx context.Context, min, max float64) ([]models.Destination, error) {
	return s.destinations.FindByBudgetRange(ctx, min, max)
}

// TopRated aggregates the primary review records by destination, keeps the
// destinations whose mean rating clears the threshold and returns their full
// records in rating order. Grouping runs over the review records themselves
// rather than the destinations' review back-indexes, so a stale back-index
// cannot skew the ranking.
func (s *DestinationService) TopRated(ctx context.Context) ([]models.Destination, error) {
	reviews, err := s.reviews.List(ctx)
	if err != nil {
		return nil, err
	}

	rated := ranking.TopRated(reviews, ranking.TopRatedThreshold)
	if len(rated) == 0 {
		return []models.Destination{}, nil
	}

	ids := make([]primitive.ObjectID, len(rated))
	for i, r := range rated {
		ids[i] = r.ID
	}
	fetched, err := s.destinations.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	ordered := make([]models.Destination, 0, len(rated))
	byID := make(map[string]models.Destination, len(fetched))
	for _, d := range fetched {
		byID[d.ID.Hex()] = d
	}
	for _, r := range rated {
		if d, ok := byID[r.ID.Hex()]; ok {
			ordered = append(ordered, d)
		}
	}
	return ordered, nil
}
