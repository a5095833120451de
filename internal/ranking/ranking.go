// Package ranking holds the derived-view computations: rating aggregation,
// booking-count ranking and date partitioning. Everything here is a pure
// function over already-fetched records, so it stays portable across storage
// backends and testable without a running database.
package ranking

import (
	"sort"
	"time"

	"travelplanner/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TopRatedThreshold is the minimum mean rating for a destination to count as
// top-rated.
const TopRatedThreshold = 4.0

// RatedDestination pairs a destination id with its mean review rating.
type RatedDestination struct {
	ID            primitive.ObjectID
	AverageRating float64
}

// AverageRatings groups reviews by destination and computes the mean rating
// per destination. Destinations with no reviews simply have no entry.
func AverageRatings(reviews []models.Review) map[primitive.ObjectID]float64 {
	sums := make(map[primitive.ObjectID]float64)
	counts := make(map[primitive.ObjectID]int)
	for _, r := range reviews {
		sums[r.Destination] += r.Rating
		counts[r.Destination]++
	}
	avgs := make(map[primitive.ObjectID]float64, len(sums))
	for id, sum := range sums {
		avgs[id] = sum / float64(counts[id])
	}
	return avgs
}

// TopRated returns the destinations whose mean rating is >= threshold,
// ordered by mean rating descending with id ascending as the tie-break.
func TopRated(reviews []models.Review, threshold float64) []RatedDestination {
	avgs := AverageRatings(reviews)
	out := make([]RatedDestination, 0, len(avgs))
	for id, avg := range avgs {
		if avg >= threshold {
			out = append(out, RatedDestination{ID: id, AverageRating: avg})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AverageRating != out[j].AverageRating {
			return out[i].AverageRating > out[j].AverageRating
		}
		return out[i].ID.Hex() < out[j].ID.Hex()
	})
	return out
}

// PopularTripPlans ranks trip plans by the number of bookings that reference
// the same destination, descending; plans with equal counts are ordered by id
// ascending. Plans with zero matching bookings keep their place at the tail.
func PopularTripPlans(trips []models.TripPlan, bookings []models.Booking) []models.TripPlan {
	counts := make(map[primitive.ObjectID]int)
	for _, b := range bookings {
		counts[b.Destination]++
	}
	ranked := make([]models.TripPlan, len(trips))
	copy(ranked, trips)
	sort.SliceStable(ranked, func(i, j int) bool {
		ci, cj := counts[ranked[i].Destination], counts[ranked[j].Destination]
		if ci != cj {
			return ci > cj
		}
		return ranked[i].ID.Hex() < ranked[j].ID.Hex()
	})
	return ranked
}

// PartitionTripsByEndDate splits trips into upcoming and past relative to now:
// an end date at or after now is upcoming, strictly before now is past. Trips
// without an end date are treated as upcoming. The two sets are disjoint and
// together cover the input.
func PartitionTripsByEndDate(trips []models.TripPlan, now time.Time) (upcoming, past []models.TripPlan) {
	upcoming = make([]models.TripPlan, 0, len(trips))
	past = make([]models.TripPlan, 0, len(trips))
	for _, t := range trips {
		if !t.EndDate.IsZero() && t.EndDate.Before(now) {
			past = append(past, t)
			continue
		}
		upcoming = append(upcoming, t)
	}
	return upcoming, past
}
