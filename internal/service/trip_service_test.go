package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"travelplanner/internal/models"
	"travelplanner/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTripPlanService_Create(t *testing.T) {
	u := &models.User{ID: primitive.NewObjectID()}
	d := &models.Destination{ID: primitive.NewObjectID()}
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	t.Run("valid plan is stored and mirrored to the owner", func(t *testing.T) {
		trips := &fakeTripPlans{}
		users := newFakeUsers(u)
		svc := NewTripPlanService(trips, &fakeBookings{}, users, newFakeDestinations(d))

		created, err := svc.Create(context.Background(), models.TripPlan{
			User: u.ID, Destination: d.ID, StartDate: start, EndDate: start.AddDate(0, 0, 7),
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if created.ID.IsZero() {
			t.Fatal("created plan has a zero id")
		}
		if users.appendRefCalls != 1 || users.lastRefField != repository.RefTrips {
			t.Fatalf("owner mirror: calls=%d field=%q", users.appendRefCalls, users.lastRefField)
		}
	})

	t.Run("end date before start date", func(t *testing.T) {
		trips := &fakeTripPlans{}
		svc := NewTripPlanService(trips, &fakeBookings{}, newFakeUsers(u), newFakeDestinations(d))
		_, err := svc.Create(context.Background(), models.TripPlan{
			User: u.ID, Destination: d.ID, StartDate: start, EndDate: start.AddDate(0, 0, -1),
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("err = %v, want ErrInvalidInput", err)
		}
		if trips.createCalls != 0 {
			t.Fatal("inverted date range reached the store")
		}
	})

	t.Run("dangling user reference", func(t *testing.T) {
		svc := NewTripPlanService(&fakeTripPlans{}, &fakeBookings{}, newFakeUsers(), newFakeDestinations(d))
		_, err := svc.Create(context.Background(), models.TripPlan{
			User: primitive.NewObjectID(), Destination: d.ID,
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("err = %v, want ErrInvalidInput", err)
		}
	})
}

func TestTripPlanService_Delete(t *testing.T) {
	u := &models.User{ID: primitive.NewObjectID()}
	d := &models.Destination{ID: primitive.NewObjectID()}
	plan := models.TripPlan{ID: primitive.NewObjectID(), User: u.ID, Destination: d.ID}
	users := newFakeUsers(u)
	svc := NewTripPlanService(&fakeTripPlans{trips: []models.TripPlan{plan}}, &fakeBookings{}, users, newFakeDestinations(d))

	got, err := svc.Delete(context.Background(), plan.ID.Hex())
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got.ID != plan.ID {
		t.Fatalf("deleted %s, want %s", got.ID.Hex(), plan.ID.Hex())
	}
	if users.removeRefCalls != 1 || users.lastRefField != repository.RefTrips {
		t.Fatalf("owner back-index: calls=%d field=%q", users.removeRefCalls, users.lastRefField)
	}
}

func TestTripPlanService_Popular(t *testing.T) {
	destA := primitive.NewObjectID()
	destB := primitive.NewObjectID()
	destC := primitive.NewObjectID()

	tripA := models.TripPlan{ID: primitive.NewObjectID(), Destination: destA}
	tripB := models.TripPlan{ID: primitive.NewObjectID(), Destination: destB}
	tripC := models.TripPlan{ID: primitive.NewObjectID(), Destination: destC}

	// destB has three bookings, destA one, destC none.
	bookings := &fakeBookings{bookings: []models.Booking{
		{ID: primitive.NewObjectID(), Destination: destB},
		{ID: primitive.NewObjectID(), Destination: destB},
		{ID: primitive.NewObjectID(), Destination: destA},
		{ID: primitive.NewObjectID(), Destination: destB},
	}}
	trips := &fakeTripPlans{trips: []models.TripPlan{tripA, tripB, tripC}}
	svc := NewTripPlanService(trips, bookings, newFakeUsers(), newFakeDestinations())

	got, err := svc.Popular(context.Background())
	if err != nil {
		t.Fatalf("Popular: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d plans, want all 3", len(got))
	}
	if got[0].ID != tripB.ID {
		t.Fatalf("most popular = %s, want the plan for the triple-booked destination", got[0].ID.Hex())
	}
	if got[1].ID != tripA.ID {
		t.Fatalf("second = %s, want the single-booked plan", got[1].ID.Hex())
	}
	if got[2].ID != tripC.ID {
		t.Fatalf("unbooked plan missing from the tail")
	}

	t.Run("booking listing fails", func(t *testing.T) {
		broken := &fakeBookings{err: errors.New("cursor timeout")}
		svc := NewTripPlanService(trips, broken, newFakeUsers(), newFakeDestinations())
		if _, err := svc.Popular(context.Background()); err == nil {
			t.Fatal("expected the store error to propagate")
		}
	})
}

func TestTripPlanService_SearchByDestination(t *testing.T) {
	d := &models.Destination{ID: primitive.NewObjectID(), Name: "Kyoto"}
	plan := models.TripPlan{ID: primitive.NewObjectID(), Destination: d.ID}
	trips := &fakeTripPlans{trips: []models.TripPlan{plan}}
	svc := NewTripPlanService(trips, &fakeBookings{}, newFakeUsers(), newFakeDestinations(d))

	got, err := svc.SearchByDestination(context.Background(), "KYO")
	if err != nil {
		t.Fatalf("SearchByDestination: %v", err)
	}
	if len(got) != 1 || got[0].ID != plan.ID {
		t.Fatalf("got %d plans, want the Kyoto plan", len(got))
	}

	t.Run("zero matching destinations", func(t *testing.T) {
		_, err := svc.SearchByDestination(context.Background(), "atlantis")
		if !errors.Is(err, ErrNoMatchingDestinations) {
			t.Fatalf("err = %v, want ErrNoMatchingDestinations", err)
		}
	})
}

func TestTripPlanService_SearchByBudgetRange(t *testing.T) {
	trips := &fakeTripPlans{trips: []models.TripPlan{
		{ID: primitive.NewObjectID(), Budget: 500},
		{ID: primitive.NewObjectID(), Budget: 1500},
	}}
	svc := NewTripPlanService(trips, &fakeBookings{}, newFakeUsers(), newFakeDestinations())

	got, err := svc.SearchByBudgetRange(context.Background(), 1000, 2000)
	if err != nil {
		t.Fatalf("SearchByBudgetRange: %v", err)
	}
	if len(got) != 1 || got[0].Budget != 1500 {
		t.Fatalf("got %d plans, want the 1500 budget plan", len(got))
	}

	if _, err := svc.SearchByBudgetRange(context.Background(), 2000, 1000); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("inverted range: err = %v, want ErrInvalidInput", err)
	}
}
