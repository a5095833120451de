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

func TestBookingService_Create(t *testing.T) {
	u := &models.User{ID: primitive.NewObjectID()}
	d := &models.Destination{ID: primitive.NewObjectID()}
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	t.Run("valid booking is stored and mirrored to the owner", func(t *testing.T) {
		bookings := &fakeBookings{}
		users := newFakeUsers(u)
		svc := NewBookingService(bookings, users, newFakeDestinations(d))

		created, err := svc.Create(context.Background(), models.Booking{
			User: u.ID, Destination: d.ID, StartDate: start, EndDate: start.AddDate(0, 0, 5), Status: "confirmed",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if created.ID.IsZero() {
			t.Fatal("created booking has a zero id")
		}
		if users.appendRefCalls != 1 || users.lastRefField != repository.RefBookings {
			t.Fatalf("owner mirror: calls=%d field=%q", users.appendRefCalls, users.lastRefField)
		}
	})

	t.Run("end date before start date", func(t *testing.T) {
		bookings := &fakeBookings{}
		svc := NewBookingService(bookings, newFakeUsers(u), newFakeDestinations(d))
		_, err := svc.Create(context.Background(), models.Booking{
			User: u.ID, Destination: d.ID, StartDate: start, EndDate: start.AddDate(0, 0, -2),
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("err = %v, want ErrInvalidInput", err)
		}
		if bookings.createCalls != 0 {
			t.Fatal("inverted date range reached the store")
		}
	})

	t.Run("dangling destination reference", func(t *testing.T) {
		svc := NewBookingService(&fakeBookings{}, newFakeUsers(u), newFakeDestinations())
		_, err := svc.Create(context.Background(), models.Booking{
			User: u.ID, Destination: primitive.NewObjectID(),
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("err = %v, want ErrInvalidInput", err)
		}
	})
}

func TestBookingService_UpcomingForUser(t *testing.T) {
	u := &models.User{ID: primitive.NewObjectID()}
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	future := models.Booking{ID: primitive.NewObjectID(), User: u.ID, StartDate: now.AddDate(0, 0, 3)}
	past := models.Booking{ID: primitive.NewObjectID(), User: u.ID, StartDate: now.AddDate(0, 0, -3)}
	other := models.Booking{ID: primitive.NewObjectID(), User: primitive.NewObjectID(), StartDate: now.AddDate(0, 0, 3)}

	bookings := &fakeBookings{bookings: []models.Booking{future, past, other}}
	svc := NewBookingService(bookings, newFakeUsers(u), newFakeDestinations())
	svc.now = func() time.Time { return now }

	got, err := svc.UpcomingForUser(context.Background(), u.ID.Hex())
	if err != nil {
		t.Fatalf("UpcomingForUser: %v", err)
	}
	if len(got) != 1 || got[0].ID != future.ID {
		t.Fatalf("got %d bookings, want only the future one", len(got))
	}
	if !bookings.lastFrom.Equal(now) {
		t.Fatalf("store received cutoff %v, want %v", bookings.lastFrom, now)
	}

	t.Run("malformed user id", func(t *testing.T) {
		if _, err := svc.UpcomingForUser(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestBookingService_SearchByStatus(t *testing.T) {
	confirmed := models.Booking{ID: primitive.NewObjectID(), Status: "confirmed"}
	cancelled := models.Booking{ID: primitive.NewObjectID(), Status: "cancelled"}
	svc := NewBookingService(&fakeBookings{bookings: []models.Booking{confirmed, cancelled}}, newFakeUsers(), newFakeDestinations())

	got, err := svc.SearchByStatus(context.Background(), "confirmed")
	if err != nil {
		t.Fatalf("SearchByStatus: %v", err)
	}
	if len(got) != 1 || got[0].ID != confirmed.ID {
		t.Fatalf("got %d bookings, want the confirmed one", len(got))
	}
}

func TestBookingService_SearchByDestination(t *testing.T) {
	d := &models.Destination{ID: primitive.NewObjectID(), Name: "Kyoto"}
	b := models.Booking{ID: primitive.NewObjectID(), Destination: d.ID}
	svc := NewBookingService(&fakeBookings{bookings: []models.Booking{b}}, newFakeUsers(), newFakeDestinations(d))

	got, err := svc.SearchByDestination(context.Background(), "kyoto")
	if err != nil {
		t.Fatalf("SearchByDestination: %v", err)
	}
	if len(got) != 1 || got[0].ID != b.ID {
		t.Fatalf("got %d bookings, want the Kyoto booking", len(got))
	}

	if _, err := svc.SearchByDestination(context.Background(), "atlantis"); !errors.Is(err, ErrNoMatchingDestinations) {
		t.Fatalf("err = %v, want ErrNoMatchingDestinations", err)
	}
}

func TestBookingService_Delete(t *testing.T) {
	u := &models.User{ID: primitive.NewObjectID()}
	b := models.Booking{ID: primitive.NewObjectID(), User: u.ID}
	users := newFakeUsers(u)
	svc := NewBookingService(&fakeBookings{bookings: []models.Booking{b}}, users, newFakeDestinations())

	got, err := svc.Delete(context.Background(), b.ID.Hex())
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got.ID != b.ID {
		t.Fatalf("deleted %s, want %s", got.ID.Hex(), b.ID.Hex())
	}
	if users.removeRefCalls != 1 || users.lastRefField != repository.RefBookings {
		t.Fatalf("owner back-index: calls=%d field=%q", users.removeRefCalls, users.lastRefField)
	}
}
