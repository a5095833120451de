package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccommodationDetails is the hotel sub-document shared by trip plans and bookings.
type AccommodationDetails struct {
	Hotel        string    `bson:"hotel,omitempty" json:"hotel,omitempty"`
	CheckInDate  time.Time `bson:"checkInDate,omitempty" json:"checkInDate,omitempty"`
	CheckOutDate time.Time `bson:"checkOutDate,omitempty" json:"checkOutDate,omitempty"`
}

// TripPlan is a user's planned visit to a destination.
type TripPlan struct {
	ID             primitive.ObjectID    `bson:"_id,omitempty" json:"id"`
	User           primitive.ObjectID    `bson:"user" json:"user"`
	Destination    primitive.ObjectID    `bson:"destination" json:"destination"`
	StartDate      time.Time             `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate        time.Time             `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Budget         float64               `bson:"budget,omitempty" json:"budget,omitempty"`
	Activities     []string              `bson:"activities,omitempty" json:"activities,omitempty"`
	Accommodations *AccommodationDetails `bson:"accommodations,omitempty" json:"accommodations,omitempty"`
}

type TripPlanUpdate struct {
	StartDate      *time.Time            `json:"startDate,omitempty"`
	EndDate        *time.Time            `json:"endDate,omitempty"`
	Budget         *float64              `json:"budget,omitempty"`
	Activities     []string              `json:"activities,omitempty"`
	Accommodations *AccommodationDetails `json:"accommodations,omitempty"`
}
