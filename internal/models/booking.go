package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FlightDetails is the flight sub-document on a booking.
type FlightDetails struct {
	Airline       string    `bson:"airline,omitempty" json:"airline,omitempty"`
	FlightNumber  string    `bson:"flightNumber,omitempty" json:"flightNumber,omitempty"`
	DepartureDate time.Time `bson:"departureDate,omitempty" json:"departureDate,omitempty"`
	ArrivalDate   time.Time `bson:"arrivalDate,omitempty" json:"arrivalDate,omitempty"`
}

// Booking is a user's confirmed-or-pending reservation for a destination.
// Status is a free-text label, e.g. "Pending" or "Confirmed".
type Booking struct {
	ID                   primitive.ObjectID    `bson:"_id,omitempty" json:"id"`
	User                 primitive.ObjectID    `bson:"user" json:"user"`
	Destination          primitive.ObjectID    `bson:"destination" json:"destination"`
	StartDate            time.Time             `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate              time.Time             `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Status               string                `bson:"status,omitempty" json:"status,omitempty"`
	FlightDetails        *FlightDetails        `bson:"flightDetails,omitempty" json:"flightDetails,omitempty"`
	AccommodationDetails *AccommodationDetails `bson:"accommodationDetails,omitempty" json:"accommodationDetails,omitempty"`
}

type BookingUpdate struct {
	StartDate            *time.Time            `json:"startDate,omitempty"`
	EndDate              *time.Time            `json:"endDate,omitempty"`
	Status               *string               `json:"status,omitempty"`
	FlightDetails        *FlightDetails        `json:"flightDetails,omitempty"`
	AccommodationDetails *AccommodationDetails `json:"accommodationDetails,omitempty"`
}
