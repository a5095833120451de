package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an account record. Trips, Bookings and Reviews are denormalized
// back-indexes of records owned elsewhere; they are written separately from
// the referenced record and may lag behind it.
type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username     string               `bson:"username" json:"username"`
	Email        string               `bson:"email" json:"email"`
	PasswordHash string               `bson:"password" json:"-"` // never expose the hash
	Tokens       []string             `bson:"tokens,omitempty" json:"-"`
	Trips        []primitive.ObjectID `bson:"trips,omitempty" json:"trips,omitempty"`
	Bookings     []primitive.ObjectID `bson:"bookings,omitempty" json:"bookings,omitempty"`
	Reviews      []primitive.ObjectID `bson:"reviews,omitempty" json:"reviews,omitempty"`
}

// UserUpdate carries the mutable profile fields; nil means "leave unchanged".
type UserUpdate struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}
