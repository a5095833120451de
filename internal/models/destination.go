package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Destination is a place users can review, plan trips to and book.
type Destination struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	Category    string               `bson:"category,omitempty" json:"category,omitempty"`
	Budget      float64              `bson:"budget,omitempty" json:"budget,omitempty"`
	ImageURL    string               `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Attractions []string             `bson:"attractions,omitempty" json:"attractions,omitempty"`
	Reviews     []primitive.ObjectID `bson:"reviews,omitempty" json:"reviews,omitempty"`
}

type DestinationUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Attractions []string `json:"attractions,omitempty"`
}
