package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review rates a destination on a 1–5 scale.
type Review struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User         primitive.ObjectID `bson:"user" json:"user"`
	Destination  primitive.ObjectID `bson:"destination" json:"destination"`
	Rating       float64            `bson:"rating" json:"rating"`
	Comment      string             `bson:"comment,omitempty" json:"comment,omitempty"`
	HelpfulVotes int                `bson:"helpfulVotes,omitempty" json:"helpfulVotes,omitempty"`
}

type ReviewUpdate struct {
	Rating       *float64 `json:"rating,omitempty"`
	Comment      *string  `json:"comment,omitempty"`
	HelpfulVotes *int     `json:"helpfulVotes,omitempty"`
}
