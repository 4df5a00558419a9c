package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is free-form feedback. Plain CRUD, no invariants beyond the id.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email   string             `bson:"email,omitempty" json:"email,omitempty"`
	Name    string             `bson:"name,omitempty" json:"name,omitempty"`
	Rating  float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	Comment string             `bson:"comment,omitempty" json:"comment,omitempty"`
}
