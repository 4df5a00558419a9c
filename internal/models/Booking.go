package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is created and deleted independently of payment. Like listings,
// booking documents are stored verbatim; these are the expected fields.
type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	ListingID string             `bson:"listingId,omitempty" json:"listingId,omitempty"`
	Status    string             `bson:"status,omitempty" json:"status,omitempty"`
	Date      string             `bson:"date,omitempty" json:"date,omitempty"`
}
