package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is a listing a user has put under consideration. Items are
// removed one at a time by the cart endpoint or in bulk when a payment
// finalizes.
type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	ListingID string             `bson:"listingId,omitempty" json:"listingId,omitempty"`
	Title     string             `bson:"title,omitempty" json:"title,omitempty"`
	Price     float64            `bson:"price,omitempty" json:"price,omitempty"`
}
