package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Listing is a rentable property. The create endpoint stores the posted
// document verbatim, so clients may attach fields beyond these; this struct
// covers the ones the service and its tests rely on.
type Listing struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Bedrooms    int                `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms   int                `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
}
