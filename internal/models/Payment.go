package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a settled checkout. It is created exactly once per
// finalize operation and is immutable afterwards. CartItems holds the ids
// of the cart entries the payment settled; every one of them is deleted as
// part of the same finalize.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email" binding:"required,email"`
	Amount        float64            `bson:"amount" json:"amount" binding:"required"`
	Currency      string             `bson:"currency,omitempty" json:"currency,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CartItems     []string           `bson:"cartItems" json:"cartItems" binding:"required"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
