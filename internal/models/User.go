package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a marketplace account. A record is created on first sign-in when
// no existing record matches the email; it is never auto-deleted.
type User struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name,omitempty" json:"name,omitempty"`
	Email   string             `bson:"email" json:"email" binding:"required,email"`
	Phone   string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string             `bson:"address,omitempty" json:"address,omitempty"`

	// Role is empty for regular accounts and "admin" once elevated. Type is
	// set alongside Role by the elevation endpoint.
	Role string `bson:"role,omitempty" json:"role,omitempty"`
	Type string `bson:"type,omitempty" json:"type,omitempty"`
}

// IsAdmin reports whether the account holds the elevated role.
func (u User) IsAdmin() bool {
	return u.Role == "admin"
}
