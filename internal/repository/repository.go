package repository

import (
	"context"
	"errors"
)

// Collection names used across the service.
const (
	Users    = "users"
	Listings = "listings"
	Recent   = "recent"
	Carts    = "carts"
	Bookings = "bookings"
	Reviews  = "reviews"
	Payments = "payments"
)

var (
	// ErrNotFound is returned by FindOne when no document matches.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID is returned when a filter names an _id that cannot parse
	// as a record key.
	ErrInvalidID = errors.New("invalid record id")
)

// Filter is a structural predicate over document fields: field name to
// expected value. A value of type In matches when the field equals any of
// its elements. Values under "_id" must be valid record keys.
type Filter map[string]any

// In is the set-membership condition for Filter values.
type In []string

// UpdateResult reports the outcome of an Update call.
type UpdateResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

// DeleteResult reports the outcome of a Delete or DeleteMany call.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// Store is CRUD access to named document collections. Individual calls
// carry no cross-call transaction guarantee; callers needing one compose
// their calls inside WithTransaction.
type Store interface {
	// Find decodes every matching document into out, which must be a
	// pointer to a slice.
	Find(ctx context.Context, collection string, filter Filter, out any) error
	// FindOne decodes the first matching document into out, or returns
	// ErrNotFound.
	FindOne(ctx context.Context, collection string, filter Filter, out any) error
	// Insert stores doc and returns the generated id.
	Insert(ctx context.Context, collection string, doc any) (string, error)
	// Update applies set to the first matching document. With upsert, a
	// document is created from the filter and set when nothing matches.
	Update(ctx context.Context, collection string, filter Filter, set map[string]any, upsert bool) (UpdateResult, error)
	// Delete removes the first matching document.
	Delete(ctx context.Context, collection string, filter Filter) (DeleteResult, error)
	// DeleteMany removes every matching document. Absent matches are a
	// zero-count success, not an error.
	DeleteMany(ctx context.Context, collection string, filter Filter) (DeleteResult, error)
	// WithTransaction runs fn so that Store calls made with the context it
	// receives commit or abort together, where the backing deployment
	// supports it. See the concrete implementations for their guarantees.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
