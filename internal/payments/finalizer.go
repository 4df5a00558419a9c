package payments

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"realstate/internal/models"
	"realstate/internal/repository"
)

var (
	// ErrNoCartItems rejects a payment that settles nothing.
	ErrNoCartItems = errors.New("payment must reference at least one cart item")
	// ErrBadCartItem rejects a settled-items list containing an id that is
	// not a valid record key.
	ErrBadCartItem = errors.New("cart item id is not a valid record id")
)

// FinalizeResult reports both halves of the settle operation.
type FinalizeResult struct {
	PaymentID        string `json:"insertedId"`
	DeletedCartCount int64  `json:"deletedCount"`
}

// Finalizer persists a confirmed payment and removes the cart entries it
// settles as one logical unit.
type Finalizer struct {
	Store repository.Store
}

func NewFinalizer(store repository.Store) *Finalizer {
	return &Finalizer{Store: store}
}

// Finalize inserts the payment record and deletes every cart item in its
// settled-items list. Both steps run inside a store transaction where the
// deployment supports one. The delete is scoped to the paying user's email
// so a client cannot clear another user's cart by guessing ids, and
// deleting ids that are already gone only lowers the count, never errors.
func (f *Finalizer) Finalize(ctx context.Context, payment models.Payment) (FinalizeResult, error) {
	if len(payment.CartItems) == 0 {
		return FinalizeResult{}, ErrNoCartItems
	}
	for _, id := range payment.CartItems {
		if _, err := primitive.ObjectIDFromHex(id); err != nil {
			return FinalizeResult{}, ErrBadCartItem
		}
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now().UTC()
	}

	var result FinalizeResult
	err := f.Store.WithTransaction(ctx, func(ctx context.Context) error {
		id, err := f.Store.Insert(ctx, repository.Payments, payment)
		if err != nil {
			return err
		}
		deleted, err := f.Store.DeleteMany(ctx, repository.Carts, repository.Filter{
			"_id":   repository.In(payment.CartItems),
			"email": payment.Email,
		})
		if err != nil {
			return err
		}
		result = FinalizeResult{PaymentID: id, DeletedCartCount: deleted.DeletedCount}
		return nil
	})
	return result, err
}
