package collection

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
)

const (
	NameCart     = "cart"
	NameWishlist = "wishlist"
)

// Notification is the human-readable event emitted alongside a mutation.
// How it is displayed is up to the Notifier.
type Notification struct {
	ID         string    `json:"id"`
	Kind       Kind      `json:"kind"`
	Message    string    `json:"message"`
	Collection string    `json:"collection"`
	ProductID  string    `json:"product_id,omitempty"`
	At         time.Time `json:"at"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

type NotifierFunc func(ctx context.Context, n Notification)

func (f NotifierFunc) Notify(ctx context.Context, n Notification) { f(ctx, n) }

type discard struct{}

func (discard) Notify(context.Context, Notification) {}

func orDiscard(n Notifier) Notifier {
	if n == nil {
		return discard{}
	}
	return n
}

// NewNotification stamps a notification with a fresh id and time.
func NewNotification(kind Kind, collection, productID, msg string) Notification {
	return Notification{
		ID:         uuid.NewString(),
		Kind:       kind,
		Message:    msg,
		Collection: collection,
		ProductID:  productID,
		At:         time.Now().UTC(),
	}
}
