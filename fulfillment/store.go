package fulfillment

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/models"
)

// ErrDuplicatePaymentRef reports that another order already holds the same
// paymentInfo.id. The unique index turns the concurrent-duplicate race into
// this error instead of a second order.
var ErrDuplicatePaymentRef = errors.New("payment reference already used")

// OrderStore is the reconciler's view of the order collection. Lookup
// methods return (nil, nil) when no document matches.
type OrderStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	FindByPaymentRef(ctx context.Context, ref string) (*models.Order, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	FindProcessingBefore(ctx context.Context, cutoff time.Time) ([]models.Order, error)
	Insert(ctx context.Context, order *models.Order) error

	// SetStatusIfNotDelivered is a compare-and-set: the write only lands
	// when the current status is not Delivered. Returns false when the
	// guard (or the id) did not match.
	SetStatusIfNotDelivered(ctx context.Context, id primitive.ObjectID, status models.OrderStatus, deliveredAt *time.Time) (bool, error)

	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// StockStore adjusts product inventory. DecrementStock must be a single
// atomic per-document update clamped at zero.
type StockStore interface {
	Exists(ctx context.Context, productID primitive.ObjectID) (bool, error)
	DecrementStock(ctx context.Context, productID primitive.ObjectID, quantity int) error
}

// EventPublisher dispatches order events to the notification pipeline.
// Every call is best-effort from the reconciler's point of view.
type EventPublisher interface {
	OrderCreated(ctx context.Context, order *models.Order) error
	OrderStatusUpdated(ctx context.Context, order *models.Order) error
	OrderReminder(ctx context.Context, order *models.Order) error
}
