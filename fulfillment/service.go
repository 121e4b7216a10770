// Package fulfillment implements order placement and the status lifecycle,
// including inventory reconciliation when an order is delivered.
package fulfillment

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/apperr"
	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/models"
)

type Service struct {
	orders OrderStore
	stock  StockStore
	events EventPublisher
	now    func() time.Time
}

func NewService(orders OrderStore, stock StockStore, events EventPublisher) *Service {
	return &Service{orders: orders, stock: stock, events: events, now: time.Now}
}

type PlaceInput struct {
	UserID        primitive.ObjectID
	ShippingInfo  models.ShippingInfo
	OrderItems    []models.OrderItem
	PaymentInfo   models.PaymentInfo
	ItemsPrice    float64
	TaxPrice      float64
	ShippingPrice float64
	TotalPrice    float64
}

func (in *PlaceInput) validate() error {
	switch {
	case in.UserID.IsZero():
		return apperr.Validation("user is required")
	case len(in.OrderItems) == 0:
		return apperr.Validation("order must have at least one item")
	case in.PaymentInfo.ID == "":
		return apperr.Validation("payment reference is required")
	case in.ShippingInfo.Address == "":
		return apperr.Validation("shipping address is required")
	}
	for _, item := range in.OrderItems {
		if item.ProductID.IsZero() {
			return apperr.Validation("order item is missing its product reference")
		}
		if item.Quantity < 1 {
			return apperr.Validation("order item quantity must be at least 1")
		}
	}
	return nil
}

// Place creates an order once per payment reference. Re-submitting the same
// paymentInfo.id returns the already persisted order with created=false.
// The order-created notification is best-effort: a publish failure is
// logged and never fails the placement.
func (s *Service) Place(ctx context.Context, in PlaceInput) (order *models.Order, created bool, err error) {
	if err := in.validate(); err != nil {
		return nil, false, err
	}

	existing, err := s.orders.FindByPaymentRef(ctx, in.PaymentInfo.ID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	now := s.now()
	order = &models.Order{
		UserID:        in.UserID,
		ShippingInfo:  in.ShippingInfo,
		OrderItems:    in.OrderItems,
		PaymentInfo:   in.PaymentInfo,
		PaidAt:        now,
		ItemsPrice:    in.ItemsPrice,
		TaxPrice:      in.TaxPrice,
		ShippingPrice: in.ShippingPrice,
		TotalPrice:    in.TotalPrice,
		OrderStatus:   models.OrderStatusProcessing,
		CreatedAt:     now,
	}

	err = s.orders.Insert(ctx, order)
	if errors.Is(err, ErrDuplicatePaymentRef) {
		// Lost the race against a concurrent duplicate; hand back the winner.
		existing, err := s.orders.FindByPaymentRef(ctx, in.PaymentInfo.ID)
		if err != nil {
			return nil, false, err
		}
		if existing == nil {
			return nil, false, apperr.NotFound("order not found")
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if err := s.events.OrderCreated(ctx, order); err != nil {
		log.Printf("Failed to publish order created event: %v", err)
	}

	return order, true, nil
}

// ChangeStatus advances an order. Delivered is terminal: once there, every
// further change is rejected. Any other caller-supplied status string is
// accepted as-is.
//
// The Delivered transition first checks that every referenced product still
// exists (a missing product fails the whole transition before anything is
// written), then claims the order with a compare-and-set guarded on
// status != Delivered so concurrent delivery requests cannot decrement
// stock twice, and only then applies the clamped stock decrements.
func (s *Service) ChangeStatus(ctx context.Context, orderID primitive.ObjectID, newStatus string) error {
	if newStatus == "" {
		return apperr.Validation("status is required")
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperr.NotFound("order not found")
	}
	if order.OrderStatus == models.OrderStatusDelivered {
		return apperr.InvalidTransition("this order has already been delivered")
	}

	status := models.OrderStatus(newStatus)

	if status != models.OrderStatusDelivered {
		updated, err := s.orders.SetStatusIfNotDelivered(ctx, orderID, status, nil)
		if err != nil {
			return err
		}
		if !updated {
			return apperr.InvalidTransition("this order has already been delivered")
		}
		order.OrderStatus = status
		s.publishStatusUpdate(ctx, order)
		return nil
	}

	for _, item := range order.OrderItems {
		exists, err := s.stock.Exists(ctx, item.ProductID)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.NotFound("product %s referenced by item %q no longer exists", item.ProductID.Hex(), item.Name)
		}
	}

	deliveredAt := s.now()
	updated, err := s.orders.SetStatusIfNotDelivered(ctx, orderID, models.OrderStatusDelivered, &deliveredAt)
	if err != nil {
		return err
	}
	if !updated {
		return apperr.InvalidTransition("this order has already been delivered")
	}

	for _, item := range order.OrderItems {
		if err := s.stock.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			return err
		}
	}

	order.OrderStatus = models.OrderStatusDelivered
	order.DeliveredAt = &deliveredAt
	s.publishStatusUpdate(ctx, order)
	return nil
}

func (s *Service) publishStatusUpdate(ctx context.Context, order *models.Order) {
	if err := s.events.OrderStatusUpdated(ctx, order); err != nil {
		log.Printf("Failed to publish order status event: %v", err)
	}
}

// Remove hard-deletes an order. There is no soft-delete or audit trail.
func (s *Service) Remove(ctx context.Context, orderID primitive.ObjectID) error {
	deleted, err := s.orders.Delete(ctx, orderID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("order not found")
	}
	return nil
}

func (s *Service) Get(ctx context.Context, orderID primitive.ObjectID) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.NotFound("order not found")
	}
	return order, nil
}

func (s *Service) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	return s.orders.FindByUser(ctx, userID)
}

// ListAll returns every order plus the revenue sum for the admin dashboard.
func (s *Service) ListAll(ctx context.Context) ([]models.Order, float64, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	var revenue float64
	for _, order := range orders {
		revenue += order.TotalPrice
	}
	return orders, revenue, nil
}

// PendingReminders emits a reminder event for each order still Processing
// before the cutoff. Returns how many reminders were dispatched.
func (s *Service) PendingReminders(ctx context.Context, cutoff time.Time) (int, error) {
	orders, err := s.orders.FindProcessingBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	sent := 0
	for i := range orders {
		if err := s.events.OrderReminder(ctx, &orders[i]); err != nil {
			log.Printf("Failed to publish reminder for order %s: %v", orders[i].ID.Hex(), err)
			continue
		}
		sent++
	}
	return sent, nil
}
