// Package notifier consumes order events and delivers customer
// notifications. Delivery is simulated by logging; a real deployment would
// plug an email/SMS provider into sendNotification.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	kafkago "github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/kafka"
	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/models"
)

// recipient is the slice of the user document the notifier needs. The auth
// module owns the users collection; this is a read-only view of it.
type recipient struct {
	Name  string `bson:"name"`
	Email string `bson:"email"`
}

type Notifier struct {
	users   *mongo.Collection
	readers []*kafkago.Reader
}

func New(db *mongo.Database, kafkaBrokers []string) *Notifier {
	return &Notifier{
		users: db.Collection("users"),
		readers: []*kafkago.Reader{
			kafka.NewKafkaReader(kafkaBrokers, kafka.TopicOrderCreated, "notifier"),
			kafka.NewKafkaReader(kafkaBrokers, kafka.TopicOrderStatusUpdated, "notifier"),
			kafka.NewKafkaReader(kafkaBrokers, kafka.TopicOrderReminder, "notifier"),
		},
	}
}

// Run consumes every topic until the context is cancelled.
func (n *Notifier) Run(ctx context.Context) {
	defer func() {
		for _, reader := range n.readers {
			reader.Close()
		}
	}()

	log.Println("Notifier is waiting for order events...")

	for _, reader := range n.readers {
		go func(r *kafkago.Reader) {
			for {
				select {
				case <-ctx.Done():
					return
				default:
					msg, err := r.ReadMessage(ctx)
					if err != nil {
						if ctx.Err() != nil {
							return
						}
						log.Printf("Error reading message: %v", err)
						continue
					}
					n.handle(ctx, msg, r.Config().Topic)
				}
			}
		}(reader)

		log.Printf("Started listener for topic: %s", reader.Config().Topic)
	}

	<-ctx.Done()
}

func (n *Notifier) handle(ctx context.Context, msg kafkago.Message, topic string) {
	var order models.Order
	if err := json.Unmarshal(msg.Value, &order); err != nil {
		log.Printf("Failed to unmarshal order event: %v", err)
		return
	}

	var message string
	switch topic {
	case kafka.TopicOrderCreated:
		message = fmt.Sprintf(
			"Order Confirmed: Your order #%s for ₹%.2f has been placed. We'll let you know when it ships!",
			order.ID.Hex(), order.TotalPrice,
		)
	case kafka.TopicOrderReminder:
		message = fmt.Sprintf(
			"Order Update: Your order #%s is still being processed. Thanks for your patience!",
			order.ID.Hex(),
		)
	case kafka.TopicOrderStatusUpdated:
		switch order.OrderStatus {
		case models.OrderStatusShipped:
			message = fmt.Sprintf(
				"Order Shipped: Your order #%s has been shipped! You should receive it within 3-5 business days.",
				order.ID.Hex(),
			)
		case models.OrderStatusDelivered:
			message = fmt.Sprintf(
				"Order Delivered: Your order #%s has been delivered. Thank you for shopping with us!",
				order.ID.Hex(),
			)
		default:
			message = fmt.Sprintf(
				"Order Update: Your order #%s status has been updated to: %s",
				order.ID.Hex(), order.OrderStatus,
			)
		}
	default:
		log.Printf("Unknown topic: %s", topic)
		return
	}

	n.sendNotification(ctx, order, message)
}

func (n *Notifier) sendNotification(ctx context.Context, order models.Order, message string) {
	to := recipient{Name: "customer", Email: order.UserID.Hex()}

	err := n.users.FindOne(ctx, bson.M{"_id": order.UserID}).Decode(&to)
	if err != nil && err != mongo.ErrNoDocuments {
		log.Printf("Failed to look up user %s: %v", order.UserID.Hex(), err)
	}

	log.Printf("NOTIFICATION TO %s <%s>: %s", to.Name, to.Email, message)
}
