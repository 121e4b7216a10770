package payment

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/models"
)

type MongoPaymentStore struct {
	collection *mongo.Collection
}

func NewMongoPaymentStore(db *mongo.Database) *MongoPaymentStore {
	return &MongoPaymentStore{collection: db.Collection("payments")}
}

func (s *MongoPaymentStore) Append(ctx context.Context, payment *models.Payment) error {
	result, err := s.collection.InsertOne(ctx, payment)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		payment.ID = id
	}
	return nil
}

// FindByOrderID returns the latest record for the order, since the log can
// hold more than one callback per order.
func (s *MongoPaymentStore) FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var payment models.Payment
	err := s.collection.FindOne(ctx, bson.M{"orderId": orderID}, opts).Decode(&payment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
