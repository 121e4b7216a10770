package fulfillment

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/models"
)

type MongoOrderStore struct {
	collection *mongo.Collection
}

func NewMongoOrderStore(db *mongo.Database) *MongoOrderStore {
	return &MongoOrderStore{collection: db.Collection("orders")}
}

// EnsureIndexes creates the unique payment-reference index that backs
// idempotent order creation.
func (s *MongoOrderStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "paymentInfo.id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *MongoOrderStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *MongoOrderStore) FindByPaymentRef(ctx context.Context, ref string) (*models.Order, error) {
	var order models.Order
	err := s.collection.FindOne(ctx, bson.M{"paymentInfo.id": ref}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *MongoOrderStore) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	return s.findOrders(ctx, bson.M{"user": userID})
}

func (s *MongoOrderStore) FindAll(ctx context.Context) ([]models.Order, error) {
	return s.findOrders(ctx, bson.M{})
}

func (s *MongoOrderStore) FindProcessingBefore(ctx context.Context, cutoff time.Time) ([]models.Order, error) {
	return s.findOrders(ctx, bson.M{
		"orderStatus": models.OrderStatusProcessing,
		"createdAt":   bson.M{"$lt": cutoff},
	})
}

func (s *MongoOrderStore) findOrders(ctx context.Context, filter bson.M) ([]models.Order, error) {
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *MongoOrderStore) Insert(ctx context.Context, order *models.Order) error {
	result, err := s.collection.InsertOne(ctx, order)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicatePaymentRef
	}
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = id
	}
	return nil
}

func (s *MongoOrderStore) SetStatusIfNotDelivered(ctx context.Context, id primitive.ObjectID, status models.OrderStatus, deliveredAt *time.Time) (bool, error) {
	set := bson.M{"orderStatus": status}
	if deliveredAt != nil {
		set["deliveredAt"] = *deliveredAt
	}

	result, err := s.collection.UpdateOne(
		ctx,
		bson.M{
			"_id":         id,
			"orderStatus": bson.M{"$ne": models.OrderStatusDelivered},
		},
		bson.M{"$set": set},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (s *MongoOrderStore) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

type MongoStockStore struct {
	collection *mongo.Collection
}

func NewMongoStockStore(db *mongo.Database) *MongoStockStore {
	return &MongoStockStore{collection: db.Collection("products")}
}

func (s *MongoStockStore) Exists(ctx context.Context, productID primitive.ObjectID) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, bson.M{"_id": productID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DecrementStock subtracts quantity from the product's stock in one
// pipeline update, clamped at zero so over-ordering can never drive the
// count negative.
func (s *MongoStockStore) DecrementStock(ctx context.Context, productID primitive.ObjectID, quantity int) error {
	pipeline := bson.A{
		bson.M{"$set": bson.M{
			"stock": bson.M{"$max": bson.A{
				0,
				bson.M{"$subtract": bson.A{"$stock", quantity}},
			}},
		}},
	}
	_, err := s.collection.UpdateOne(ctx, bson.M{"_id": productID}, pipeline)
	return err
}
