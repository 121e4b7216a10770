package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/models"
)

// ProductStore is the catalog's view of the product collection. Lookup
// methods return (nil, nil) when no document matches.
type ProductStore interface {
	Count(ctx context.Context, filter bson.M) (int64, error)
	Find(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	Insert(ctx context.Context, product *models.Product) error
	Replace(ctx context.Context, product *models.Product) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	SetReviews(ctx context.Context, id primitive.ObjectID, reviews []models.Review, ratings float64, numOfReviews int) (bool, error)
}

// ImageReleaser asks the external image host to drop assets that are no
// longer referenced. Failures are logged, never surfaced.
type ImageReleaser interface {
	Release(ctx context.Context, images []models.Image) error
}
