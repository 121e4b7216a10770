package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/apperr"
	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/models"
)

// reviewAggregates recomputes the denormalized rating fields from the
// review list. An empty list yields a zero rating.
func reviewAggregates(reviews []models.Review) (ratings float64, count int) {
	count = len(reviews)
	if count == 0 {
		return 0, 0
	}
	var total float64
	for _, r := range reviews {
		total += r.Rating
	}
	return total / float64(count), count
}

// SubmitReview records a customer's review. A user gets at most one review
// per product: resubmitting replaces the previous one in place.
func (s *Service) SubmitReview(ctx context.Context, productID, userID primitive.ObjectID, userName string, rating float64, comment string) error {
	if rating < 1 || rating > 5 {
		return apperr.Validation("rating must be between 1 and 5")
	}
	if comment == "" {
		return apperr.Validation("review comment is required")
	}

	product, err := s.store.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return apperr.NotFound("product not found")
	}

	review := models.Review{
		ID:      primitive.NewObjectID(),
		UserID:  userID,
		Name:    userName,
		Rating:  rating,
		Comment: comment,
	}

	reviews := product.Reviews
	replaced := false
	for i := range reviews {
		if reviews[i].UserID == userID {
			review.ID = reviews[i].ID
			reviews[i] = review
			replaced = true
			break
		}
	}
	if !replaced {
		reviews = append(reviews, review)
	}

	ratings, count := reviewAggregates(reviews)

	matched, err := s.store.SetReviews(ctx, productID, reviews, ratings, count)
	if err != nil {
		return err
	}
	if !matched {
		return apperr.NotFound("product not found")
	}
	return nil
}

func (s *Service) ListReviews(ctx context.Context, productID primitive.ObjectID) ([]models.Review, error) {
	product, err := s.store.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperr.NotFound("product not found")
	}
	return product.Reviews, nil
}

// RemoveReview deletes a review by its id and recomputes the aggregates.
// Removing an id that is not present still rewrites the aggregates, which
// is harmless.
func (s *Service) RemoveReview(ctx context.Context, productID, reviewID primitive.ObjectID) error {
	product, err := s.store.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return apperr.NotFound("product not found")
	}

	kept := make([]models.Review, 0, len(product.Reviews))
	for _, r := range product.Reviews {
		if r.ID != reviewID {
			kept = append(kept, r)
		}
	}

	ratings, count := reviewAggregates(kept)

	matched, err := s.store.SetReviews(ctx, productID, kept, ratings, count)
	if err != nil {
		return err
	}
	if !matched {
		return apperr.NotFound("product not found")
	}
	return nil
}
