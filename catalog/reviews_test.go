package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/apperr"
	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/models"
)

func TestReviewAggregates(t *testing.T) {
	tests := []struct {
		name    string
		ratings []float64
		mean    float64
	}{
		{"empty list yields zero", nil, 0},
		{"single review", []float64{4}, 4},
		{"mean of several", []float64{5, 4, 3}, 4},
		{"fractional mean", []float64{5, 4}, 4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := make([]models.Review, len(tt.ratings))
			for i, r := range tt.ratings {
				reviews[i] = models.Review{Rating: r}
			}

			mean, count := reviewAggregates(reviews)
			assert.Equal(t, tt.mean, mean)
			assert.Equal(t, len(tt.ratings), count)
		})
	}
}

func TestSubmitReviewAppendsAndAggregates(t *testing.T) {
	store := newFakeProductStore()
	product := store.add(&models.Product{Name: "Phone"})
	svc := NewService(store, nil)

	require.NoError(t, svc.SubmitReview(context.Background(), product.ID, primitive.NewObjectID(), "Raj", 5, "great"))
	require.NoError(t, svc.SubmitReview(context.Background(), product.ID, primitive.NewObjectID(), "Priya", 3, "okay"))

	stored := store.products[product.ID]
	assert.Len(t, stored.Reviews, 2)
	assert.Equal(t, 2, stored.NumOfReviews)
	assert.Equal(t, 4.0, stored.Ratings)
}

func TestSubmitReviewReplacesOwnReview(t *testing.T) {
	store := newFakeProductStore()
	product := store.add(&models.Product{Name: "Phone"})
	svc := NewService(store, nil)
	user := primitive.NewObjectID()

	require.NoError(t, svc.SubmitReview(context.Background(), product.ID, user, "Raj", 2, "meh"))
	firstID := store.products[product.ID].Reviews[0].ID

	// Resubmission replaces, never appends
	require.NoError(t, svc.SubmitReview(context.Background(), product.ID, user, "Raj", 5, "grew on me"))

	stored := store.products[product.ID]
	require.Len(t, stored.Reviews, 1)
	assert.Equal(t, 1, stored.NumOfReviews)
	assert.Equal(t, 5.0, stored.Ratings)
	assert.Equal(t, "grew on me", stored.Reviews[0].Comment)
	assert.Equal(t, firstID, stored.Reviews[0].ID)
}

func TestSubmitReviewValidation(t *testing.T) {
	store := newFakeProductStore()
	product := store.add(&models.Product{Name: "Phone"})
	svc := NewService(store, nil)

	tests := []struct {
		name    string
		rating  float64
		comment string
	}{
		{"rating too low", 0, "fine"},
		{"rating too high", 6, "fine"},
		{"empty comment", 4, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.SubmitReview(context.Background(), product.ID, primitive.NewObjectID(), "Raj", tt.rating, tt.comment)
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
		})
	}
}

func TestSubmitReviewUnknownProduct(t *testing.T) {
	svc := NewService(newFakeProductStore(), nil)

	err := svc.SubmitReview(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), "Raj", 4, "fine")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestRemoveReviewRecomputesAggregates(t *testing.T) {
	store := newFakeProductStore()
	keep := models.Review{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID(), Rating: 5}
	drop := models.Review{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID(), Rating: 1}
	product := store.add(&models.Product{
		Name:         "Phone",
		Reviews:      []models.Review{keep, drop},
		Ratings:      3,
		NumOfReviews: 2,
	})
	svc := NewService(store, nil)

	require.NoError(t, svc.RemoveReview(context.Background(), product.ID, drop.ID))

	stored := store.products[product.ID]
	require.Len(t, stored.Reviews, 1)
	assert.Equal(t, keep.ID, stored.Reviews[0].ID)
	assert.Equal(t, 5.0, stored.Ratings)
	assert.Equal(t, 1, stored.NumOfReviews)
}

func TestRemoveLastReviewZeroesRating(t *testing.T) {
	store := newFakeProductStore()
	only := models.Review{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID(), Rating: 4}
	product := store.add(&models.Product{
		Name:         "Phone",
		Reviews:      []models.Review{only},
		Ratings:      4,
		NumOfReviews: 1,
	})
	svc := NewService(store, nil)

	require.NoError(t, svc.RemoveReview(context.Background(), product.ID, only.ID))

	stored := store.products[product.ID]
	assert.Empty(t, stored.Reviews)
	assert.Zero(t, stored.Ratings)
	assert.Zero(t, stored.NumOfReviews)
}

func TestListReviewsUnknownProduct(t *testing.T) {
	svc := NewService(newFakeProductStore(), nil)

	_, err := svc.ListReviews(context.Background(), primitive.NewObjectID())
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
