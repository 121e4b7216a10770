package catalog

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/apperr"
	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/models"
)

// fakeProductStore implements ProductStore in memory and records the query
// arguments the service hands to it.
type fakeProductStore struct {
	products map[primitive.ObjectID]*models.Product

	total      int64
	filtered   int64
	findResult []models.Product

	lastFilter bson.M
	lastSort   bson.D
	lastSkip   int64
	lastLimit  int64
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: map[primitive.ObjectID]*models.Product{}}
}

func (f *fakeProductStore) add(p *models.Product) *models.Product {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	f.products[p.ID] = p
	return p
}

func (f *fakeProductStore) Count(_ context.Context, filter bson.M) (int64, error) {
	if len(filter) == 0 {
		return f.total, nil
	}
	return f.filtered, nil
}

func (f *fakeProductStore) Find(_ context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.Product, error) {
	f.lastFilter = filter
	f.lastSort = sort
	f.lastSkip = skip
	f.lastLimit = limit
	return f.findResult, nil
}

func (f *fakeProductStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	clone := *product
	return &clone, nil
}

func (f *fakeProductStore) FindAll(_ context.Context) ([]models.Product, error) {
	all := []models.Product{}
	for _, p := range f.products {
		all = append(all, *p)
	}
	return all, nil
}

func (f *fakeProductStore) Insert(_ context.Context, product *models.Product) error {
	f.add(product)
	return nil
}

func (f *fakeProductStore) Replace(_ context.Context, product *models.Product) (bool, error) {
	if _, ok := f.products[product.ID]; !ok {
		return false, nil
	}
	clone := *product
	f.products[product.ID] = &clone
	return true, nil
}

func (f *fakeProductStore) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := f.products[id]; !ok {
		return false, nil
	}
	delete(f.products, id)
	return true, nil
}

func (f *fakeProductStore) SetReviews(_ context.Context, id primitive.ObjectID, reviews []models.Review, ratings float64, numOfReviews int) (bool, error) {
	product, ok := f.products[id]
	if !ok {
		return false, nil
	}
	product.Reviews = reviews
	product.Ratings = ratings
	product.NumOfReviews = numOfReviews
	return true, nil
}

type fakeReleaser struct {
	released []models.Image
}

func (f *fakeReleaser) Release(_ context.Context, images []models.Image) error {
	f.released = append(f.released, images...)
	return nil
}

func validInput() ProductInput {
	return ProductInput{
		Name:        "Test Shirt",
		Description: "A shirt",
		Price:       799,
		CuttedPrice: 1599,
		Category:    "Fashion",
		Stock:       10,
		Images:      []models.Image{{PublicID: "products/shirt", URL: "https://example.com/shirt.jpg"}},
		Brand:       models.Brand{Name: "Allen Solly", Logo: models.Image{PublicID: "brands/as", URL: "https://example.com/as.png"}},
	}
}

func TestListPassesPaginationToStore(t *testing.T) {
	store := newFakeProductStore()
	store.total = 100
	store.filtered = 20
	store.findResult = make([]models.Product, 8)
	svc := NewService(store, nil)

	values, err := url.ParseQuery("category=Fashion&sort=lowest&page=2")
	require.NoError(t, err)
	q, err := ParseListQuery(values)
	require.NoError(t, err)

	result, err := svc.List(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, int64(100), result.TotalCount)
	assert.Equal(t, int64(20), result.FilteredCount)
	assert.Equal(t, 8, result.PageSize)
	assert.Len(t, result.Items, 8)

	// Page 2 of 8 skips the first 8 ranked items
	assert.Equal(t, int64(8), store.lastSkip)
	assert.Equal(t, int64(8), store.lastLimit)
	assert.Equal(t, bson.M{"category": "Fashion"}, store.lastFilter)
	assert.Equal(t, bson.E{Key: "price", Value: 1}, store.lastSort[0])
}

func TestListEmptyPageIsNotAnError(t *testing.T) {
	store := newFakeProductStore()
	store.total = 3
	store.filtered = 3
	store.findResult = []models.Product{}
	svc := NewService(store, nil)

	q := &ListQuery{Filter: bson.M{}, Sort: sortOrder(""), Page: 99, PageSize: DefaultPageSize}

	result, err := svc.List(context.Background(), q)
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.GreaterOrEqual(t, result.FilteredCount, int64(len(result.Items)))
}

func TestGetUnknownProduct(t *testing.T) {
	svc := NewService(newFakeProductStore(), nil)

	_, err := svc.Get(context.Background(), primitive.NewObjectID())
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ProductInput)
	}{
		{"missing name", func(in *ProductInput) { in.Name = "" }},
		{"missing description", func(in *ProductInput) { in.Description = "" }},
		{"missing category", func(in *ProductInput) { in.Category = "" }},
		{"non-positive price", func(in *ProductInput) { in.Price = 0 }},
		{"negative stock", func(in *ProductInput) { in.Stock = -1 }},
		{"no images", func(in *ProductInput) { in.Images = nil }},
		{"missing brand", func(in *ProductInput) { in.Brand.Name = "" }},
		{"untitled specification", func(in *ProductInput) {
			in.Specifications = []models.Specification{{Description: "no title"}}
		}},
	}

	svc := NewService(newFakeProductStore(), nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := svc.Create(context.Background(), primitive.NewObjectID(), in)
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
		})
	}
}

func TestCreateDefaults(t *testing.T) {
	store := newFakeProductStore()
	svc := NewService(store, nil)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	product, err := svc.Create(context.Background(), primitive.NewObjectID(), validInput())
	require.NoError(t, err)

	assert.False(t, product.ID.IsZero())
	assert.Equal(t, 1, product.Warranty)
	assert.Zero(t, product.Ratings)
	assert.Empty(t, product.Reviews)
	assert.Equal(t, 2025, product.CreatedAt.Year())
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	store := newFakeProductStore()
	existing := store.add(&models.Product{
		Name:        "Old Name",
		Description: "Old description",
		Price:       100,
		CuttedPrice: 150,
		Category:    "Electronics",
		Stock:       5,
	})
	svc := NewService(store, nil)

	newPrice := 80.0
	updated, err := svc.Update(context.Background(), existing.ID, ProductUpdate{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, 80.0, updated.Price)
	assert.Equal(t, "Old Name", updated.Name)
	assert.Equal(t, "Old description", updated.Description)
}

func TestUpdateNewImagesReleaseOldOnes(t *testing.T) {
	store := newFakeProductStore()
	existing := store.add(&models.Product{
		Name:   "Camera",
		Images: []models.Image{{PublicID: "products/old", URL: "https://example.com/old.jpg"}},
	})
	releaser := &fakeReleaser{}
	svc := NewService(store, releaser)

	_, err := svc.Update(context.Background(), existing.ID, ProductUpdate{
		Images: []models.Image{{PublicID: "products/new", URL: "https://example.com/new.jpg"}},
	})
	require.NoError(t, err)

	require.Len(t, releaser.released, 1)
	assert.Equal(t, "products/old", releaser.released[0].PublicID)
}

func TestDeleteReleasesAssets(t *testing.T) {
	store := newFakeProductStore()
	existing := store.add(&models.Product{
		Name:   "Camera",
		Images: []models.Image{{PublicID: "products/cam-1"}, {PublicID: "products/cam-2"}},
		Brand:  models.Brand{Name: "Canon", Logo: models.Image{PublicID: "brands/canon"}},
	})
	releaser := &fakeReleaser{}
	svc := NewService(store, releaser)

	require.NoError(t, svc.Delete(context.Background(), existing.ID))

	assert.Empty(t, store.products)
	assert.Len(t, releaser.released, 3)
}

func TestDeleteUnknownProduct(t *testing.T) {
	svc := NewService(newFakeProductStore(), &fakeReleaser{})

	err := svc.Delete(context.Background(), primitive.NewObjectID())
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
