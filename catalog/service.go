// Package catalog implements the product side of the storefront: the
// listing query engine, admin CRUD, and customer reviews with their
// aggregate rating bookkeeping.
package catalog

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/apperr"
	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/models"
)

type Service struct {
	store  ProductStore
	images ImageReleaser
	now    func() time.Time
}

func NewService(store ProductStore, images ImageReleaser) *Service {
	return &Service{store: store, images: images, now: time.Now}
}

// ListResult is the listing answer: one page of products plus the counts
// the storefront needs to render pagination.
type ListResult struct {
	Items         []models.Product
	TotalCount    int64
	FilteredCount int64
	PageSize      int
}

// List runs a parsed listing query. TotalCount is the unfiltered collection
// size; FilteredCount is how many documents match the filters before
// pagination. A page past the end yields an empty Items slice, not an error.
func (s *Service) List(ctx context.Context, q *ListQuery) (*ListResult, error) {
	total, err := s.store.Count(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	filtered, err := s.store.Count(ctx, q.Filter)
	if err != nil {
		return nil, err
	}

	items, err := s.store.Find(ctx, q.Filter, q.Sort, q.Offset(), int64(q.PageSize))
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Items:         items,
		TotalCount:    total,
		FilteredCount: filtered,
		PageSize:      q.PageSize,
	}, nil
}

func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	product, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperr.NotFound("product not found")
	}
	return product, nil
}

// AdminList returns every product without pagination, for the dashboard.
func (s *Service) AdminList(ctx context.Context) ([]models.Product, error) {
	return s.store.FindAll(ctx)
}

// ProductInput carries the fields an admin supplies when creating a
// product. Image and logo references are produced by the external upload
// collaborator before this service is involved.
type ProductInput struct {
	Name           string
	Description    string
	Highlights     []string
	Specifications []models.Specification
	Price          float64
	CuttedPrice    float64
	Images         []models.Image
	Brand          models.Brand
	Category       string
	Stock          int
	Warranty       int
}

func (in *ProductInput) validate() error {
	switch {
	case in.Name == "":
		return apperr.Validation("product name is required")
	case in.Description == "":
		return apperr.Validation("product description is required")
	case in.Category == "":
		return apperr.Validation("product category is required")
	case in.Price <= 0:
		return apperr.Validation("product price must be positive")
	case in.CuttedPrice <= 0:
		return apperr.Validation("original price must be positive")
	case in.Stock < 0:
		return apperr.Validation("stock cannot be negative")
	case len(in.Images) == 0:
		return apperr.Validation("at least one product image is required")
	case in.Brand.Name == "":
		return apperr.Validation("brand name is required")
	}
	for _, spec := range in.Specifications {
		if spec.Title == "" {
			return apperr.Validation("specification title is required")
		}
	}
	return nil
}

func (s *Service) Create(ctx context.Context, createdBy primitive.ObjectID, in ProductInput) (*models.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	warranty := in.Warranty
	if warranty == 0 {
		warranty = 1
	}

	product := &models.Product{
		Name:           in.Name,
		Description:    in.Description,
		Highlights:     in.Highlights,
		Specifications: in.Specifications,
		Price:          in.Price,
		CuttedPrice:    in.CuttedPrice,
		Images:         in.Images,
		Brand:          in.Brand,
		Category:       in.Category,
		Stock:          in.Stock,
		Warranty:       warranty,
		Reviews:        []models.Review{},
		CreatedBy:      createdBy,
		CreatedAt:      s.now(),
	}

	if err := s.store.Insert(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// ProductUpdate holds the fields of an update request; nil pointers and nil
// slices mean "leave unchanged".
type ProductUpdate struct {
	Name           *string
	Description    *string
	Highlights     []string
	Specifications []models.Specification
	Price          *float64
	CuttedPrice    *float64
	Images         []models.Image
	Brand          *models.Brand
	Category       *string
	Stock          *int
	Warranty       *int
}

func (s *Service) Update(ctx context.Context, id primitive.ObjectID, in ProductUpdate) (*models.Product, error) {
	product, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperr.NotFound("product not found")
	}

	var replaced []models.Image

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Highlights != nil {
		product.Highlights = in.Highlights
	}
	if in.Specifications != nil {
		for _, spec := range in.Specifications {
			if spec.Title == "" {
				return nil, apperr.Validation("specification title is required")
			}
		}
		product.Specifications = in.Specifications
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, apperr.Validation("product price must be positive")
		}
		product.Price = *in.Price
	}
	if in.CuttedPrice != nil {
		product.CuttedPrice = *in.CuttedPrice
	}
	if in.Images != nil {
		replaced = append(replaced, product.Images...)
		product.Images = in.Images
	}
	if in.Brand != nil {
		replaced = append(replaced, product.Brand.Logo)
		product.Brand = *in.Brand
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, apperr.Validation("stock cannot be negative")
		}
		product.Stock = *in.Stock
	}
	if in.Warranty != nil {
		product.Warranty = *in.Warranty
	}

	matched, err := s.store.Replace(ctx, product)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, apperr.NotFound("product not found")
	}

	s.releaseImages(ctx, replaced)
	return product, nil
}

// Delete removes the product and asks the image host to drop its assets.
// Asset cleanup is best-effort.
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	product, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperr.NotFound("product not found")
	}

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("product not found")
	}

	assets := append([]models.Image{}, product.Images...)
	if product.Brand.Logo.PublicID != "" {
		assets = append(assets, product.Brand.Logo)
	}
	s.releaseImages(ctx, assets)
	return nil
}

func (s *Service) releaseImages(ctx context.Context, images []models.Image) {
	if s.images == nil || len(images) == 0 {
		return
	}
	if err := s.images.Release(ctx, images); err != nil {
		log.Printf("Failed to release %d image(s): %v", len(images), err)
	}
}
