package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MdSaifulIslamMSI/Flipkart-Clone/catalog"
	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/apperr"
	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/models"
)

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	query, err := catalog.ParseListQuery(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := s.catalog.List(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":               true,
		"products":              result.Items,
		"productsCount":         result.TotalCount,
		"resultPerPage":         result.PageSize,
		"filteredProductsCount": result.FilteredCount,
	})
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	product, err := s.catalog.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "product": product})
}

func (s *Server) adminProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.AdminList(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "products": products})
}

type productRequest struct {
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	Highlights     []string               `json:"highlights"`
	Specifications []models.Specification `json:"specifications"`
	Price          float64                `json:"price"`
	CuttedPrice    float64                `json:"cuttedPrice"`
	Images         []models.Image         `json:"images"`
	Brand          models.Brand           `json:"brand"`
	Category       string                 `json:"category"`
	Stock          int                    `json:"stock"`
	Warranty       int                    `json:"warranty"`
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}

	product, err := s.catalog.Create(r.Context(), identityFrom(r.Context()).ID, catalog.ProductInput{
		Name:           req.Name,
		Description:    req.Description,
		Highlights:     req.Highlights,
		Specifications: req.Specifications,
		Price:          req.Price,
		CuttedPrice:    req.CuttedPrice,
		Images:         req.Images,
		Brand:          req.Brand,
		Category:       req.Category,
		Stock:          req.Stock,
		Warranty:       req.Warranty,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "product": product})
}

type productUpdateRequest struct {
	Name           *string                `json:"name"`
	Description    *string                `json:"description"`
	Highlights     []string               `json:"highlights"`
	Specifications []models.Specification `json:"specifications"`
	Price          *float64               `json:"price"`
	CuttedPrice    *float64               `json:"cuttedPrice"`
	Images         []models.Image         `json:"images"`
	Brand          *models.Brand          `json:"brand"`
	Category       *string                `json:"category"`
	Stock          *int                   `json:"stock"`
	Warranty       *int                   `json:"warranty"`
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req productUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}

	product, err := s.catalog.Update(r.Context(), id, catalog.ProductUpdate{
		Name:           req.Name,
		Description:    req.Description,
		Highlights:     req.Highlights,
		Specifications: req.Specifications,
		Price:          req.Price,
		CuttedPrice:    req.CuttedPrice,
		Images:         req.Images,
		Brand:          req.Brand,
		Category:       req.Category,
		Stock:          req.Stock,
		Warranty:       req.Warranty,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "product": product})
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.catalog.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Product deleted successfully"})
}

type reviewRequest struct {
	ProductID string  `json:"productId"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
}

func (s *Server) submitReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		writeError(w, apperr.Validation("invalid product id"))
		return
	}

	user := identityFrom(r.Context())
	if err := s.catalog.SubmitReview(r.Context(), productID, user.ID, user.Name, req.Rating, req.Comment); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) listReviews(w http.ResponseWriter, r *http.Request) {
	productID, err := primitive.ObjectIDFromHex(r.URL.Query().Get("id"))
	if err != nil {
		writeError(w, apperr.Validation("invalid product id"))
		return
	}

	reviews, err := s.catalog.ListReviews(r.Context(), productID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "reviews": reviews})
}

func (s *Server) removeReview(w http.ResponseWriter, r *http.Request) {
	productID, err := primitive.ObjectIDFromHex(r.URL.Query().Get("productId"))
	if err != nil {
		writeError(w, apperr.Validation("invalid product id"))
		return
	}
	reviewID, err := primitive.ObjectIDFromHex(r.URL.Query().Get("id"))
	if err != nil {
		writeError(w, apperr.Validation("invalid review id"))
		return
	}

	if err := s.catalog.RemoveReview(r.Context(), productID, reviewID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func pathID(r *http.Request, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)[name])
	if err != nil {
		return primitive.NilObjectID, apperr.Validation("invalid %s", name)
	}
	return id, nil
}
