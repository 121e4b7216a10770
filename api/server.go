// Package api is the HTTP layer: routing, identity middleware, rate
// limiting, and JSON handlers over the catalog, fulfillment, and payment
// services. Authentication itself is an external collaborator; this layer
// only trusts the identity headers it installs.
package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MdSaifulIslamMSI/Flipkart-Clone/catalog"
	"github.com/MdSaifulIslamMSI/Flipkart-Clone/fulfillment"
	"github.com/MdSaifulIslamMSI/Flipkart-Clone/payment"
)

type Server struct {
	catalog     *catalog.Service
	orders      *fulfillment.Service
	payments    *payment.Service
	frontendURL string
}

func NewServer(catalogSvc *catalog.Service, orderSvc *fulfillment.Service, paymentSvc *payment.Service, frontendURL string) *Server {
	return &Server{
		catalog:     catalogSvc,
		orders:      orderSvc,
		payments:    paymentSvc,
		frontendURL: frontendURL,
	}
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(rateLimiter)

	// Public catalog routes
	router.HandleFunc("/products", s.listProducts).Methods(http.MethodGet)
	router.HandleFunc("/product/{id}", s.getProduct).Methods(http.MethodGet)
	router.HandleFunc("/reviews", s.listReviews).Methods(http.MethodGet)

	// Customer routes
	router.Handle("/review", s.requireUser(http.HandlerFunc(s.submitReview))).Methods(http.MethodPut)
	router.Handle("/reviews", s.requireUser(http.HandlerFunc(s.removeReview))).Methods(http.MethodDelete)
	router.Handle("/order/new", s.requireUser(http.HandlerFunc(s.placeOrder))).Methods(http.MethodPost)
	router.Handle("/order/{id}", s.requireUser(http.HandlerFunc(s.getOrder))).Methods(http.MethodGet)
	router.Handle("/orders/me", s.requireUser(http.HandlerFunc(s.myOrders))).Methods(http.MethodGet)
	router.Handle("/payment/process", s.requireUser(http.HandlerFunc(s.processPayment))).Methods(http.MethodPost)
	router.Handle("/payment/status/{id}", s.requireUser(http.HandlerFunc(s.paymentStatus))).Methods(http.MethodGet)

	// Gateway callback authenticates itself via its checksum
	router.HandleFunc("/callback", s.paymentCallback).Methods(http.MethodPost)

	// Admin routes
	router.Handle("/admin/products", s.requireAdmin(http.HandlerFunc(s.adminProducts))).Methods(http.MethodGet)
	router.Handle("/admin/product/new", s.requireAdmin(http.HandlerFunc(s.createProduct))).Methods(http.MethodPost)
	router.Handle("/admin/product/{id}", s.requireAdmin(http.HandlerFunc(s.updateProduct))).Methods(http.MethodPut)
	router.Handle("/admin/product/{id}", s.requireAdmin(http.HandlerFunc(s.deleteProduct))).Methods(http.MethodDelete)
	router.Handle("/admin/orders", s.requireAdmin(http.HandlerFunc(s.adminOrders))).Methods(http.MethodGet)
	router.Handle("/admin/order/{id}", s.requireAdmin(http.HandlerFunc(s.changeOrderStatus))).Methods(http.MethodPut)
	router.Handle("/admin/order/{id}", s.requireAdmin(http.HandlerFunc(s.deleteOrder))).Methods(http.MethodDelete)

	return router
}
