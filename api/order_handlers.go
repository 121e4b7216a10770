package api

import (
	"encoding/json"
	"net/http"

	"github.com/MdSaifulIslamMSI/Flipkart-Clone/fulfillment"
	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/apperr"
	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/models"
)

type placeOrderRequest struct {
	ShippingInfo  models.ShippingInfo `json:"shippingInfo"`
	OrderItems    []models.OrderItem  `json:"orderItems"`
	PaymentInfo   models.PaymentInfo  `json:"paymentInfo"`
	ItemsPrice    float64             `json:"itemsPrice"`
	TaxPrice      float64             `json:"taxPrice"`
	ShippingPrice float64             `json:"shippingPrice"`
	TotalPrice    float64             `json:"totalPrice"`
}

func (s *Server) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}

	order, created, err := s.orders.Place(r.Context(), fulfillment.PlaceInput{
		UserID:        identityFrom(r.Context()).ID,
		ShippingInfo:  req.ShippingInfo,
		OrderItems:    req.OrderItems,
		PaymentInfo:   req.PaymentInfo,
		ItemsPrice:    req.ItemsPrice,
		TaxPrice:      req.TaxPrice,
		ShippingPrice: req.ShippingPrice,
		TotalPrice:    req.TotalPrice,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	// A duplicate payment reference answers 200 with the original order
	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	writeJSON(w, status, map[string]any{"success": true, "order": order})
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	order, err := s.orders.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "order": order})
}

func (s *Server) myOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.orders.ListByUser(r.Context(), identityFrom(r.Context()).ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "orders": orders})
}

func (s *Server) adminOrders(w http.ResponseWriter, r *http.Request) {
	orders, revenue, err := s.orders.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"totalAmount": revenue,
		"orders":      orders,
	})
}

func (s *Server) changeOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}

	if err := s.orders.ChangeStatus(r.Context(), id, req.Status); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.orders.Remove(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
