package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/apperr"
)

func (s *Server) processPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount float64 `json:"amount"`
		Email  string  `json:"email"`
		Phone  string  `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}

	response, err := s.payments.Initiate(r.Context(), req.Amount, req.Email, req.Phone)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// paymentCallback receives the gateway's form-encoded result, records it,
// and bounces the customer back to the storefront.
func (s *Server) paymentCallback(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, apperr.Validation("invalid callback payload"))
		return
	}

	params := make(map[string]string, len(r.PostForm))
	for key := range r.PostForm {
		params[key] = r.PostForm.Get(key)
	}

	txnID, err := s.payments.RecordCallback(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	http.Redirect(w, r, s.frontendURL+"/order/success?reference="+txnID, http.StatusFound)
}

func (s *Server) paymentStatus(w http.ResponseWriter, r *http.Request) {
	result, err := s.payments.Status(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "payment": result})
}
