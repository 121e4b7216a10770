package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/apperr"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// writeError maps an error onto the taxonomy's status code. Unexpected
// errors answer with a generic message; the detail stays in the log.
func writeError(w http.ResponseWriter, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
	}
	writeJSON(w, status, map[string]any{
		"success": false,
		"message": apperr.PublicMessage(err),
	})
}
