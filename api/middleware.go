package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Identity is installed by the fronting auth layer via trusted headers.
type Identity struct {
	ID    primitive.ObjectID
	Name  string
	Email string
	Role  string
}

type contextKey int

const identityKey contextKey = iota

func identityFrom(ctx context.Context) Identity {
	id, _ := ctx.Value(identityKey).(Identity)
	return id
}

func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := primitive.ObjectIDFromHex(r.Header.Get("X-User-Id"))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"success": false,
				"message": "please login to access this resource",
			})
			return
		}

		identity := Identity{
			ID:    userID,
			Name:  r.Header.Get("X-User-Name"),
			Email: r.Header.Get("X-User-Email"),
			Role:  r.Header.Get("X-User-Role"),
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey, identity)))
	})
}

func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return s.requireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identityFrom(r.Context()).Role != "admin" {
			writeJSON(w, http.StatusForbidden, map[string]any{
				"success": false,
				"message": "you are not allowed to access this resource",
			})
			return
		}
		next.ServeHTTP(w, r)
	}))
}

var (
	requestsPerIP      = make(map[string]int)
	requestsPerIPMutex = &sync.Mutex{}
)

const requestsPerMinute = 100

// rateLimiter caps each IP at requestsPerMinute requests with a sliding
// one-minute decay per request.
func rateLimiter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr

		requestsPerIPMutex.Lock()
		if requestsPerIP[ip] >= requestsPerMinute {
			requestsPerIPMutex.Unlock()
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		requestsPerIP[ip]++
		requestsPerIPMutex.Unlock()

		time.AfterFunc(time.Minute, func() {
			requestsPerIPMutex.Lock()
			defer requestsPerIPMutex.Unlock()
			requestsPerIP[ip]--
		})

		next.ServeHTTP(w, r)
	})
}
