package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation is 400", Validation("bad input"), http.StatusBadRequest},
		{"invalid transition is 400", InvalidTransition("already delivered"), http.StatusBadRequest},
		{"not found is 404", NotFound("order not found"), http.StatusNotFound},
		{"upstream is 502", Upstream("gateway down", errors.New("dial tcp")), http.StatusBadGateway},
		{"plain error is 500", errors.New("boom"), http.StatusInternalServerError},
		{"nil is 500", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
		})
	}
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, IsValidation(Validation("x")))
	assert.True(t, IsNotFound(NotFound("x")))
	assert.True(t, IsInvalidTransition(InvalidTransition("x")))
	assert.True(t, IsUpstream(Upstream("x", nil)))

	plain := errors.New("boom")
	assert.False(t, IsValidation(plain))
	assert.False(t, IsNotFound(plain))
	assert.False(t, IsInvalidTransition(plain))
	assert.False(t, IsUpstream(plain))
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("placing order: %w", NotFound("order not found"))

	assert.True(t, IsNotFound(wrapped))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "order not found", PublicMessage(NotFound("order not found")))

	// Internal details never leak to callers
	assert.Equal(t, "internal server error", PublicMessage(errors.New("mongo: no reachable servers")))
}

func TestUpstreamWrapsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Upstream("payment gateway request failed", cause)

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "payment gateway request failed")
	assert.Contains(t, err.Error(), "connection refused")
	// The cause stays out of the caller-facing message
	assert.Equal(t, "payment gateway request failed", PublicMessage(err))
}

func TestConstructorsFormat(t *testing.T) {
	err := NotFound("product %s no longer exists", "64f0")
	assert.Equal(t, "product 64f0 no longer exists", err.Message)
}
