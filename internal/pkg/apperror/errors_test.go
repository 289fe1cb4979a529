// internal/pkg/apperror/errors_test.go
package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("bad"), http.StatusBadRequest},
		{"not_found", NotFound("Product"), http.StatusNotFound},
		{"unauthorized", Unauthorized("no"), http.StatusUnauthorized},
		{"conflict", Conflict("taken"), http.StatusConflict},
		{"duplicate_order_number", ErrDuplicateOrderNumber, http.StatusConflict},
		{"storage", Storage("save order", errors.New("boom")), http.StatusInternalServerError},
		{"foreign", errors.New("plain"), http.StatusInternalServerError},
		{"wrapped_validation", fmt.Errorf("create: %w", Validation("bad")), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestIsDuplicateOrderNumber(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", ErrDuplicateOrderNumber)
	assert.True(t, errors.Is(wrapped, ErrDuplicateOrderNumber))
	assert.True(t, IsKind(wrapped, KindDuplicateOrderNumber))
	assert.False(t, errors.Is(Validation("x"), ErrDuplicateOrderNumber))
}

func TestPublicMessage_HidesStorageDetail(t *testing.T) {
	err := Storage("save order", errors.New("pq: connection refused"))

	assert.Equal(t, "Internal server error", PublicMessage(err))
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, "Product not found", PublicMessage(NotFound("Product")))
}
