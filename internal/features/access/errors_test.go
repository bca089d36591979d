package access

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StatusCode_ForEachResolverError_ReturnsExpectedStatus(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{ErrUnauthenticated, http.StatusUnauthorized},
		{ErrNotFound, http.StatusNotFound},
		{ErrAccessDenied, http.StatusForbidden},
		{ErrInsufficientRole, http.StatusForbidden},
		{ErrConflict, http.StatusBadRequest},
		{ErrExpired, http.StatusBadRequest},
		{ErrInvalidState, http.StatusBadRequest},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, StatusCode(test.err), "error: %v", test.err)
	}
}

func Test_StatusCode_WithWrappedError_UnwrapsToMappedStatus(t *testing.T) {
	wrapped := fmt.Errorf("accepting invitation: %w", ErrInvalidState)

	assert.Equal(t, http.StatusBadRequest, StatusCode(wrapped))
}

func Test_StatusCode_WithUnknownError_ReturnsInternalServerError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("connection reset")))
	assert.False(t, IsAccessError(errors.New("connection reset")))
	assert.True(t, IsAccessError(ErrNotFound))
}
