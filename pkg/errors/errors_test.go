package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{Validation("bad"), http.StatusBadRequest},
		{Auth("no token", nil), http.StatusUnauthorized},
		{Forbidden("disabled"), http.StatusForbidden},
		{NotFound("gone"), http.StatusNotFound},
		{Conflict("duplicate"), http.StatusBadRequest},
		{Storage("down", nil), http.StatusInternalServerError},
		{Provider("down", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.HTTPStatus(), string(tt.err.Kind))
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage("graph store unavailable", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
	// The client-safe message stays free of the cause
	assert.NotContains(t, err.Message, "connection refused")
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindAuth, KindOf(Auth("no token", nil)))
	assert.Equal(t, KindStorage, KindOf(errors.New("raw driver error")))

	wrapped := fmt.Errorf("handler: %w", NotFound("gone"))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
}

func TestAsError(t *testing.T) {
	orig := Validation("bad field")
	assert.Same(t, orig, AsError(orig))

	raw := errors.New("socket closed")
	converted := AsError(raw)
	assert.Equal(t, KindStorage, converted.Kind)
	assert.Equal(t, "internal error", converted.Message)
	assert.ErrorIs(t, converted, raw)
}

func TestIsKind(t *testing.T) {
	assert.True(t, IsKind(Forbidden("disabled"), KindForbidden))
	assert.False(t, IsKind(Forbidden("disabled"), KindAuth))
	assert.False(t, IsKind(errors.New("plain"), KindAuth))
}
