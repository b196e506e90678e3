package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorError(t *testing.T) {
	err := Validation("message is required")
	assert.Equal(t, "message is required", err.Error())

	wrapped := Storage("failed to persist message", errors.New("disk full"))
	assert.Equal(t, "failed to persist message: disk full", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage("database unreachable", cause)
	assert.True(t, errors.Is(err, cause))
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{name: "validation error", err: Validation("bad input"), want: CodeValidation},
		{name: "storage error", err: Storage("write failed", errors.New("x")), want: CodeStorage},
		{name: "not found error", err: NotFound("no such record"), want: CodeNotFound},
		{name: "internal error", err: Internal("boom"), want: CodeInternal},
		{name: "foreign error", err: errors.New("plain"), want: CodeUnknown},
		{name: "wrapped app error", err: fmt.Errorf("outer: %w", Validation("inner")), want: CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validation("bad")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("missing")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Storage("down", nil)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "bad input", MessageOf(Validation("bad input")))

	// Causes must not leak to clients
	err := Storage("failed to persist message", errors.New("dsn=secret"))
	assert.Equal(t, "failed to persist message", MessageOf(err))

	assert.Equal(t, "internal error", MessageOf(errors.New("raw driver error")))
}
