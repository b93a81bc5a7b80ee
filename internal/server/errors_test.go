package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-coach/internal/validation"
)

func TestErrNotFound(t *testing.T) {
	err := &ErrNotFound{Resource: "role", ID: "astronaut"}
	assert.Equal(t, "role not found: astronaut", err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "target_role", Message: "failed notblank validation"}
	assert.Equal(t, "validation error: target_role - failed notblank validation", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"schema error", &validation.Error{Message: "resume does not match schema"}, http.StatusBadRequest},
		{"body too large", &http.MaxBytesError{Limit: maxBodyBytes}, http.StatusRequestEntityTooLarge},
		{"wrapped not found", fmt.Errorf("lookup: %w", &ErrNotFound{Resource: "role", ID: "x"}), http.StatusNotFound},
		{"wrapped validation", fmt.Errorf("decode: %w", &ErrValidation{Field: "body"}), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
