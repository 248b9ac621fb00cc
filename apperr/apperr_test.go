package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaxonomy(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, BadRequest("x").Status)
	assert.Equal(t, "ValidationError", BadRequest("x").Type)
	assert.Equal(t, http.StatusNotFound, NotFound("x").Status)
	assert.Equal(t, "ResourceNotFoundError", NotFound("x").Type)
	assert.Equal(t, http.StatusForbidden, Forbidden("x").Status)
	assert.Equal(t, http.StatusInternalServerError, Internal("x").Status)
}

func TestFrom(t *testing.T) {
	typed := NotFound("missing")
	assert.Same(t, typed, From(typed))

	wrapped := From(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, wrapped.Status)
	assert.Equal(t, "boom", wrapped.Message)

	assert.Equal(t, "An unexpected error occurred", From(nil).Message)
}
