package render_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostguard/frostguard/internal/http/render"
)

type costCenterRequest struct {
	Name     string `json:"name" validate:"required"`
	Currency string `json:"currency" validate:"required,len=3"`
	Limit    int    `json:"limit" validate:"gte=0"`
}

func decode(body string) (*httptest.ResponseRecorder, error) {
	var req costCenterRequest

	err := render.Decode(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)), &req)

	rec := httptest.NewRecorder()
	if err != nil {
		render.Invalid(rec, err)
	}

	return rec, err
}

func TestDecode_Valid(t *testing.T) {
	_, err := decode(`{"name":"Montevideo","currency":"UYU"}`)
	assert.NoError(t, err)
}

func TestDecode_ValidationDetails(t *testing.T) {
	rec, err := decode(`{"currency":"UY","limit":-1}`)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var got struct {
		Error   string              `json:"error"`
		Details []render.FieldError `json:"details"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

	assert.Equal(t, "validation failed", got.Error)
	assert.ElementsMatch(t, []render.FieldError{
		{Field: "name", Message: "is required"},
		{Field: "currency", Message: "must be exactly 3 characters"},
		{Field: "limit", Message: "must be at least 0"},
	}, got.Details)
}

func TestDecode_MalformedJSON(t *testing.T) {
	rec, err := decode(`{`)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "decoding body")
}
