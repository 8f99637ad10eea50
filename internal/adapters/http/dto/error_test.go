package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{"ErrNotFound maps to 404", domain.ErrNotFound, http.StatusNotFound, "Not Found"},
		{"ErrValidation maps to 400", domain.NewValidationError("email", domain.MsgInvalidEmail), http.StatusBadRequest, "Bad Request"},
		{"ErrUnauthorized maps to 401", domain.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
		{"ErrConflict maps to 409", domain.ErrConflict, http.StatusConflict, "Conflict"},
		{"ErrForbidden maps to 403", domain.ErrForbidden, http.StatusForbidden, "Forbidden"},
		{"ErrUnavailable maps to 502", domain.ErrUnavailable, http.StatusBadGateway, "Bad Gateway"},
		{"unknown error maps to 500", errors.New("oops"), http.StatusInternalServerError, "Internal Server Error"},
		{"wrapped ErrNotFound preserves mapping", fmt.Errorf("staff 42: %w", domain.ErrNotFound), http.StatusNotFound, "Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/staff/42", http.NoBody)
			got := dto.NewErrorResponse(r, tt.err)

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantTitle, got.Title)
		})
	}
}

func TestNewErrorResponse_Fields(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", http.NoBody)
	err := fmt.Errorf("invoice %q already exists: %w", "INV-1", domain.ErrConflict)

	got := dto.NewErrorResponse(r, err)

	assert.Equal(t, "about:blank", got.Type)
	assert.Equal(t, "/api/v1/invoices", got.Instance)
	assert.Equal(t, err.Error(), got.Detail)
	assert.Nil(t, got.Errors)
}

func TestNewErrorResponse_HidesInternalDetail(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", http.NoBody)
	got := dto.NewErrorResponse(r, errors.New("pq: password authentication failed"))

	assert.Equal(t, "internal server error", got.Detail)
}

func TestNewErrorResponse_ValidationErrors(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"email":                     domain.MsgInvalidEmail,
		"line_items[0].description": domain.MsgRequired,
		"query.active":              "must be true or false",
		"path.id":                   "must be a valid integer",
	}}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", http.NoBody)
	got := dto.NewErrorResponse(r, verr)

	require.Len(t, got.Errors, 4)
	locations := make([]string, 0, len(got.Errors))
	for _, d := range got.Errors {
		locations = append(locations, d.Location)
	}
	assert.Equal(t, []string{
		"body.email",
		"body.line_items[0].description",
		"path.id",
		"query.active",
	}, locations)
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/staff", http.NoBody)

	dto.WriteErrorResponse(w, r, domain.NewValidationError("first_name", domain.MsgRequired))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "body.first_name", resp.Errors[0].Location)
	assert.Equal(t, domain.MsgRequired, resp.Errors[0].Message)
}

func TestWriteProblem(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", http.NoBody)

	dto.WriteProblem(w, r, http.StatusGatewayTimeout, "request exceeded 1s")

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Gateway Timeout", resp.Title)
	assert.Equal(t, "request exceeded 1s", resp.Detail)
	assert.Equal(t, "/api/v1/dashboard", resp.Instance)
}
