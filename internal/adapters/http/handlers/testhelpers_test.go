package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withID(r *http.Request, id string) *http.Request {
	return withChiParams(r, map[string]string{"id": id})
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

func newJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, jsonBody(t, body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result), "body = %s", rec.Body.String())
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body = %s", rec.Body.String())
}

// requireProblemFields asserts a 400 problem response naming each location.
func requireProblemFields(t *testing.T, rec *httptest.ResponseRecorder, locations ...string) {
	t.Helper()
	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	resp := decodeJSON[dto.ErrorResponse](t, rec)
	got := make([]string, 0, len(resp.Errors))
	for _, e := range resp.Errors {
		got = append(got, e.Location)
	}
	assert.ElementsMatch(t, locations, got)
}

var errInvalid = domain.NewValidationError("email", domain.MsgInvalidEmail)
