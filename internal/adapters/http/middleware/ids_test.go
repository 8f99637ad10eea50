package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/http/middleware"
)

func serveIDs(t *testing.T, requestID, correlationID string) (*httptest.ResponseRecorder, string, string) {
	t.Helper()

	var gotRequestID, gotCorrelationID string
	h := middleware.Chain(middleware.RequestID(), middleware.CorrelationID())(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			gotRequestID = middleware.RequestIDFromContext(r.Context())
			gotCorrelationID = middleware.CorrelationIDFromContext(r.Context())
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}
	if correlationID != "" {
		req.Header.Set("X-Correlation-ID", correlationID)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec, gotRequestID, gotCorrelationID
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	t.Parallel()

	rec, id, _ := serveIDs(t, "", "")

	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, rec.Header().Get("X-Request-ID"))
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	t.Parallel()

	rec, id, _ := serveIDs(t, "req-abc-123", "")

	assert.Equal(t, "req-abc-123", id)
	assert.Equal(t, "req-abc-123", rec.Header().Get("X-Request-ID"))
}

func TestRequestID_ReplacesMalformed(t *testing.T) {
	t.Parallel()

	for name, incoming := range map[string]string{
		"spaces":    "has spaces in it",
		"too long":  strings.Repeat("a", 129),
		"non-ascii": "req-é",
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, id, _ := serveIDs(t, incoming, "")

			assert.NotEqual(t, incoming, id)
			_, err := uuid.Parse(id)
			assert.NoError(t, err)
		})
	}
}

func TestCorrelationID_FallsBackToRequestID(t *testing.T) {
	t.Parallel()

	rec, reqID, corrID := serveIDs(t, "req-1", "")

	assert.Equal(t, reqID, corrID)
	assert.Equal(t, "req-1", rec.Header().Get("X-Correlation-ID"))
}

func TestCorrelationID_ReusesIncoming(t *testing.T) {
	t.Parallel()

	rec, reqID, corrID := serveIDs(t, "req-1", "corr-9")

	assert.Equal(t, "req-1", reqID)
	assert.Equal(t, "corr-9", corrID)
	assert.Equal(t, "corr-9", rec.Header().Get("X-Correlation-ID"))
}

func TestIDsFromContext_EmptyWithoutMiddleware(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	assert.Empty(t, middleware.RequestIDFromContext(ctx))
	assert.Empty(t, middleware.CorrelationIDFromContext(ctx))
}
