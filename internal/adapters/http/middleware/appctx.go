package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/mentorship-admin/internal/app/context"
)

// AppContext attaches a fresh RequestContext to every request so services
// can memoize lookups (e.g. mentor existence) for its duration. It runs
// after CorrelationID so the wrapped context carries both ids.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			next.ServeHTTP(w, r.WithContext(appctx.WithRequestContext(r.Context(), rc)))
		})
	}
}
