package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/logging"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

type claimsKey struct{}

// WithClaims returns a copy of ctx carrying the caller's verified claims.
func WithClaims(ctx context.Context, c ports.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// ClaimsFromContext returns the claims stored by Authenticate.
func ClaimsFromContext(ctx context.Context) (ports.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(ports.Claims)
	return c, ok
}

var (
	errMissingToken = fmt.Errorf("%w: missing bearer token", domain.ErrUnauthorized)
	errNoClaims     = fmt.Errorf("%w: not authenticated", domain.ErrUnauthorized)
)

// Authenticate requires an "Authorization: Bearer <token>" header accepted
// by auth. Rejected requests get a 401 with a WWW-Authenticate challenge;
// a revocation store outage surfaces as its own error status.
func Authenticate(auth ports.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				w.Header().Set("WWW-Authenticate", `Bearer`)
				dto.WriteErrorResponse(w, r, errMissingToken)
				return
			}

			claims, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				logging.FromContext(r.Context()).WarnContext(r.Context(), "authentication failed",
					slog.Any("error", err),
				)
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				dto.WriteErrorResponse(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireRole admits callers whose role is one of roles and answers 403
// otherwise. It must run after Authenticate.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				dto.WriteErrorResponse(w, r, errNoClaims)
				return
			}
			if !slices.Contains(roles, claims.Role) {
				dto.WriteErrorResponse(w, r,
					fmt.Errorf("%w: role %q may not %s %s", domain.ErrForbidden, claims.Role, r.Method, r.URL.Path))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
