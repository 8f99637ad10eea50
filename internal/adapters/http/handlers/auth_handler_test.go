package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/user"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
	"github.com/jsamuelsen11/mentorship-admin/mocks"
)

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	svc := mocks.NewMockAuthService(t)
	h := handlers.NewAuthHandler(svc)

	svc.EXPECT().Login(mock.Anything, user.Credentials{Email: "admin@example.com", Password: "s3cret!"}).
		Return(&ports.Session{
			Token:     "signed.jwt.token",
			ExpiresAt: testTime.Add(time.Hour),
			User:      &user.User{ID: 1, Name: "Admin", Email: "admin@example.com", Role: catalog.RoleAdmin},
		}, nil)

	rec := httptest.NewRecorder()
	h.Login(rec, newJSONRequest(t, http.MethodPost, "/api/v1/auth/login",
		dto.LoginRequest{Email: "admin@example.com", Password: "s3cret!"}))

	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	resp := decodeJSON[dto.SessionResponse](t, rec)
	assert.Equal(t, "signed.jwt.token", resp.AccessToken)
	assert.Equal(t, catalog.RoleAdmin, resp.User.Role)
}

func TestLogin_FlagsOnlyFailingFields(t *testing.T) {
	t.Parallel()
	h := handlers.NewAuthHandler(mocks.NewMockAuthService(t))

	rec := httptest.NewRecorder()
	h.Login(rec, newJSONRequest(t, http.MethodPost, "/api/v1/auth/login",
		dto.LoginRequest{Email: "admin@example.com", Password: "123"}))

	requireProblemFields(t, rec, "body.password")
}

func TestLogin_BadCredentials(t *testing.T) {
	t.Parallel()
	svc := mocks.NewMockAuthService(t)
	h := handlers.NewAuthHandler(svc)

	svc.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized))

	rec := httptest.NewRecorder()
	h.Login(rec, newJSONRequest(t, http.MethodPost, "/api/v1/auth/login",
		dto.LoginRequest{Email: "admin@example.com", Password: "wrong-password"}))

	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestLogout_RevokesCallerToken(t *testing.T) {
	t.Parallel()
	svc := mocks.NewMockAuthService(t)
	h := handlers.NewAuthHandler(svc)

	claims := ports.Claims{TokenID: "jti-1", UserID: 1, ExpiresAt: testTime.Add(time.Hour)}
	svc.EXPECT().Logout(mock.Anything, claims).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", http.NoBody)
	req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

func TestLogout_WithoutClaims(t *testing.T) {
	t.Parallel()
	h := handlers.NewAuthHandler(mocks.NewMockAuthService(t))

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", http.NoBody))

	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestMe(t *testing.T) {
	t.Parallel()
	h := handlers.NewAuthHandler(mocks.NewMockAuthService(t))

	claims := ports.Claims{UserID: 5, Email: "m@example.com", Role: catalog.RoleManager, ExpiresAt: testTime}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", http.NoBody)
	req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	rec := httptest.NewRecorder()
	h.Me(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, float64(5), resp["user_id"])
	assert.Equal(t, catalog.RoleManager, resp["role"])
	assert.Equal(t, "2026-02-12T15:04:05Z", resp["expires_at"])
}
