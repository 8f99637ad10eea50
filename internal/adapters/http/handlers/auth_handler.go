package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

// AuthHandler handles sign-in and sign-out.
type AuthHandler struct {
	svc ports.AuthService
}

// NewAuthHandler creates a new AuthHandler with the given service port.
func NewAuthHandler(svc ports.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// meResponse describes the caller of GET /auth/me.
type meResponse struct {
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ExpiresAt string `json:"expires_at"`
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.svc.Login(r.Context(), req.Credentials())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, dto.ToSessionResponse(session))
}

// Logout handles POST /api/v1/auth/logout. The presented token stays
// revoked until it would have expired.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		dto.WriteErrorResponse(w, r, domain.ErrUnauthorized)
		return
	}

	if err := h.svc.Logout(r.Context(), claims); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/v1/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		dto.WriteErrorResponse(w, r, domain.ErrUnauthorized)
		return
	}

	writeJSON(w, r, http.StatusOK, meResponse{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.UTC().Format(timeLayout),
	})
}
