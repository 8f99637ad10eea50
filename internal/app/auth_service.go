package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/user"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/metrics"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

// Compile-time check that AuthService implements ports.AuthService.
var _ ports.AuthService = (*AuthService)(nil)

var errInvalidCredentials = fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)

// AuthService implements ports.AuthService.
type AuthService struct {
	users       ports.UserRepository
	hasher      ports.PasswordHasher
	tokens      ports.TokenIssuer
	revocations ports.RevocationStore
	registry    *catalog.Registry
	metrics     *metrics.Metrics
	logger      *slog.Logger
	now         func() time.Time
}

// NewAuthService creates an AuthService.
func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	revocations ports.RevocationStore,
	reg *catalog.Registry,
	m *metrics.Metrics,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:       users,
		hasher:      hasher,
		tokens:      tokens,
		revocations: revocations,
		registry:    reg,
		metrics:     m,
		logger:      orDiscard(logger),
		now:         time.Now,
	}
}

// Login checks the credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, creds user.Credentials) (*ports.Session, error) {
	s.logger.InfoContext(ctx, "login attempt")

	if err := creds.Validate(); err != nil {
		s.metrics.ObserveValidation("credentials", err)
		s.metrics.ObserveLogin(false)
		return nil, err
	}

	u, err := s.users.GetByEmail(ctx, creds.Email)
	if errors.Is(err, domain.ErrNotFound) {
		s.metrics.ObserveLogin(false)
		return nil, errInvalidCredentials
	}
	if err != nil {
		logFailure(ctx, s.logger, "failed to look up user", "Login", err)
		return nil, err
	}

	if err := s.hasher.Compare(u.PasswordHash, creds.Password); err != nil {
		s.metrics.ObserveLogin(false)
		s.logger.WarnContext(ctx, "password mismatch",
			slog.String("operation", "Login"),
			slog.Int64("user_id", u.ID),
		)
		return nil, errInvalidCredentials
	}

	token, claims, err := s.tokens.Issue(u)
	if err != nil {
		logFailure(ctx, s.logger, "failed to issue token", "Login", err, slog.Int64("user_id", u.ID))
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	s.metrics.ObserveLogin(true)
	s.logger.InfoContext(ctx, "login succeeded",
		slog.Int64("user_id", u.ID),
		slog.String("role", u.Role),
	)
	return &ports.Session{Token: token, ExpiresAt: claims.ExpiresAt, User: u}, nil
}

// Logout revokes the token until it would have expired.
func (s *AuthService) Logout(ctx context.Context, claims ports.Claims) error {
	s.logger.InfoContext(ctx, "logout", slog.Int64("user_id", claims.UserID))

	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.revocations.Revoke(ctx, claims.TokenID, ttl); err != nil {
		logFailure(ctx, s.logger, "failed to revoke token", "Logout", err, slog.Int64("user_id", claims.UserID))
		return fmt.Errorf("revoking token: %w", err)
	}
	return nil
}

// Authenticate verifies token and rejects revoked tokens.
func (s *AuthService) Authenticate(ctx context.Context, token string) (ports.Claims, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return ports.Claims{}, err
	}

	start := s.now()
	revoked, err := s.revocations.IsRevoked(ctx, claims.TokenID)
	s.metrics.ObserveRevocationCheck(s.now().Sub(start).Seconds())
	if err != nil {
		logFailure(ctx, s.logger, "failed to check token revocation", "Authenticate", err,
			slog.Int64("user_id", claims.UserID),
		)
		return ports.Claims{}, fmt.Errorf("checking revocation: %w", err)
	}
	if revoked {
		return ports.Claims{}, fmt.Errorf("%w: token revoked", domain.ErrUnauthorized)
	}
	return claims, nil
}

// EnsureAdmin creates an admin account for email unless one exists. An
// existing account is returned unchanged, whatever its role.
func (s *AuthService) EnsureAdmin(ctx context.Context, name, email, password string) (*user.User, bool, error) {
	s.logger.InfoContext(ctx, "ensuring admin account")

	if err := (user.Credentials{Email: email, Password: password}).Validate(); err != nil {
		return nil, false, err
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		if !existing.IsAdmin() {
			s.logger.WarnContext(ctx, "seed email belongs to a non-admin account",
				slog.Int64("user_id", existing.ID),
				slog.String("role", existing.Role),
			)
		}
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		logFailure(ctx, s.logger, "failed to look up admin", "EnsureAdmin", err)
		return nil, false, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, false, fmt.Errorf("hashing password: %w", err)
	}

	admin := &user.User{Name: name, Email: email, PasswordHash: hash, Role: catalog.RoleAdmin}
	if err := admin.Validate(s.registry); err != nil {
		return nil, false, err
	}

	created, err := s.users.Create(ctx, admin)
	if err != nil {
		logFailure(ctx, s.logger, "failed to create admin", "EnsureAdmin", err)
		return nil, false, err
	}

	s.logger.InfoContext(ctx, "admin account created", slog.Int64("user_id", created.ID))
	return created, true, nil
}
