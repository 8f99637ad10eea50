// Package auth implements token signing and password hashing for the admin
// API: HS256 JWTs via golang-jwt and bcrypt password hashes.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/user"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

var _ ports.TokenIssuer = (*JWTIssuer)(nil)

// ErrWeakSecret is returned by NewJWTIssuer for a signing key shorter than
// minSecretLength bytes.
var ErrWeakSecret = errors.New("jwt secret must be at least 32 bytes")

const minSecretLength = 32

type tokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer signs access tokens with HMAC-SHA256. The subject is the user ID
// and the jti a random UUID used for revocation.
type JWTIssuer struct {
	key    []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTIssuer creates a JWTIssuer.
func NewJWTIssuer(secret, issuer string, ttl time.Duration) (*JWTIssuer, error) {
	if len(secret) < minSecretLength {
		return nil, ErrWeakSecret
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}
	return &JWTIssuer{key: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for u.
func (j *JWTIssuer) Issue(u *user.User) (string, ports.Claims, error) {
	now := j.now().Truncate(time.Second)
	claims := tokenClaims{
		Email: u.Email,
		Role:  u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.ID, 10),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.key)
	if err != nil {
		return "", ports.Claims{}, fmt.Errorf("signing token: %w", err)
	}
	return signed, toClaims(u.ID, &claims), nil
}

// Verify parses and checks a token. Every failure maps to
// domain.ErrUnauthorized.
func (j *JWTIssuer) Verify(token string) (ports.Claims, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return j.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ports.Claims{}, fmt.Errorf("token expired: %w", domain.ErrUnauthorized)
		}
		return ports.Claims{}, fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 || claims.ID == "" {
		return ports.Claims{}, fmt.Errorf("invalid token claims: %w", domain.ErrUnauthorized)
	}
	return toClaims(userID, &claims), nil
}

func toClaims(userID int64, c *tokenClaims) ports.Claims {
	return ports.Claims{
		TokenID:   c.ID,
		UserID:    userID,
		Email:     c.Email,
		Role:      c.Role,
		ExpiresAt: c.ExpiresAt.Time,
	}
}
