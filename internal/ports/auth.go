package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain/user"
)

// Claims is the verified content of an access token.
type Claims struct {
	// TokenID is the unique token identifier used for revocation.
	TokenID   string
	UserID    int64
	Email     string
	Role      string
	ExpiresAt time.Time
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}

// TokenIssuer signs and verifies access tokens.
type TokenIssuer interface {
	Issue(u *user.User) (token string, claims Claims, err error)
	// Verify returns domain.ErrUnauthorized for a malformed, expired or
	// wrongly signed token.
	Verify(token string) (Claims, error)
}

// RevocationStore remembers revoked token IDs until they would have expired.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
