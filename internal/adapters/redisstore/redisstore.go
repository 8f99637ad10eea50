// Package redisstore keeps revoked access tokens in Redis so that every
// server instance shares one revocation list.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

var (
	_ ports.RevocationStore = (*RevocationStore)(nil)
	_ ports.HealthChecker   = (*RevocationStore)(nil)
)

const revokedKeyPrefix = "trl:jti:"

// Connect parses url, opens a client and pings it.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return client, nil
}

// RevocationStore is a Redis-backed token revocation list. Each revoked
// token ID is a key that expires with the token.
type RevocationStore struct {
	client *redis.Client
}

// NewRevocationStore wraps client. The caller owns the client's lifecycle.
func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client}
}

func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoking token: %w: %w", domain.ErrUnavailable, err)
	}
	return nil
}

// IsRevoked reports false for a missing key, including one that expired.
func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	err := s.client.Get(ctx, revokedKeyPrefix+tokenID).Err()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("reading revocation: %w: %w", domain.ErrUnavailable, err)
	}
	return true, nil
}

// Name implements ports.HealthChecker.
func (s *RevocationStore) Name() string { return "redis" }

// HealthCheck implements ports.HealthChecker.
func (s *RevocationStore) HealthCheck(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
