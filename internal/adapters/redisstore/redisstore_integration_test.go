//go:build integration

package redisstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/redisstore"
)

type RevocationStoreSuite struct {
	suite.Suite
	container *tcredis.RedisContainer
	store     *redisstore.RevocationStore
	cleanup   func()
}

func TestRevocationStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RevocationStoreSuite))
}

func (s *RevocationStoreSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	s.Require().NoError(err)
	s.container = container

	url, err := container.ConnectionString(ctx)
	s.Require().NoError(err)

	client, err := redisstore.Connect(ctx, url)
	s.Require().NoError(err)
	s.store = redisstore.NewRevocationStore(client)
	s.cleanup = func() {
		_ = client.Close()
		_ = container.Terminate(context.Background())
	}
}

func (s *RevocationStoreSuite) TearDownSuite() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RevocationStoreSuite) TestRevokeAndCheck() {
	ctx := context.Background()

	revoked, err := s.store.IsRevoked(ctx, "jti-a")
	s.Require().NoError(err)
	s.False(revoked)

	s.Require().NoError(s.store.Revoke(ctx, "jti-a", time.Minute))
	revoked, err = s.store.IsRevoked(ctx, "jti-a")
	s.Require().NoError(err)
	s.True(revoked)
}

func (s *RevocationStoreSuite) TestEntryExpires() {
	ctx := context.Background()

	s.Require().NoError(s.store.Revoke(ctx, "jti-b", time.Second))
	s.Eventually(func() bool {
		revoked, err := s.store.IsRevoked(ctx, "jti-b")
		return err == nil && !revoked
	}, 5*time.Second, 100*time.Millisecond)
}

func (s *RevocationStoreSuite) TestNonPositiveTTLIsNoop() {
	ctx := context.Background()

	s.Require().NoError(s.store.Revoke(ctx, "jti-c", 0))
	revoked, err := s.store.IsRevoked(ctx, "jti-c")
	s.Require().NoError(err)
	s.False(revoked)
}

func (s *RevocationStoreSuite) TestHealthCheck() {
	s.Equal("redis", s.store.Name())
	s.NoError(s.store.HealthCheck(context.Background()))
}
