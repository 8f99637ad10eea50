package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

var _ ports.RevocationStore = (*RevocationStore)(nil)

// RevocationStore remembers revoked token IDs until their tokens would have
// expired anyway. Expired entries are swept on each Revoke.
type RevocationStore struct {
	now func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time
}

// NewRevocationStore returns an empty RevocationStore.
func NewRevocationStore() *RevocationStore {
	return &RevocationStore{now: time.Now, revoked: make(map[string]time.Time)}
}

func (s *RevocationStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, until := range s.revoked {
		if !now.Before(until) {
			delete(s.revoked, id)
		}
	}
	if ttl > 0 {
		s.revoked[tokenID] = now.Add(ttl)
	}
	return nil
}

func (s *RevocationStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.revoked[tokenID]
	return ok && s.now().Before(until), nil
}
