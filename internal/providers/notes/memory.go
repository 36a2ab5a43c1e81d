package notes

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// MemoryStore is a process-local store for tests and throwaway sessions.
type MemoryStore struct {
	cache *cache.Cache
}

// NewMemoryStore creates an empty store. Items never expire and no janitor
// goroutine is started.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cache: cache.New(cache.NoExpiration, 0)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	if x, found := s.cache.Get(key); found {
		return x.(string), true, nil
	}
	return "", false, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.cache.Set(key, value, cache.NoExpiration)
	return nil
}

func (s *MemoryStore) Close() error {
	s.cache.Flush()
	return nil
}
