// ABOUTME: In-memory Store backed by go-cache for tests and ephemeral runs
// ABOUTME: Values never expire; state is lost when the process exits

package store

import (
	"sync"

	"github.com/patrickmn/go-cache"
)

// MemoryStore is a process-local Store
type MemoryStore struct {
	mu    sync.Mutex
	cache *cache.Cache
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cache: cache.New(cache.NoExpiration, 0)}
}

// Get implements Store
func (ms *MemoryStore) Get(key string) (string, bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	v, ok := ms.cache.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Set implements Store
func (ms *MemoryStore) Set(key, value string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.cache.Set(key, value, cache.NoExpiration)
	return nil
}

// SetAll implements Store
func (ms *MemoryStore) SetAll(values map[string]string, remove ...string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for _, k := range remove {
		ms.cache.Delete(k)
	}
	for k, v := range values {
		ms.cache.Set(k, v, cache.NoExpiration)
	}
	return nil
}

// Remove implements Store
func (ms *MemoryStore) Remove(keys ...string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for _, k := range keys {
		ms.cache.Delete(k)
	}
	return nil
}
