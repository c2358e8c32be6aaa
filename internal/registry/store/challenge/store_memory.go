// Package challenge tracks live challenge instances. A challenge wraps an
// in-flight oracle poll plus claim bookkeeping, so it is runtime state and
// kept in memory only; the registry's persistent state lives in the item
// store.
package challenge

import (
	"sync"

	"curio/internal/registry/ports"
	"curio/pkg/domain"
)

// MemoryStore maps item ids to their active challenge and keeps resolved
// instances addressable by challenge id so voters can claim after the
// registry has dropped its item association.
type MemoryStore struct {
	mu     sync.RWMutex
	byItem map[domain.ItemID]ports.Challenge
	byID   map[string]ports.Challenge
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byItem: make(map[domain.ItemID]ports.Challenge),
		byID:   make(map[string]ports.Challenge),
	}
}

// Put records ch as the active challenge for itemID.
func (s *MemoryStore) Put(itemID domain.ItemID, ch ports.Challenge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byItem[itemID] = ch
	s.byID[ch.ID()] = ch
}

// Get returns the active challenge for itemID, if any.
func (s *MemoryStore) Get(itemID domain.ItemID) (ports.Challenge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ch, ok := s.byItem[itemID]
	return ch, ok
}

// Has reports whether itemID has an active challenge.
func (s *MemoryStore) Has(itemID domain.ItemID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byItem[itemID]
	return ok
}

// Delete drops the item association. The instance stays reachable by its own
// id for voter claims; it is never reused for another challenge.
func (s *MemoryStore) Delete(itemID domain.ItemID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byItem, itemID)
}

// Lookup returns a challenge by its own id, active or resolved.
func (s *MemoryStore) Lookup(challengeID string) (ports.Challenge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ch, ok := s.byID[challengeID]
	return ch, ok
}
