package item

import (
	"context"
	"sync"

	"curio/internal/registry/models"
	"curio/pkg/domain"
	"curio/pkg/platform/sentinel"
)

// MemoryStore implements Store with a mutex-guarded map. The engine
// serializes operations itself, but the store keeps its own lock so reads
// from handlers remain safe regardless of caller discipline.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[domain.ItemID]models.Item
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[domain.ItemID]models.Item)}
}

func (s *MemoryStore) Create(ctx context.Context, it models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[it.ID]; ok {
		return sentinel.ErrConflict
	}
	s.items[it.ID] = it
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, it models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[it.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.items[it.ID] = it
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id domain.ItemID) (models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[id]
	if !ok {
		return models.Item{}, sentinel.ErrNotFound
	}
	return it, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id domain.ItemID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	return out, nil
}
