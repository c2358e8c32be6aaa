package item

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"curio/internal/registry/models"
	"curio/pkg/domain"
)

// CachedStore is a redis read-through cache in front of another Store.
// Writes go to the backing store first and then update or invalidate the
// cache; a cold or unreachable cache degrades to the backing store.
type CachedStore struct {
	next   Store
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

type cachedItem struct {
	ID         string    `json:"id"`
	Data       string    `json:"data"`
	Owner      string    `json:"owner"`
	Stake      uint64    `json:"stake"`
	UnlockTime time.Time `json:"unlock_time"`
}

// NewCachedStore wraps next with a redis cache.
func NewCachedStore(next Store, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedStore {
	return &CachedStore{next: next, client: client, ttl: ttl, logger: logger}
}

func cacheKey(id domain.ItemID) string {
	return "registry:item:" + id.String()
}

func (s *CachedStore) Create(ctx context.Context, it models.Item) error {
	if err := s.next.Create(ctx, it); err != nil {
		return err
	}
	s.put(ctx, it)
	return nil
}

func (s *CachedStore) Update(ctx context.Context, it models.Item) error {
	if err := s.next.Update(ctx, it); err != nil {
		return err
	}
	s.put(ctx, it)
	return nil
}

func (s *CachedStore) Get(ctx context.Context, id domain.ItemID) (models.Item, error) {
	raw, err := s.client.Get(ctx, cacheKey(id)).Bytes()
	if err == nil {
		var c cachedItem
		if err := json.Unmarshal(raw, &c); err == nil {
			if it, err := c.toModel(); err == nil {
				return it, nil
			}
		}
		// Unreadable entry: fall through to the backing store and rewrite.
	} else if !errors.Is(err, redis.Nil) {
		s.warn(ctx, "cache read failed", id, err)
	}

	it, err := s.next.Get(ctx, id)
	if err != nil {
		return models.Item{}, err
	}
	s.put(ctx, it)
	return it, nil
}

func (s *CachedStore) Delete(ctx context.Context, id domain.ItemID) error {
	if err := s.next.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		s.warn(ctx, "cache invalidation failed", id, err)
	}
	return nil
}

func (s *CachedStore) List(ctx context.Context) ([]models.Item, error) {
	return s.next.List(ctx)
}

func (s *CachedStore) put(ctx context.Context, it models.Item) {
	c := cachedItem{
		ID:         it.ID.String(),
		Data:       encodeData(it.Data),
		Owner:      it.Owner.String(),
		Stake:      it.Stake,
		UnlockTime: it.UnlockTime,
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, cacheKey(it.ID), raw, s.ttl).Err(); err != nil {
		s.warn(ctx, "cache write failed", it.ID, err)
	}
}

func (c cachedItem) toModel() (models.Item, error) {
	id, err := domain.ParseItemID(c.ID)
	if err != nil {
		return models.Item{}, fmt.Errorf("cached item id: %w", err)
	}
	data, err := decodeData(c.Data)
	if err != nil {
		return models.Item{}, fmt.Errorf("cached item data: %w", err)
	}
	return models.Item{
		ID:         id,
		Data:       data,
		Owner:      domain.Address(c.Owner),
		Stake:      c.Stake,
		UnlockTime: c.UnlockTime,
	}, nil
}

func (s *CachedStore) warn(ctx context.Context, msg string, id domain.ItemID, err error) {
	if s.logger != nil {
		s.logger.WarnContext(ctx, msg, "item_id", id.String(), "error", err)
	}
}
