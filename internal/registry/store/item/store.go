// Package item persists registry items. Stores are interface-driven so the
// engine can run against memory in tests, postgres in production, and an
// optional redis read-through cache in front of either.
package item

import (
	"context"

	"curio/internal/registry/models"
	"curio/pkg/domain"
)

// Store is the persistence contract for items. Implementations return
// sentinel.ErrNotFound for missing ids and sentinel.ErrConflict when Create
// hits an existing id; services translate sentinels into domain errors.
type Store interface {
	// Create inserts a new item; ErrConflict if the id exists.
	Create(ctx context.Context, it models.Item) error
	// Update replaces an existing item; ErrNotFound if absent.
	Update(ctx context.Context, it models.Item) error
	// Get returns the item; ErrNotFound if absent.
	Get(ctx context.Context, id domain.ItemID) (models.Item, error)
	// Delete removes the item; ErrNotFound if absent.
	Delete(ctx context.Context, id domain.ItemID) error
	// List returns all items in unspecified order.
	List(ctx context.Context) ([]models.Item, error)
}
