package ports

import (
	"context"

	"curio/internal/events"
)

// EventPublisher receives one event per registry state transition.
type EventPublisher interface {
	Emit(ctx context.Context, event events.Event) error
}
