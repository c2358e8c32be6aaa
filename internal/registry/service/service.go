// Package service implements the registry engine: item lifecycle, stake
// custody, timelocking and the challenge state machine. It keeps orchestration
// out of handlers and leaves ledger, oracle and challenge mechanics behind
// ports.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"curio/internal/events"
	"curio/internal/registry/metrics"
	"curio/internal/registry/ports"
	"curio/internal/registry/store/item"
	"curio/pkg/domain"
	dErrors "curio/pkg/domain-errors"
	"curio/pkg/platform/sentinel"
)

// ItemStore persists registry items. Implementations live under
// internal/registry/store/item.
type ItemStore = item.Store

// ChallengeStore tracks challenge instances per item and by challenge id.
type ChallengeStore interface {
	Put(itemID domain.ItemID, ch ports.Challenge)
	Get(itemID domain.ItemID) (ports.Challenge, bool)
	Has(itemID domain.ItemID) bool
	Delete(itemID domain.ItemID)
	Lookup(challengeID string) (ports.Challenge, bool)
}

// Config fixes the registry's economic parameters.
type Config struct {
	// Address is the registry's own account on the token ledger, where all
	// stakes are escrowed.
	Address domain.Address
	// MinStake is the deposit required to list an item and to challenge one.
	MinStake uint64
	// ApplicationPeriod is how long a new listing stays locked.
	ApplicationPeriod time.Duration
}

// Service is the registry engine. All state transitions run under one mutex:
// every operation is an indivisible unit against the item store, the
// challenge set and the ledger, which stands in for a globally serialized
// transaction order.
type Service struct {
	cfg        Config
	items      ItemStore
	challenges ChallengeStore
	ledger     ports.TokenLedger
	factory    ports.ChallengeFactory
	events     ports.EventPublisher

	clock   ports.Clock
	metrics *metrics.Metrics
	logger  *slog.Logger

	mu sync.Mutex
}

// Option configures optional service collaborators.
type Option func(*Service)

func WithClock(clock ports.Clock) Option {
	return func(s *Service) { s.clock = clock }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func NewService(cfg Config, items ItemStore, challenges ChallengeStore, ledger ports.TokenLedger, factory ports.ChallengeFactory, publisher ports.EventPublisher, opts ...Option) (*Service, error) {
	if ledger == nil {
		return nil, dErrors.New(dErrors.CodeInvalidToken, "token ledger is required")
	}
	if items == nil || challenges == nil || factory == nil || publisher == nil {
		return nil, dErrors.New(dErrors.CodeInvalidParameter, "stores, factory and publisher are required")
	}
	if cfg.Address.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidParameter, "registry address is required")
	}
	if cfg.MinStake == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidParameter, "min stake must be positive")
	}

	s := &Service{
		cfg:        cfg,
		items:      items,
		challenges: challenges,
		ledger:     ledger,
		factory:    factory,
		events:     publisher,
		clock:      ports.SystemClock{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// MinStake returns the configured listing deposit.
func (s *Service) MinStake() uint64 { return s.cfg.MinStake }

// storeErr translates item store sentinels into coded domain errors.
func storeErr(err error) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "no such item")
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.New(dErrors.CodeAlreadyExists, "item already exists")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "item store")
	}
}

// emit publishes an event. Publishing is observability, not state, so a
// failed emit is logged and never aborts the operation that produced it.
func (s *Service) emit(ctx context.Context, event events.Event) {
	if err := s.events.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "event emit failed",
			slog.String("type", string(event.Type)),
			slog.String("error", err.Error()))
	}
}

func (s *Service) observe(op string, start time.Time, err error) {
	code := "ok"
	if err != nil {
		code = string(dErrors.CodeOf(err))
	}
	s.metrics.IncrementOperation(op, code)
	s.metrics.ObserveOperationLatency(op, time.Since(start))
}
