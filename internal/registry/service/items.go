package service

import (
	"context"
	"errors"
	"time"

	"curio/internal/events"
	"curio/internal/registry/models"
	"curio/internal/registry/ports"
	"curio/pkg/domain"
	dErrors "curio/pkg/domain-errors"
	"curio/pkg/platform/sentinel"
)

// Add lists a new item under the caller's ownership. The caller's listing
// deposit is pulled into registry escrow first; a rejected transfer leaves no
// item behind. The new listing stays locked for the application period.
func (s *Service) Add(ctx context.Context, caller domain.Address, data domain.ItemData) (it models.Item, err error) {
	start := time.Now()
	defer func() { s.observe("add", start, err) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	id := data.ID()
	if _, err := s.items.Get(ctx, id); err == nil {
		return models.Item{}, dErrors.New(dErrors.CodeAlreadyExists, "item already exists")
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return models.Item{}, storeErr(err)
	}

	if err := s.ledger.Transfer(ctx, caller, s.cfg.Address, s.cfg.MinStake); err != nil {
		return models.Item{}, dErrors.Wrap(err, dErrors.CodeTransferFailed, "escrowing listing deposit")
	}

	it = models.Item{
		ID:         id,
		Data:       data,
		Owner:      caller,
		Stake:      s.cfg.MinStake,
		UnlockTime: s.clock.Now().Add(s.cfg.ApplicationPeriod),
	}
	if err := s.items.Create(ctx, it); err != nil {
		// Unwind the escrow so a store failure leaves no partial state.
		if rerr := s.ledger.Transfer(ctx, s.cfg.Address, caller, s.cfg.MinStake); rerr != nil {
			s.logger.ErrorContext(ctx, "escrow refund failed after store error",
				"item_id", id.String(), "error", rerr.Error())
		}
		return models.Item{}, storeErr(err)
	}

	s.metrics.AddItemsListed(1)
	s.metrics.AddEscrowFlow("in", s.cfg.MinStake)

	for _, t := range []events.Type{events.TypeItemAdded, events.TypeNewStake, events.TypeApplication} {
		event := events.New(t)
		event.ItemID = id.String()
		event.ItemData = data.Title()
		event.Account = string(caller)
		event.Amount = s.cfg.MinStake
		s.emit(ctx, event)
	}
	s.logger.InfoContext(ctx, "item added", "item_id", id.String(), "owner", string(caller))
	return it, nil
}

// Remove delists the caller's item and refunds its stake. A locked item
// cannot be removed, and a challenged item only once its challenge has ended
// and failed; the failed challenge is settled on the way out.
func (s *Service) Remove(ctx context.Context, caller domain.Address, id domain.ItemID) (err error) {
	start := time.Now()
	defer func() { s.observe("remove", start, err) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	it, err := s.items.Get(ctx, id)
	if err != nil {
		return storeErr(err)
	}
	if it.Owner != caller {
		return dErrors.New(dErrors.CodeNotOwner, "caller does not own this item")
	}

	if ch, ok := s.challenges.Get(id); ok {
		it, err = s.settleForRemoval(ctx, it, ch)
		if err != nil {
			return err
		}
	}

	if it.Locked(s.clock.Now()) {
		return dErrors.New(dErrors.CodeLocked, "item is in its application phase")
	}

	if it.Stake > 0 {
		if err := s.ledger.Transfer(ctx, s.cfg.Address, it.Owner, it.Stake); err != nil {
			return dErrors.Wrap(err, dErrors.CodeTransferFailed, "refunding stake")
		}
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return storeErr(err)
	}

	s.metrics.AddItemsListed(-1)
	s.metrics.AddEscrowFlow("out", it.Stake)

	event := events.New(events.TypeItemRemoved)
	event.ItemID = id.String()
	event.Account = string(caller)
	event.Amount = it.Stake
	s.emit(ctx, event)
	s.logger.InfoContext(ctx, "item removed", "item_id", id.String())
	return nil
}

// settleForRemoval clears a challenged item for removal. Only a challenge
// that has ended and failed permits removal; its redistribution is applied to
// the returned item and the challenge reference dropped.
func (s *Service) settleForRemoval(ctx context.Context, it models.Item, ch ports.Challenge) (models.Item, error) {
	ended, err := ch.Ended(ctx)
	if err != nil {
		return it, dErrors.Wrap(err, dErrors.CodeInternal, "checking challenge state")
	}
	if !ended {
		return it, dErrors.New(dErrors.CodeChallengeActive, "item has an active challenge")
	}
	if !ch.Closed() {
		if err := ch.Close(ctx); err != nil {
			return it, err
		}
	}
	outcome, err := ch.Outcome(ctx)
	if err != nil {
		return it, err
	}
	if outcome != models.OutcomeChallengeFailed {
		return it, dErrors.New(dErrors.CodeChallengeActive, "item has an unresolved successful challenge")
	}
	reward, err := ch.WinnerReward(ctx)
	if err != nil {
		return it, err
	}

	it.Stake = it.Stake + reward - s.cfg.MinStake
	it.UnlockTime = s.clock.Now()
	if err := s.items.Update(ctx, it); err != nil {
		return it, storeErr(err)
	}
	s.challenges.Delete(it.ID)
	s.metrics.IncrementResolution(outcome.String())

	event := events.New(events.TypeChallengeFailed)
	event.ItemID = it.ID.String()
	event.ChallengeID = ch.ID()
	event.Amount = reward
	s.emit(ctx, event)
	return it, nil
}

// Get returns the item, or the zero item when the id is not listed. Use
// Exists to distinguish a zero-valued listing from absence.
func (s *Service) Get(ctx context.Context, id domain.ItemID) (models.Item, error) {
	it, err := s.items.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.Item{}, nil
		}
		return models.Item{}, storeErr(err)
	}
	return it, nil
}

// Exists reports whether id is listed.
func (s *Service) Exists(ctx context.Context, id domain.ItemID) (bool, error) {
	_, err := s.items.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return false, nil
		}
		return false, storeErr(err)
	}
	return true, nil
}

// List returns all listed items.
func (s *Service) List(ctx context.Context) ([]models.Item, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return items, nil
}

// IncreaseStake pulls amount from the owner into escrow and grows the item's
// stake.
func (s *Service) IncreaseStake(ctx context.Context, caller domain.Address, id domain.ItemID, amount uint64) (it models.Item, err error) {
	start := time.Now()
	defer func() { s.observe("increase_stake", start, err) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	it, err = s.items.Get(ctx, id)
	if err != nil {
		return models.Item{}, storeErr(err)
	}
	if it.Owner != caller {
		return models.Item{}, dErrors.New(dErrors.CodeNotOwner, "caller does not own this item")
	}
	if err := s.ledger.Transfer(ctx, caller, s.cfg.Address, amount); err != nil {
		return models.Item{}, dErrors.Wrap(err, dErrors.CodeTransferFailed, "escrowing additional stake")
	}

	it.Stake += amount
	if err := s.items.Update(ctx, it); err != nil {
		if rerr := s.ledger.Transfer(ctx, s.cfg.Address, caller, amount); rerr != nil {
			s.logger.ErrorContext(ctx, "escrow refund failed after store error",
				"item_id", id.String(), "error", rerr.Error())
		}
		return models.Item{}, storeErr(err)
	}

	s.metrics.AddEscrowFlow("in", amount)
	event := events.New(events.TypeIncreasedStake)
	event.ItemID = id.String()
	event.Account = string(caller)
	event.Amount = amount
	s.emit(ctx, event)
	return it, nil
}

// DecreaseStake refunds amount of the item's stake to the owner. The stake
// may not drop below the listing minimum.
func (s *Service) DecreaseStake(ctx context.Context, caller domain.Address, id domain.ItemID, amount uint64) (it models.Item, err error) {
	start := time.Now()
	defer func() { s.observe("decrease_stake", start, err) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	it, err = s.items.Get(ctx, id)
	if err != nil {
		return models.Item{}, storeErr(err)
	}
	if it.Owner != caller {
		return models.Item{}, dErrors.New(dErrors.CodeNotOwner, "caller does not own this item")
	}
	if it.Stake < amount || it.Stake-amount < s.cfg.MinStake {
		return models.Item{}, dErrors.New(dErrors.CodeBelowMinimum, "stake may not drop below the listing minimum")
	}
	if err := s.ledger.Transfer(ctx, s.cfg.Address, caller, amount); err != nil {
		return models.Item{}, dErrors.Wrap(err, dErrors.CodeTransferFailed, "refunding stake")
	}

	it.Stake -= amount
	if err := s.items.Update(ctx, it); err != nil {
		return models.Item{}, storeErr(err)
	}

	s.metrics.AddEscrowFlow("out", amount)
	event := events.New(events.TypeDecreasedStake)
	event.ItemID = id.String()
	event.Account = string(caller)
	event.Amount = amount
	s.emit(ctx, event)
	return it, nil
}

// SetUnlockTime overrides the item's timelock. Administrative; composing
// surfaces decide who may call it.
func (s *Service) SetUnlockTime(ctx context.Context, id domain.ItemID, unlockTime time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, err := s.items.Get(ctx, id)
	if err != nil {
		return storeErr(err)
	}
	it.UnlockTime = unlockTime
	if err := s.items.Update(ctx, it); err != nil {
		return storeErr(err)
	}
	return nil
}

// IsLocked reports whether the item's timelock is still in the future.
func (s *Service) IsLocked(ctx context.Context, id domain.ItemID) (bool, error) {
	it, err := s.items.Get(ctx, id)
	if err != nil {
		return false, storeErr(err)
	}
	return it.Locked(s.clock.Now()), nil
}

// InApplicationPhase reports whether the item is still inside its
// application period. Equivalent to IsLocked.
func (s *Service) InApplicationPhase(ctx context.Context, id domain.ItemID) (bool, error) {
	return s.IsLocked(ctx, id)
}
