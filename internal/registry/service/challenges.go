package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"curio/internal/events"
	"curio/internal/registry/models"
	"curio/internal/registry/ports"
	"curio/pkg/domain"
	dErrors "curio/pkg/domain-errors"
)

var tracer = otel.Tracer("curio/registry")

// Challenge opens a dispute against a listed item. The challenger's deposit
// is escrowed before the challenge is created and refunded if any later step
// aborts; the voter reward pool is made available to the new challenge
// instance via an allowance.
func (s *Service) Challenge(ctx context.Context, challenger domain.Address, id domain.ItemID) (ch ports.Challenge, err error) {
	start := time.Now()
	defer func() { s.observe("challenge", start, err) }()

	var span trace.Span
	ctx, span = tracer.Start(ctx, "registry.Challenge",
		trace.WithAttributes(attribute.String("item_id", id.String())))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	it, err := s.items.Get(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	if s.challenges.Has(id) {
		return nil, dErrors.New(dErrors.CodeAlreadyChallenged, "item already has an active challenge")
	}

	if err := s.ledger.Transfer(ctx, challenger, s.cfg.Address, s.cfg.MinStake); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeTransferFailed, "escrowing challenger deposit")
	}
	refund := func() {
		if rerr := s.ledger.Transfer(ctx, s.cfg.Address, challenger, s.cfg.MinStake); rerr != nil {
			s.logger.ErrorContext(ctx, "deposit refund failed after aborted challenge",
				"item_id", id.String(), "error", rerr.Error())
		}
	}

	ch, err = s.factory.CreateChallenge(ctx, s.cfg.Address, challenger, it.Owner)
	if err != nil {
		refund()
		return nil, err
	}
	if ch.RequiredFunds() > s.cfg.MinStake {
		refund()
		return nil, dErrors.New(dErrors.CodeInsufficientFunds, "challenge requires more than the escrowed stake")
	}
	if err := s.ledger.Approve(ctx, s.cfg.Address, ch.Address(), ch.RequiredFunds()); err != nil {
		refund()
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "granting challenge allowance")
	}

	s.challenges.Put(id, ch)
	s.metrics.AddEscrowFlow("in", s.cfg.MinStake)

	event := events.New(events.TypeChallengeInitiated)
	event.ItemID = id.String()
	event.Account = string(challenger)
	event.Amount = s.cfg.MinStake
	event.ChallengeID = ch.ID()
	s.emit(ctx, event)
	s.logger.InfoContext(ctx, "challenge initiated",
		"item_id", id.String(), "challenge_id", ch.ID(), "challenger", string(challenger))
	return ch, nil
}

// ResolveChallenge settles the dispute on id. Anyone may call it. The
// challenge is closed lazily if the poll has ended; redistribution runs
// exactly once because the challenge reference is dropped before any payout,
// so a second call observes no challenge.
func (s *Service) ResolveChallenge(ctx context.Context, id domain.ItemID) (outcome models.Outcome, err error) {
	start := time.Now()
	defer func() { s.observe("resolve_challenge", start, err) }()

	var span trace.Span
	ctx, span = tracer.Start(ctx, "registry.ResolveChallenge",
		trace.WithAttributes(attribute.String("item_id", id.String())))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.challenges.Get(id)
	if !ok {
		return 0, dErrors.New(dErrors.CodeNoChallenge, "item has no challenge to resolve")
	}
	if !ch.Closed() {
		if err := ch.Close(ctx); err != nil {
			return 0, err
		}
	}
	outcome, err = ch.Outcome(ctx)
	if err != nil {
		return 0, err
	}
	reward, err := ch.WinnerReward(ctx)
	if err != nil {
		return 0, err
	}
	it, err := s.items.Get(ctx, id)
	if err != nil {
		return 0, storeErr(err)
	}

	// Dropping the reference first makes redistribution exactly-once; the
	// instance stays claimable by its own id.
	s.challenges.Delete(id)

	switch outcome {
	case models.OutcomeChallengeSucceeded:
		if err := s.items.Delete(ctx, id); err != nil {
			return 0, storeErr(err)
		}
		if err := s.ledger.Transfer(ctx, s.cfg.Address, ch.Challenger(), reward); err != nil {
			return 0, dErrors.Wrap(err, dErrors.CodeTransferFailed, "paying challenger reward")
		}
		s.metrics.AddItemsListed(-1)
		s.metrics.AddEscrowFlow("out", reward)

		for _, t := range []events.Type{events.TypeChallengeSucceeded, events.TypeItemRejected} {
			event := events.New(t)
			event.ItemID = id.String()
			event.ChallengeID = ch.ID()
			event.Account = string(ch.Challenger())
			event.Amount = reward
			s.emit(ctx, event)
		}

	case models.OutcomeChallengeFailed:
		it.Stake = it.Stake + reward - s.cfg.MinStake
		it.UnlockTime = s.clock.Now()
		if err := s.items.Update(ctx, it); err != nil {
			return 0, storeErr(err)
		}

		event := events.New(events.TypeChallengeFailed)
		event.ItemID = id.String()
		event.ChallengeID = ch.ID()
		event.Amount = reward
		s.emit(ctx, event)
	}

	s.metrics.IncrementResolution(outcome.String())
	s.logger.InfoContext(ctx, "challenge resolved",
		"item_id", id.String(), "challenge_id", ch.ID(), "outcome", outcome.String())
	return outcome, nil
}

// ChallengeExists reports whether id has an active challenge. The item must
// be listed.
func (s *Service) ChallengeExists(ctx context.Context, id domain.ItemID) (bool, error) {
	if _, err := s.items.Get(ctx, id); err != nil {
		return false, storeErr(err)
	}
	return s.challenges.Has(id), nil
}

// ItemChallenge returns the active challenge for id.
func (s *Service) ItemChallenge(ctx context.Context, id domain.ItemID) (ports.Challenge, error) {
	if _, err := s.items.Get(ctx, id); err != nil {
		return nil, storeErr(err)
	}
	ch, ok := s.challenges.Get(id)
	if !ok {
		return nil, dErrors.New(dErrors.CodeNoChallenge, "item has no active challenge")
	}
	return ch, nil
}

// ClaimVoterReward pays the caller's voter reward for a resolved challenge,
// addressed by the challenge's own id.
func (s *Service) ClaimVoterReward(ctx context.Context, challengeID string, voter domain.Address, salt uint64) (reward uint64, err error) {
	start := time.Now()
	defer func() { s.observe("claim_voter_reward", start, err) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.challenges.Lookup(challengeID)
	if !ok {
		return 0, dErrors.New(dErrors.CodeNoChallenge, "no such challenge")
	}
	reward, err = ch.ClaimVoterReward(ctx, voter, salt)
	if err != nil {
		return 0, err
	}
	s.metrics.AddEscrowFlow("out", reward)
	return reward, nil
}
