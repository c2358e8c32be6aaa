// Package challenge implements the dispute side of the registry: a challenge
// backed by a commit-reveal poll on a voting oracle, paying the winning side
// and its voters out of the stakes escrowed by the registry.
package challenge

import (
	"context"
	"sync"

	"curio/internal/events"
	"curio/internal/registry/models"
	"curio/internal/registry/ports"
	"curio/pkg/domain"
	dErrors "curio/pkg/domain-errors"
)

// PLCRVotingChallenge resolves a dispute with a partial-lock commit-reveal
// poll. The listing survives when the poll passes; otherwise the challenger
// wins. A share of the loser's stake, fixed at creation, is reserved as a
// reward pool for voters on the winning side.
//
// The instance holds its own account on the token ledger and spends the
// allowance the registry granted it at creation to pay voter claims.
type PLCRVotingChallenge struct {
	id         string
	addr       domain.Address
	registry   domain.Address
	challenger domain.Address
	itemOwner  domain.Address

	stake           uint64
	voterRewardPool uint64
	pollID          uint64

	ledger ports.TokenLedger
	oracle ports.VotingOracle
	events ports.EventPublisher

	mu             sync.Mutex
	closed         bool
	tokensClaimed  uint64
	rewardsClaimed uint64
	claimed        map[domain.Address]bool
}

func (c *PLCRVotingChallenge) ID() string { return c.id }

func (c *PLCRVotingChallenge) Address() domain.Address { return c.addr }

func (c *PLCRVotingChallenge) Challenger() domain.Address { return c.challenger }

// PollID exposes the underlying poll so voters know where to commit.
func (c *PLCRVotingChallenge) PollID() uint64 { return c.pollID }

// RequiredFunds is what the challenge may need beyond the winner reward: the
// voter reward pool it pays claims from.
func (c *PLCRVotingChallenge) RequiredFunds() uint64 { return c.voterRewardPool }

func (c *PLCRVotingChallenge) Ended(ctx context.Context) (bool, error) {
	return c.oracle.PollEnded(ctx, c.pollID)
}

func (c *PLCRVotingChallenge) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Close finalizes the challenge. It may only be called once, and only after
// the poll has ended.
func (c *PLCRVotingChallenge) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return dErrors.New(dErrors.CodeAlreadyClosed, "challenge is already closed")
	}
	ended, err := c.oracle.PollEnded(ctx, c.pollID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "checking poll state")
	}
	if !ended {
		return dErrors.New(dErrors.CodePollNotEnded, "poll has not ended")
	}
	c.closed = true

	event := events.New(events.TypeChallengeClosed)
	event.ChallengeID = c.id
	event.PollID = c.pollID
	_ = c.events.Emit(ctx, event)
	return nil
}

// Outcome reports who won the closed challenge. A passed poll means the
// voters sided with the listing, so the challenge failed.
func (c *PLCRVotingChallenge) Outcome(ctx context.Context) (models.Outcome, error) {
	if !c.Closed() {
		return 0, dErrors.New(dErrors.CodeNotClosed, "challenge is not closed")
	}
	passed, err := c.oracle.IsPassed(ctx, c.pollID)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "checking poll result")
	}
	if passed {
		return models.OutcomeChallengeFailed, nil
	}
	return models.OutcomeChallengeSucceeded, nil
}

// WinnerReward is the loser's stake plus the winner's own stake back, less
// the voter reward pool. When nobody voted on the winning side the pool is
// unpayable and goes to the winner instead.
func (c *PLCRVotingChallenge) WinnerReward(ctx context.Context) (uint64, error) {
	if !c.Closed() {
		return 0, dErrors.New(dErrors.CodeNotClosed, "challenge is not closed")
	}
	winning, err := c.oracle.WinningTokens(ctx, c.pollID)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "checking winning tokens")
	}
	if winning == 0 {
		return 2 * c.stake, nil
	}
	return 2*c.stake - c.voterRewardPool, nil
}

// VoterReward quotes what voter would be paid for a claim right now, without
// spending it. The share is computed against what remains of the pool so the
// final claimant drains it exactly.
func (c *PLCRVotingChallenge) VoterReward(ctx context.Context, voter domain.Address, salt uint64) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		return 0, dErrors.New(dErrors.CodeNotClosed, "challenge is not closed")
	}
	voterTokens, err := c.oracle.PassingTokens(ctx, voter, c.pollID, salt)
	if err != nil {
		return 0, err
	}
	return c.voterReward(ctx, voterTokens)
}

// voterReward computes the pro-rata share for a revealed winning-side weight.
// Callers hold c.mu.
func (c *PLCRVotingChallenge) voterReward(ctx context.Context, voterTokens uint64) (uint64, error) {
	if voterTokens == 0 {
		return 0, nil
	}
	winning, err := c.oracle.WinningTokens(ctx, c.pollID)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "checking winning tokens")
	}
	remaining := winning - c.tokensClaimed
	if remaining == 0 {
		return 0, dErrors.New(dErrors.CodeUnresolvable, "reward pool is exhausted")
	}
	return voterTokens * (c.voterRewardPool - c.rewardsClaimed) / remaining, nil
}

// ClaimVoterReward pays voter its pro-rata share of the reward pool and
// returns the amount. The claim is spent only once the payout has gone
// through; an aborted claim can be retried.
func (c *PLCRVotingChallenge) ClaimVoterReward(ctx context.Context, voter domain.Address, salt uint64) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		return 0, dErrors.New(dErrors.CodeNotClosed, "challenge is not closed")
	}
	if c.claimed[voter] {
		return 0, dErrors.New(dErrors.CodeAlreadyClaimed, "voter reward already claimed")
	}
	// Oracle errors here are meaningful to the caller (bad salt, no revealed
	// vote) and pass through unwrapped.
	voterTokens, err := c.oracle.PassingTokens(ctx, voter, c.pollID, salt)
	if err != nil {
		return 0, err
	}
	reward, err := c.voterReward(ctx, voterTokens)
	if err != nil {
		return 0, err
	}
	if voterTokens == 0 {
		c.claimed[voter] = true
		return 0, nil
	}

	if err := c.ledger.TransferFrom(ctx, c.addr, c.registry, voter, reward); err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeTransferFailed, "paying voter reward")
	}
	c.claimed[voter] = true
	c.tokensClaimed += voterTokens
	c.rewardsClaimed += reward

	event := events.New(events.TypeRewardClaimed)
	event.ChallengeID = c.id
	event.PollID = c.pollID
	event.Account = string(voter)
	event.Amount = reward
	_ = c.events.Emit(ctx, event)
	return reward, nil
}
