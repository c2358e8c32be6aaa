package ports

import (
	"context"

	"curio/internal/registry/models"
	"curio/pkg/domain"
)

// Challenge is one dispute instance. Created by a ChallengeFactory, closed
// exactly once, then queried for its outcome and reward. The instance keeps
// its own escrow account on the token ledger and survives the registry
// dropping its reference so voters can still claim.
type Challenge interface {
	// ID identifies the instance for later voter claims.
	ID() string
	// Address is the challenge's account on the token ledger.
	Address() domain.Address
	// Challenger is the account that opened the dispute.
	Challenger() domain.Address
	// RequiredFunds is the minimum the registry must make available to the
	// challenge so it can pay voters in full.
	RequiredFunds() uint64
	// Close finalizes the challenge once the underlying poll has ended.
	// Fails with poll_not_ended before that, already_closed after.
	Close(ctx context.Context) error
	// Closed reports whether Close has succeeded.
	Closed() bool
	// Ended reports whether the underlying poll is over (closed or not).
	Ended(ctx context.Context) (bool, error)
	// Outcome reports who won. Fails with not_closed before Close.
	Outcome(ctx context.Context) (models.Outcome, error)
	// WinnerReward is the amount owed to the winning side. Fails with
	// not_closed before Close.
	WinnerReward(ctx context.Context) (uint64, error)
	// ClaimVoterReward pays voter its pro-rata share of the voter reward
	// pool and returns the amount. Each voter claims at most once.
	ClaimVoterReward(ctx context.Context, voter domain.Address, salt uint64) (uint64, error)
}

// ChallengeFactory instantiates challenges with a fixed parameter set decided
// at factory construction.
type ChallengeFactory interface {
	CreateChallenge(ctx context.Context, registry, challenger, itemOwner domain.Address) (Challenge, error)
}
