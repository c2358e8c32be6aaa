package ports

import (
	"context"
	"time"

	"curio/pkg/domain"
)

// VotingOracle runs commit-reveal polls and reports their results. The tally
// algorithm is the oracle's business; the registry only consumes the
// contract below.
type VotingOracle interface {
	// StartPoll opens a poll and returns its id.
	StartPoll(ctx context.Context, voteQuorum uint64, commitStageLength, revealStageLength time.Duration) (uint64, error)
	// PollEnded reports whether the poll's reveal stage is over.
	PollEnded(ctx context.Context, pollID uint64) (bool, error)
	// IsPassed reports whether the "for" side (keep the listing) won.
	IsPassed(ctx context.Context, pollID uint64) (bool, error)
	// WinningTokens returns the total vote weight on the winning option.
	WinningTokens(ctx context.Context, pollID uint64) (uint64, error)
	// PassingTokens returns the weight voter revealed on the winning option.
	// The salt authenticates the voter's committed vote.
	PassingTokens(ctx context.Context, voter domain.Address, pollID uint64, salt uint64) (uint64, error)
}
