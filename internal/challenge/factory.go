package challenge

import (
	"context"
	"time"

	"github.com/google/uuid"

	"curio/internal/events"
	"curio/internal/registry/ports"
	"curio/pkg/domain"
	dErrors "curio/pkg/domain-errors"
)

// Params fixes the dispute terms for every challenge a factory creates.
type Params struct {
	// Stake is the deposit each side of a dispute puts up.
	Stake uint64
	// VoteQuorum is the percentage of revealed vote weight the "keep the
	// listing" side must strictly exceed to win.
	VoteQuorum uint64
	// PercentVoterReward is the share of the loser's stake reserved for
	// voters on the winning side, in percent.
	PercentVoterReward uint64
	// CommitStageLength and RevealStageLength size the poll's two stages.
	CommitStageLength time.Duration
	RevealStageLength time.Duration
}

// PLCRVotingChallengeFactory creates PLCR challenges against a shared ledger
// and voting oracle.
type PLCRVotingChallengeFactory struct {
	ledger ports.TokenLedger
	oracle ports.VotingOracle
	events ports.EventPublisher
	params Params
}

func NewFactory(ledger ports.TokenLedger, oracle ports.VotingOracle, publisher ports.EventPublisher, params Params) (*PLCRVotingChallengeFactory, error) {
	if ledger == nil || oracle == nil || publisher == nil {
		return nil, dErrors.New(dErrors.CodeInvalidParameter, "ledger, oracle and publisher are required")
	}
	if params.PercentVoterReward > 100 {
		return nil, dErrors.New(dErrors.CodeInvalidParameter, "percent voter reward must be at most 100")
	}
	return &PLCRVotingChallengeFactory{
		ledger: ledger,
		oracle: oracle,
		events: publisher,
		params: params,
	}, nil
}

// CreateChallenge opens a poll and returns a challenge bound to it. The
// registry address is the escrow account claims are paid from.
func (f *PLCRVotingChallengeFactory) CreateChallenge(ctx context.Context, registry, challenger, itemOwner domain.Address) (ports.Challenge, error) {
	pollID, err := f.oracle.StartPoll(ctx, f.params.VoteQuorum, f.params.CommitStageLength, f.params.RevealStageLength)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "starting poll")
	}

	id := uuid.NewString()
	ch := &PLCRVotingChallenge{
		id:              id,
		addr:            domain.Address("challenge:" + id),
		registry:        registry,
		challenger:      challenger,
		itemOwner:       itemOwner,
		stake:           f.params.Stake,
		voterRewardPool: f.params.Stake * f.params.PercentVoterReward / 100,
		pollID:          pollID,
		ledger:          f.ledger,
		oracle:          f.oracle,
		events:          f.events,
		claimed:         make(map[domain.Address]bool),
	}

	event := events.New(events.TypeChallengeCreated)
	event.ChallengeID = id
	event.PollID = pollID
	event.Account = string(challenger)
	_ = f.events.Emit(ctx, event)
	return ch, nil
}
