package challenge_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"curio/internal/challenge"
	"curio/internal/events"
	"curio/internal/registry/models"
	"curio/internal/token"
	"curio/internal/voting"
	"curio/pkg/domain"
	dErrors "curio/pkg/domain-errors"
)

const (
	registry   = domain.Address("registry")
	challenger = domain.Address("challenger")
	itemOwner  = domain.Address("owner")

	stake       = uint64(100)
	quorum      = uint64(50)
	pctReward   = uint64(20)
	commitStage = time.Hour
	revealStage = time.Hour
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type PLCRChallengeSuite struct {
	suite.Suite
	clock  *fakeClock
	oracle *voting.Oracle
	ledger *token.Ledger
	sink   *events.MemorySink
	ch     *challenge.PLCRVotingChallenge
}

func TestPLCRChallengeSuite(t *testing.T) {
	suite.Run(t, new(PLCRChallengeSuite))
}

func (s *PLCRChallengeSuite) SetupTest() {
	ctx := context.Background()

	s.clock = &fakeClock{now: time.Unix(1_700_000_000, 0)}
	s.oracle = voting.NewOracle(s.clock)
	s.ledger = token.NewLedger()
	s.sink = events.NewMemorySink()

	factory, err := challenge.NewFactory(s.ledger, s.oracle, s.sink, challenge.Params{
		Stake:              stake,
		VoteQuorum:         quorum,
		PercentVoterReward: pctReward,
		CommitStageLength:  commitStage,
		RevealStageLength:  revealStage,
	})
	s.Require().NoError(err)

	ch, err := factory.CreateChallenge(ctx, registry, challenger, itemOwner)
	s.Require().NoError(err)
	s.ch = ch.(*challenge.PLCRVotingChallenge)

	// The registry escrows both stakes and lets the challenge pull the
	// voter reward pool for claims.
	s.ledger.Mint(registry, 2*stake)
	s.Require().NoError(s.ledger.Approve(ctx, registry, s.ch.Address(), s.ch.RequiredFunds()))
}

func (s *PLCRChallengeSuite) vote(voter domain.Address, choice, salt, tokens uint64) {
	ctx := context.Background()
	s.Require().NoError(s.oracle.CommitVote(ctx, voter, s.ch.PollID(), voting.Commitment(choice, salt), tokens))
}

func (s *PLCRChallengeSuite) reveal(voter domain.Address, choice, salt uint64) {
	s.Require().NoError(s.oracle.RevealVote(context.Background(), voter, s.ch.PollID(), choice, salt))
}

// runPoll walks the poll through both stages, revealing the given votes.
func (s *PLCRChallengeSuite) runPoll(reveals ...func()) {
	s.clock.Advance(commitStage)
	for _, r := range reveals {
		r()
	}
	s.clock.Advance(revealStage)
}

func (s *PLCRChallengeSuite) balance(account domain.Address) uint64 {
	b, err := s.ledger.BalanceOf(context.Background(), account)
	s.Require().NoError(err)
	return b
}

func (s *PLCRChallengeSuite) TestClose() {
	ctx := context.Background()

	s.Run("fails while the poll is running", func() {
		err := s.ch.Close(ctx)
		s.True(dErrors.HasCode(err, dErrors.CodePollNotEnded))
		s.False(s.ch.Closed())
	})

	s.Run("succeeds once the poll has ended", func() {
		s.runPoll()
		s.NoError(s.ch.Close(ctx))
		s.True(s.ch.Closed())
		s.Len(s.sink.ByType(events.TypeChallengeClosed), 1)
	})

	s.Run("fails a second time", func() {
		err := s.ch.Close(ctx)
		s.True(dErrors.HasCode(err, dErrors.CodeAlreadyClosed))
	})
}

func (s *PLCRChallengeSuite) TestOutcomeRequiresClose() {
	_, err := s.ch.Outcome(context.Background())
	s.True(dErrors.HasCode(err, dErrors.CodeNotClosed))

	_, err = s.ch.WinnerReward(context.Background())
	s.True(dErrors.HasCode(err, dErrors.CodeNotClosed))
}

func (s *PLCRChallengeSuite) TestChallengeFailsWhenListingWinsVote() {
	ctx := context.Background()

	s.vote("alice", voting.VoteFor, 1, 60)
	s.runPoll(func() { s.reveal("alice", voting.VoteFor, 1) })
	s.Require().NoError(s.ch.Close(ctx))

	outcome, err := s.ch.Outcome(ctx)
	s.Require().NoError(err)
	s.Equal(models.OutcomeChallengeFailed, outcome)
}

func (s *PLCRChallengeSuite) TestChallengeSucceedsWhenListingLosesVote() {
	ctx := context.Background()

	s.vote("alice", voting.VoteAgainst, 1, 60)
	s.runPoll(func() { s.reveal("alice", voting.VoteAgainst, 1) })
	s.Require().NoError(s.ch.Close(ctx))

	outcome, err := s.ch.Outcome(ctx)
	s.Require().NoError(err)
	s.Equal(models.OutcomeChallengeSucceeded, outcome)
}

func (s *PLCRChallengeSuite) TestChallengeSucceedsWithNoVotes() {
	ctx := context.Background()

	s.runPoll()
	s.Require().NoError(s.ch.Close(ctx))

	outcome, err := s.ch.Outcome(ctx)
	s.Require().NoError(err)
	s.Equal(models.OutcomeChallengeSucceeded, outcome)
}

func (s *PLCRChallengeSuite) TestWinnerReward() {
	ctx := context.Background()

	s.Run("with no voters the winner takes both stakes", func() {
		s.runPoll()
		s.Require().NoError(s.ch.Close(ctx))

		reward, err := s.ch.WinnerReward(ctx)
		s.Require().NoError(err)
		s.Equal(2*stake, reward)
	})
}

func (s *PLCRChallengeSuite) TestWinnerRewardWithVoters() {
	ctx := context.Background()

	s.vote("alice", voting.VoteFor, 1, 60)
	s.runPoll(func() { s.reveal("alice", voting.VoteFor, 1) })
	s.Require().NoError(s.ch.Close(ctx))

	reward, err := s.ch.WinnerReward(ctx)
	s.Require().NoError(err)
	s.Equal(2*stake-stake*pctReward/100, reward)
}

func (s *PLCRChallengeSuite) TestVoterReward() {
	ctx := context.Background()

	s.vote("alice", voting.VoteFor, 1, 60)
	s.vote("bob", voting.VoteFor, 2, 20)
	s.runPoll(
		func() { s.reveal("alice", voting.VoteFor, 1) },
		func() { s.reveal("bob", voting.VoteFor, 2) },
	)

	s.Run("fails before the challenge is closed", func() {
		_, err := s.ch.VoterReward(ctx, "alice", 1)
		s.True(dErrors.HasCode(err, dErrors.CodeNotClosed))
	})

	s.Require().NoError(s.ch.Close(ctx))
	pool := stake * pctReward / 100

	s.Run("quotes the pro-rata share without spending the claim", func() {
		quoted, err := s.ch.VoterReward(ctx, "alice", 1)
		s.Require().NoError(err)
		s.Equal(uint64(60)*pool/80, quoted)

		got, err := s.ch.ClaimVoterReward(ctx, "alice", 1)
		s.Require().NoError(err)
		s.Equal(quoted, got)
	})

	s.Run("quotes against the remaining pool after claims", func() {
		quoted, err := s.ch.VoterReward(ctx, "bob", 2)
		s.Require().NoError(err)
		s.Equal(pool-uint64(60)*pool/80, quoted)
	})
}

func (s *PLCRChallengeSuite) TestRefusedPayoutDoesNotSpendClaim() {
	ctx := context.Background()

	s.vote("alice", voting.VoteFor, 1, 60)
	s.runPoll(func() { s.reveal("alice", voting.VoteFor, 1) })
	s.Require().NoError(s.ch.Close(ctx))

	// Revoke the allowance so the payout transfer is refused.
	s.Require().NoError(s.ledger.Approve(ctx, registry, s.ch.Address(), 0))
	_, err := s.ch.ClaimVoterReward(ctx, "alice", 1)
	s.True(dErrors.HasCode(err, dErrors.CodeTransferFailed))
	s.Zero(s.balance("alice"))

	// Restoring the allowance lets the retry through in full.
	s.Require().NoError(s.ledger.Approve(ctx, registry, s.ch.Address(), s.ch.RequiredFunds()))
	got, err := s.ch.ClaimVoterReward(ctx, "alice", 1)
	s.Require().NoError(err)
	s.Equal(stake*pctReward/100, got)
	s.Equal(got, s.balance("alice"))
}

func (s *PLCRChallengeSuite) TestClaimVoterReward() {
	ctx := context.Background()

	s.vote("alice", voting.VoteFor, 1, 60)
	s.vote("bob", voting.VoteFor, 2, 20)
	s.vote("carol", voting.VoteAgainst, 3, 10)
	s.runPoll(
		func() { s.reveal("alice", voting.VoteFor, 1) },
		func() { s.reveal("bob", voting.VoteFor, 2) },
		func() { s.reveal("carol", voting.VoteAgainst, 3) },
	)

	s.Run("fails before the challenge is closed", func() {
		_, err := s.ch.ClaimVoterReward(ctx, "alice", 1)
		s.True(dErrors.HasCode(err, dErrors.CodeNotClosed))
	})

	s.Require().NoError(s.ch.Close(ctx))
	pool := stake * pctReward / 100

	s.Run("rejects a wrong salt without spending the claim", func() {
		_, err := s.ch.ClaimVoterReward(ctx, "alice", 999)
		s.Error(err)
	})

	s.Run("pays pro-rata shares and drains the pool", func() {
		got, err := s.ch.ClaimVoterReward(ctx, "alice", 1)
		s.Require().NoError(err)
		s.Equal(uint64(60)*pool/80, got)
		s.Equal(got, s.balance("alice"))

		rest, err := s.ch.ClaimVoterReward(ctx, "bob", 2)
		s.Require().NoError(err)
		s.Equal(pool-got, rest, "last winning claimant takes the remainder")
	})

	s.Run("each voter claims at most once", func() {
		_, err := s.ch.ClaimVoterReward(ctx, "alice", 1)
		s.True(dErrors.HasCode(err, dErrors.CodeAlreadyClaimed))
	})

	s.Run("losing voters get nothing", func() {
		got, err := s.ch.ClaimVoterReward(ctx, "carol", 3)
		s.Require().NoError(err)
		s.Zero(got)
		s.Zero(s.balance("carol"))
	})

	s.Run("claims are published", func() {
		s.Len(s.sink.ByType(events.TypeRewardClaimed), 2)
	})
}
