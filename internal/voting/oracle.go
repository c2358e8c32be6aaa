// Package voting provides an in-memory commit-reveal voting oracle
// implementing ports.VotingOracle. It backs the dev server and tests; the
// production oracle is an external system and only its reporting contract is
// consumed by the registry.
package voting

import (
	"context"
	"encoding/binary"
	"sync"
	"time"

	"golang.org/x/crypto/sha3"

	"curio/internal/registry/ports"
	"curio/pkg/domain"
	dErrors "curio/pkg/domain-errors"
)

// Vote options. VoteFor backs keeping the listing.
const (
	VoteAgainst uint64 = 0
	VoteFor     uint64 = 1
)

type vote struct {
	commitment [32]byte
	tokens     uint64
	choice     uint64
	revealed   bool
}

type poll struct {
	quorum    uint64
	commitEnd time.Time
	revealEnd time.Time
	votes     map[domain.Address]*vote
}

// Oracle runs polls against an injected clock.
type Oracle struct {
	mu     sync.Mutex
	clock  ports.Clock
	nextID uint64
	polls  map[uint64]*poll
}

func NewOracle(clock ports.Clock) *Oracle {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &Oracle{clock: clock, polls: make(map[uint64]*poll)}
}

// Commitment computes the hash a voter commits to: keccak256(choice || salt).
func Commitment(choice, salt uint64) [32]byte {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], choice)
	binary.BigEndian.PutUint64(buf[8:], salt)
	h := sha3.NewLegacyKeccak256()
	h.Write(buf[:])
	var out [32]byte
	h.Sum(out[:0])
	return out
}

func (o *Oracle) StartPoll(ctx context.Context, voteQuorum uint64, commitStageLength, revealStageLength time.Duration) (uint64, error) {
	if voteQuorum > 100 {
		return 0, dErrors.New(dErrors.CodeInvalidParameter, "vote quorum must be at most 100")
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	o.nextID++
	now := o.clock.Now()
	o.polls[o.nextID] = &poll{
		quorum:    voteQuorum,
		commitEnd: now.Add(commitStageLength),
		revealEnd: now.Add(commitStageLength + revealStageLength),
		votes:     make(map[domain.Address]*vote),
	}
	return o.nextID, nil
}

// CommitVote records a voter's sealed choice during the commit stage.
func (o *Oracle) CommitVote(ctx context.Context, voter domain.Address, pollID uint64, commitment [32]byte, tokens uint64) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	p, ok := o.polls[pollID]
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "no such poll")
	}
	if !o.clock.Now().Before(p.commitEnd) {
		return dErrors.New(dErrors.CodeInvalidParameter, "commit stage is over")
	}
	p.votes[voter] = &vote{commitment: commitment, tokens: tokens}
	return nil
}

// RevealVote opens a previously committed vote during the reveal stage. The
// revealed choice and salt must hash to the stored commitment.
func (o *Oracle) RevealVote(ctx context.Context, voter domain.Address, pollID, choice, salt uint64) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	p, ok := o.polls[pollID]
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "no such poll")
	}
	now := o.clock.Now()
	if now.Before(p.commitEnd) || !now.Before(p.revealEnd) {
		return dErrors.New(dErrors.CodeInvalidParameter, "not in reveal stage")
	}
	v, ok := p.votes[voter]
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "no committed vote")
	}
	if v.revealed {
		return dErrors.New(dErrors.CodeAlreadyClaimed, "vote already revealed")
	}
	if Commitment(choice, salt) != v.commitment {
		return dErrors.New(dErrors.CodeInvalidParameter, "reveal does not match commitment")
	}
	v.choice = choice
	v.revealed = true
	return nil
}

func (o *Oracle) PollEnded(ctx context.Context, pollID uint64) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	p, ok := o.polls[pollID]
	if !ok {
		return false, dErrors.New(dErrors.CodeNotFound, "no such poll")
	}
	return !o.clock.Now().Before(p.revealEnd), nil
}

func (o *Oracle) IsPassed(ctx context.Context, pollID uint64) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	p, ok := o.polls[pollID]
	if !ok {
		return false, dErrors.New(dErrors.CodeNotFound, "no such poll")
	}
	forTokens, againstTokens := tally(p)
	total := forTokens + againstTokens
	if total == 0 {
		return false, nil
	}
	// Passes when the "for" share strictly exceeds the quorum percentage.
	return forTokens*100 > p.quorum*total, nil
}

func (o *Oracle) WinningTokens(ctx context.Context, pollID uint64) (uint64, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	p, ok := o.polls[pollID]
	if !ok {
		return 0, dErrors.New(dErrors.CodeNotFound, "no such poll")
	}
	forTokens, againstTokens := tally(p)
	if passed(p, forTokens, againstTokens) {
		return forTokens, nil
	}
	return againstTokens, nil
}

func (o *Oracle) PassingTokens(ctx context.Context, voter domain.Address, pollID, salt uint64) (uint64, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	p, ok := o.polls[pollID]
	if !ok {
		return 0, dErrors.New(dErrors.CodeNotFound, "no such poll")
	}
	v, ok := p.votes[voter]
	if !ok || !v.revealed {
		return 0, dErrors.New(dErrors.CodeNotFound, "no revealed vote for voter")
	}
	if Commitment(v.choice, salt) != v.commitment {
		return 0, dErrors.New(dErrors.CodeInvalidParameter, "salt does not match committed vote")
	}

	forTokens, againstTokens := tally(p)
	winning := VoteAgainst
	if passed(p, forTokens, againstTokens) {
		winning = VoteFor
	}
	if v.choice != winning {
		return 0, nil
	}
	return v.tokens, nil
}

func tally(p *poll) (forTokens, againstTokens uint64) {
	for _, v := range p.votes {
		if !v.revealed {
			continue
		}
		if v.choice == VoteFor {
			forTokens += v.tokens
		} else {
			againstTokens += v.tokens
		}
	}
	return forTokens, againstTokens
}

func passed(p *poll, forTokens, againstTokens uint64) bool {
	total := forTokens + againstTokens
	if total == 0 {
		return false
	}
	return forTokens*100 > p.quorum*total
}
