// Package events defines the registry's observable side effects and the
// publishers that deliver them. One event is emitted per state transition;
// publishing is observability, not state, so emit failures are logged by the
// caller and never abort the operation that produced them.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Type names a registry state transition.
type Type string

const (
	TypeItemAdded          Type = "item_added"
	TypeItemRemoved        Type = "item_removed"
	TypeNewStake           Type = "new_stake"
	TypeIncreasedStake     Type = "increased_stake"
	TypeDecreasedStake     Type = "decreased_stake"
	TypeApplication        Type = "application"
	TypeChallengeInitiated Type = "challenge_initiated"
	TypeChallengeClosed    Type = "challenge_closed"
	TypeChallengeSucceeded Type = "challenge_succeeded"
	TypeChallengeFailed    Type = "challenge_failed"
	TypeItemRejected       Type = "item_rejected"
	TypeRewardClaimed      Type = "reward_claimed"
	TypeChallengeCreated   Type = "plcr_voting_challenge_created"
)

// Event is the payload published for a single transition. Only the fields
// relevant to the event type are set.
type Event struct {
	ID          string    `json:"id"`
	Type        Type      `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	ItemID      string    `json:"item_id,omitempty"`
	ItemData    string    `json:"item_data,omitempty"`
	Account     string    `json:"account,omitempty"`
	Amount      uint64    `json:"amount,omitempty"`
	ChallengeID string    `json:"challenge_id,omitempty"`
	PollID      uint64    `json:"poll_id,omitempty"`
	Outcome     string    `json:"outcome,omitempty"`
}

// New builds an event of the given type with an id and timestamp assigned.
func New(t Type) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: time.Now().UTC(),
	}
}
