// Package models defines the registry's persisted and wire-facing types.
package models

import (
	"time"

	"curio/pkg/domain"
)

// Item is a registry entry. An item exists iff Owner is set; Stake may be
// zero without affecting existence.
type Item struct {
	ID         domain.ItemID
	Data       domain.ItemData
	Owner      domain.Address
	Stake      uint64
	UnlockTime time.Time
}

// Locked reports whether the item is still in its application phase at now.
func (i Item) Locked(now time.Time) bool {
	return i.UnlockTime.After(now)
}

// Outcome is the result of a resolved challenge. It is a dedicated enum
// rather than a bool because the voting polarity ("passed" for whom?) is an
// easy sign to flip; the enum keeps the direction explicit at every call site.
type Outcome int

const (
	// OutcomeChallengeSucceeded means the vote went against keeping the item
	// listed: the item is rejected and the challenger is rewarded.
	OutcomeChallengeSucceeded Outcome = iota + 1
	// OutcomeChallengeFailed means the listing survived the vote: the item
	// stays and its owner's stake grows by the winner reward.
	OutcomeChallengeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeChallengeSucceeded:
		return "challenge_succeeded"
	case OutcomeChallengeFailed:
		return "challenge_failed"
	default:
		return "unknown"
	}
}
