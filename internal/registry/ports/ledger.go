// Package ports declares the interfaces the registry consumes. Implementations
// live elsewhere (internal/token, internal/voting, internal/challenge) or
// outside the process entirely; the engine only depends on these contracts.
package ports

import (
	"context"

	"curio/pkg/domain"
)

// TokenLedger is the fungible-token ledger the registry escrows stakes on.
// Every account, including the registry and each challenge, is an Address.
// A returned error means the ledger refused the operation (insufficient
// balance or allowance); the engine maps refusal to a transfer_failed error
// and aborts the enclosing operation.
type TokenLedger interface {
	// Transfer moves amount from one account to another.
	Transfer(ctx context.Context, from, to domain.Address, amount uint64) error
	// TransferFrom moves amount from `from` to `to`, spending the allowance
	// `from` granted to `spender`.
	TransferFrom(ctx context.Context, spender, from, to domain.Address, amount uint64) error
	// Approve sets the allowance owner grants to spender.
	Approve(ctx context.Context, owner, spender domain.Address, amount uint64) error
	// BalanceOf returns the balance of account.
	BalanceOf(ctx context.Context, account domain.Address) (uint64, error)
	// Allowance returns what spender may still pull from owner.
	Allowance(ctx context.Context, owner, spender domain.Address) (uint64, error)
}
