// Package token provides an in-memory fungible-token ledger implementing
// ports.TokenLedger. It backs the dev server and the engine test harness;
// production deployments point the registry at an external ledger instead.
package token

import (
	"context"
	"fmt"
	"sync"

	"curio/pkg/domain"
)

// Ledger tracks balances and allowances per account. All methods are safe
// for concurrent use.
type Ledger struct {
	mu         sync.Mutex
	balances   map[domain.Address]uint64
	allowances map[domain.Address]map[domain.Address]uint64
}

func NewLedger() *Ledger {
	return &Ledger{
		balances:   make(map[domain.Address]uint64),
		allowances: make(map[domain.Address]map[domain.Address]uint64),
	}
}

// Mint credits amount to account out of thin air. Test and dev setup only.
func (l *Ledger) Mint(account domain.Address, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[account] += amount
}

func (l *Ledger) Transfer(ctx context.Context, from, to domain.Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.move(from, to, amount)
}

func (l *Ledger) TransferFrom(ctx context.Context, spender, from, to domain.Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	allowed := l.allowances[from][spender]
	if allowed < amount {
		return fmt.Errorf("allowance of %s for %s is %d, need %d", from, spender, allowed, amount)
	}
	if err := l.move(from, to, amount); err != nil {
		return err
	}
	l.allowances[from][spender] = allowed - amount
	return nil
}

func (l *Ledger) Approve(ctx context.Context, owner, spender domain.Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.allowances[owner] == nil {
		l.allowances[owner] = make(map[domain.Address]uint64)
	}
	l.allowances[owner][spender] = amount
	return nil
}

func (l *Ledger) BalanceOf(ctx context.Context, account domain.Address) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[account], nil
}

func (l *Ledger) Allowance(ctx context.Context, owner, spender domain.Address) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.allowances[owner][spender], nil
}

// move debits from and credits to. Callers hold l.mu.
func (l *Ledger) move(from, to domain.Address, amount uint64) error {
	if balance := l.balances[from]; balance < amount {
		return fmt.Errorf("balance of %s is %d, need %d", from, balance, amount)
	}
	l.balances[from] -= amount
	l.balances[to] += amount
	return nil
}
