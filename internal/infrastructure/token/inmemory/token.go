package inmemorytoken

import (
	"context"
	"math"
	"sync"

	"github.com/tdex-network/tdex-timelock/internal/core/domain"
)

// Token is a simulated fungible token following ERC-20 semantics, restricted
// to the single spender that matters here: the escrow account.
// Pull behaves like transferFrom(owner, escrow) and therefore requires the
// owner to approve the escrow beforehand.
type Token struct {
	lock *sync.RWMutex

	escrowAccount string
	totalSupply   uint64
	balances      map[string]uint64
	allowances    map[string]uint64
}

// NewToken returns an empty token whose escrow is the given account.
func NewToken(escrowAccount string) (*Token, error) {
	if len(escrowAccount) <= 0 {
		return nil, domain.ErrInvalidAccount
	}
	return &Token{
		lock:          &sync.RWMutex{},
		escrowAccount: escrowAccount,
		balances:      make(map[string]uint64),
		allowances:    make(map[string]uint64),
	}, nil
}

func (t *Token) EscrowAccount() string {
	return t.escrowAccount
}

func (t *Token) Pull(_ context.Context, from string, amount uint64) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if len(from) <= 0 {
		return domain.ErrInvalidAccount
	}
	if t.allowances[from] < amount {
		return domain.ErrInsufficientAllowance
	}
	if err := t.transfer(from, t.escrowAccount, amount); err != nil {
		return err
	}
	t.allowances[from] -= amount
	return nil
}

func (t *Token) Push(_ context.Context, to string, amount uint64) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if len(to) <= 0 {
		return domain.ErrInvalidAccount
	}
	return t.transfer(t.escrowAccount, to, amount)
}

func (t *Token) BalanceOf(_ context.Context, account string) (uint64, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.balances[account], nil
}

// Approve sets the amount the escrow is allowed to pull from owner,
// overwriting any previous allowance.
func (t *Token) Approve(owner string, amount uint64) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if len(owner) <= 0 {
		return domain.ErrInvalidAccount
	}
	t.allowances[owner] = amount
	return nil
}

// Allowance returns the amount the escrow can still pull from owner.
func (t *Token) Allowance(owner string) uint64 {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.allowances[owner]
}

// Mint creates new tokens for the given account. The escrow account can only
// be funded through Pull.
func (t *Token) Mint(account string, amount uint64) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if len(account) <= 0 || account == t.escrowAccount {
		return domain.ErrInvalidAccount
	}
	if amount > math.MaxUint64-t.totalSupply {
		return domain.ErrAmountOverflow
	}
	t.totalSupply += amount
	t.balances[account] += amount
	return nil
}

// Transfer moves tokens between two accounts.
func (t *Token) Transfer(from, to string, amount uint64) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if len(from) <= 0 || len(to) <= 0 {
		return domain.ErrInvalidAccount
	}
	return t.transfer(from, to, amount)
}

func (t *Token) TotalSupply() uint64 {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.totalSupply
}

// Close is a no-op, the state of the token is lost on exit.
func (t *Token) Close() {}

// transfer expects the lock to be held. Balances never overflow since their
// sum is bounded by the total supply.
func (t *Token) transfer(from, to string, amount uint64) error {
	if t.balances[from] < amount {
		return domain.ErrInsufficientBalance
	}
	t.balances[from] -= amount
	t.balances[to] += amount
	return nil
}
