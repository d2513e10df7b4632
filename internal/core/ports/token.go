package ports

import "context"

// TokenGateway moves the escrowed fungible asset in and out of the escrow
// account.
type TokenGateway interface {
	// EscrowAccount returns the account holding the escrowed funds.
	EscrowAccount() string
	// Pull moves amount from the given account into escrow. It requires a
	// prior authorization from the account, and fails with
	// domain.ErrInsufficientAllowance or domain.ErrInsufficientBalance.
	Pull(ctx context.Context, from string, amount uint64) error
	// Push moves amount from escrow to the given account.
	Push(ctx context.Context, to string, amount uint64) error
	// BalanceOf returns the balance of the given account.
	BalanceOf(ctx context.Context, account string) (uint64, error)
}
