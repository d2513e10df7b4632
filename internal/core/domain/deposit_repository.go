package domain

import "context"

// DepositRepository is the abstraction for any kind of database intended to
// persist the append-only ledger of Deposits.
type DepositRepository interface {
	// AddDeposit assigns the next available id to the given deposit and
	// persists it. Ids are dense and start from 0.
	AddDeposit(ctx context.Context, deposit *Deposit) error
	// GetDeposit returns the deposit with the given id, or ErrInvalidDepositID
	// if it does not exist.
	GetDeposit(ctx context.Context, id uint64) (*Deposit, error)
	// GetDepositsForOwner returns the deposits of the given owner in ascending
	// id order. A nil page returns all of them.
	GetDepositsForOwner(
		ctx context.Context, owner string, page Page,
	) ([]Deposit, error)
	// GetAllDeposits returns all deposits in ascending id order.
	GetAllDeposits(ctx context.Context, page Page) ([]Deposit, error)
	// CountDeposits returns the number of deposits ever added.
	CountDeposits(ctx context.Context) (uint64, error)
	// MarkWithdrawn flags all the given deposits as withdrawn at the given
	// time, in a single atomic step. If any of them does not exist or is
	// already withdrawn nothing is changed.
	MarkWithdrawn(ctx context.Context, ids []uint64, timestamp int64) error
}
