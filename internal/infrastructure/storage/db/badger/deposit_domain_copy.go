package dbbadger

import "github.com/tdex-network/tdex-timelock/internal/core/domain"

const depositCounterKey = "deposit_counter"

// Deposit is the storage representation of domain.Deposit, indexed by owner.
type Deposit struct {
	ID          uint64
	Owner       string `badgerholdIndex:"Owner"`
	Amount      uint64
	Timestamp   int64
	Withdrawn   bool
	WithdrawnAt int64
}

// depositCounter holds the id to assign to the next deposit.
type depositCounter struct {
	Next uint64
}

func mapDomainDepositToInfraDeposit(d domain.Deposit) *Deposit {
	return &Deposit{
		ID:          d.ID,
		Owner:       d.Owner,
		Amount:      d.Amount,
		Timestamp:   d.Timestamp,
		Withdrawn:   d.Withdrawn,
		WithdrawnAt: d.WithdrawnAt,
	}
}

func mapInfraDepositToDomainDeposit(d Deposit) *domain.Deposit {
	return &domain.Deposit{
		ID:          d.ID,
		Owner:       d.Owner,
		Amount:      d.Amount,
		Timestamp:   d.Timestamp,
		Withdrawn:   d.Withdrawn,
		WithdrawnAt: d.WithdrawnAt,
	}
}
