package domain

import (
	"math"
	"strconv"
	"time"
)

const (
	DepositLocked DepositStatus = iota
	DepositEligible
	DepositWithdrawn
)

var depositStatusToString = map[DepositStatus]string{
	DepositLocked:    "LOCKED",
	DepositEligible:  "ELIGIBLE",
	DepositWithdrawn: "WITHDRAWN",
}

// DepositStatus is derived from the deposit timestamp and the current time,
// except for DepositWithdrawn that is the only persisted transition.
type DepositStatus int

func (s DepositStatus) String() string {
	return depositStatusToString[s]
}

// Deposit is a sum of tokens held in escrow on behalf of its owner.
type Deposit struct {
	ID          uint64
	Owner       string
	Amount      uint64
	Timestamp   int64
	Withdrawn   bool
	WithdrawnAt int64
}

// NewDeposit returns a not yet withdrawn deposit. The ID is assigned by the
// repository when the deposit is added.
func NewDeposit(owner string, amount uint64, timestamp int64) (*Deposit, error) {
	if len(owner) <= 0 {
		return nil, ErrInvalidAccount
	}
	if amount == 0 {
		return nil, ErrZeroAmount
	}
	return &Deposit{
		Owner:     owner,
		Amount:    amount,
		Timestamp: timestamp,
	}, nil
}

// IsMatured returns whether the lock period of the deposit has elapsed,
// regardless of it being withdrawn or not.
func (d *Deposit) IsMatured(now time.Time) bool {
	return IsMatured(d.Timestamp, now)
}

// IsWithdrawable returns whether the deposit is matured and not withdrawn yet.
func (d *Deposit) IsWithdrawable(now time.Time) bool {
	return !d.Withdrawn && d.IsMatured(now)
}

// Status returns the current state of the deposit.
func (d *Deposit) Status(now time.Time) DepositStatus {
	if d.Withdrawn {
		return DepositWithdrawn
	}
	if d.IsMatured(now) {
		return DepositEligible
	}
	return DepositLocked
}

// MaturityTime returns the unix time the deposit becomes withdrawable.
func (d *Deposit) MaturityTime() int64 {
	return MaturityTime(d.Timestamp)
}

// Withdraw flags the deposit as withdrawn. It fails if it already is.
func (d *Deposit) Withdraw(timestamp int64) error {
	if d.Withdrawn {
		return ErrAlreadyWithdrawn
	}
	d.Withdrawn = true
	d.WithdrawnAt = timestamp
	return nil
}

// ParseDepositID parses a canonical unsigned decimal deposit id. Signs,
// leading zeros, surrounding spaces and any other non canonical form are
// rejected.
func ParseDepositID(str string) (uint64, error) {
	id, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0, ErrInvalidDepositID
	}
	if strconv.FormatUint(id, 10) != str {
		return 0, ErrInvalidDepositID
	}
	return id, nil
}

// SumAmounts returns the sum of the given deposits' amounts.
func SumAmounts(deposits []Deposit) (uint64, error) {
	var total uint64
	for _, d := range deposits {
		if d.Amount > math.MaxUint64-total {
			return 0, ErrAmountOverflow
		}
		total += d.Amount
	}
	return total, nil
}
