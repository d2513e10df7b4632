package application

import (
	"context"
	"time"

	"github.com/tdex-network/tdex-timelock/internal/core/domain"
)

type Page = domain.Page

// DepositInfo is a deposit along with its current derived status.
type DepositInfo struct {
	domain.Deposit
	Status       domain.DepositStatus
	MaturityTime int64
}

func newDepositInfo(d domain.Deposit, now time.Time) DepositInfo {
	return DepositInfo{
		Deposit:      d,
		Status:       d.Status(now),
		MaturityTime: d.MaturityTime(),
	}
}

// WithdrawalResult is the outcome of a bulk withdrawal.
type WithdrawalResult struct {
	Owner      string
	DepositIDs []uint64
	Amount     uint64
}

// EscrowBalance compares the balance of the escrow computed from the ledger
// with the one reported by the token gateway.
type EscrowBalance struct {
	LedgerBalance  uint64
	GatewayBalance uint64
}

// IsConsistent returns whether the gateway holds exactly what the ledger
// owes to depositors.
func (b EscrowBalance) IsConsistent() bool {
	return b.GatewayBalance == b.LedgerBalance
}

type Webhook struct {
	Id       string
	Topic    string
	Endpoint string
	IsSecure bool
}

// SimulatedToken is the subset of a simulated token exposed by the operator
// service to fund accounts and grant allowances.
type SimulatedToken interface {
	Mint(account string, amount uint64) error
	Approve(owner string, amount uint64) error
	Allowance(owner string) uint64
	BalanceOf(ctx context.Context, account string) (uint64, error)
}

// SimulatedClock is a clock that can be moved forward out-of-band.
type SimulatedClock interface {
	Advance(d time.Duration) time.Time
}
