package application

import (
	"sort"
	"sync"

	"github.com/tdex-network/tdex-timelock/internal/core/domain"
)

// pendingWithdrawals tracks the deposits paid out to their owners whose
// withdrawal could not be written to the ledger yet. They are reported as
// withdrawn until the ledger catches up.
type pendingWithdrawals struct {
	lock        *sync.RWMutex
	withdrawnAt map[uint64]int64
}

func newPendingWithdrawals() *pendingWithdrawals {
	return &pendingWithdrawals{
		lock:        &sync.RWMutex{},
		withdrawnAt: make(map[uint64]int64),
	}
}

func (p *pendingWithdrawals) add(ids []uint64, timestamp int64) {
	p.lock.Lock()
	defer p.lock.Unlock()

	for _, id := range ids {
		p.withdrawnAt[id] = timestamp
	}
}

func (p *pendingWithdrawals) remove(id uint64) {
	p.lock.Lock()
	defer p.lock.Unlock()

	delete(p.withdrawnAt, id)
}

// list returns the pending ids in ascending order with their withdrawal time.
func (p *pendingWithdrawals) list() ([]uint64, map[uint64]int64) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	ids := make([]uint64, 0, len(p.withdrawnAt))
	timestamps := make(map[uint64]int64, len(p.withdrawnAt))
	for id, ts := range p.withdrawnAt {
		ids = append(ids, id)
		timestamps[id] = ts
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, timestamps
}

// apply marks as withdrawn the given deposits that are pending.
func (p *pendingWithdrawals) apply(deposits ...*domain.Deposit) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	if len(p.withdrawnAt) <= 0 {
		return
	}
	for _, d := range deposits {
		if ts, ok := p.withdrawnAt[d.ID]; ok && !d.Withdrawn {
			d.Withdrawn = true
			d.WithdrawnAt = ts
		}
	}
}

func (p *pendingWithdrawals) applyToList(deposits []domain.Deposit) {
	list := make([]*domain.Deposit, 0, len(deposits))
	for i := range deposits {
		list = append(list, &deposits[i])
	}
	p.apply(list...)
}
