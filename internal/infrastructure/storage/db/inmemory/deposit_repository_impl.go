package inmemory

import (
	"context"

	"github.com/tdex-network/tdex-timelock/internal/core/domain"
)

type depositRepositoryImpl struct {
	store *depositInmemoryStore
}

// NewDepositRepositoryImpl returns a new in-memory domain.DepositRepository
// backed by the given store.
func NewDepositRepositoryImpl(store *depositInmemoryStore) domain.DepositRepository {
	return &depositRepositoryImpl{store}
}

func (r *depositRepositoryImpl) AddDeposit(
	_ context.Context, deposit *domain.Deposit,
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	deposit.ID = uint64(len(r.store.deposits))
	r.store.deposits = append(r.store.deposits, *deposit)
	r.store.depositsByOwner[deposit.Owner] = append(
		r.store.depositsByOwner[deposit.Owner], deposit.ID,
	)
	return nil
}

func (r *depositRepositoryImpl) GetDeposit(
	_ context.Context, id uint64,
) (*domain.Deposit, error) {
	r.store.locker.RLock()
	defer r.store.locker.RUnlock()

	if id >= uint64(len(r.store.deposits)) {
		return nil, domain.ErrInvalidDepositID
	}
	deposit := r.store.deposits[id]
	return &deposit, nil
}

func (r *depositRepositoryImpl) GetDepositsForOwner(
	_ context.Context, owner string, page domain.Page,
) ([]domain.Deposit, error) {
	r.store.locker.RLock()
	defer r.store.locker.RUnlock()

	ids := r.store.depositsByOwner[owner]
	start, end := domain.PageBounds(page, len(ids))

	deposits := make([]domain.Deposit, 0, end-start)
	for _, id := range ids[start:end] {
		deposits = append(deposits, r.store.deposits[id])
	}
	return deposits, nil
}

func (r *depositRepositoryImpl) GetAllDeposits(
	_ context.Context, page domain.Page,
) ([]domain.Deposit, error) {
	r.store.locker.RLock()
	defer r.store.locker.RUnlock()

	start, end := domain.PageBounds(page, len(r.store.deposits))

	deposits := make([]domain.Deposit, end-start)
	copy(deposits, r.store.deposits[start:end])
	return deposits, nil
}

func (r *depositRepositoryImpl) CountDeposits(_ context.Context) (uint64, error) {
	r.store.locker.RLock()
	defer r.store.locker.RUnlock()

	return uint64(len(r.store.deposits)), nil
}

func (r *depositRepositoryImpl) MarkWithdrawn(
	_ context.Context, ids []uint64, timestamp int64,
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	// Validate everything before touching the store so that the update is
	// all or nothing.
	seen := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		if id >= uint64(len(r.store.deposits)) {
			return domain.ErrInvalidDepositID
		}
		if _, ok := seen[id]; ok || r.store.deposits[id].Withdrawn {
			return domain.ErrAlreadyWithdrawn
		}
		seen[id] = struct{}{}
	}

	for _, id := range ids {
		r.store.deposits[id].Withdrawn = true
		r.store.deposits[id].WithdrawnAt = timestamp
	}
	return nil
}
