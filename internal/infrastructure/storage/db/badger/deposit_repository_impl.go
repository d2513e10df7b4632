package dbbadger

import (
	"context"
	"errors"
	"sort"

	"github.com/dgraph-io/badger/v3"
	"github.com/tdex-network/tdex-timelock/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

const maxTxRetries = 100

type depositRepositoryImpl struct {
	store *badgerhold.Store
}

// NewDepositRepositoryImpl initialize a badger implementation of the
// domain.DepositRepository.
func NewDepositRepositoryImpl(store *badgerhold.Store) domain.DepositRepository {
	return &depositRepositoryImpl{store}
}

func (r *depositRepositoryImpl) AddDeposit(
	ctx context.Context, deposit *domain.Deposit,
) error {
	var id uint64
	if err := r.update(func(tx *badger.Txn) error {
		counter, err := r.getCounter(tx)
		if err != nil {
			return err
		}

		id = counter.Next
		d := mapDomainDepositToInfraDeposit(*deposit)
		d.ID = id
		if err := r.store.TxInsert(tx, id, d); err != nil {
			return err
		}

		counter.Next++
		return r.store.TxUpsert(tx, depositCounterKey, counter)
	}); err != nil {
		return err
	}

	deposit.ID = id
	return nil
}

func (r *depositRepositoryImpl) GetDeposit(
	ctx context.Context, id uint64,
) (*domain.Deposit, error) {
	var deposit *domain.Deposit
	if err := r.store.Badger().View(func(tx *badger.Txn) error {
		d, err := r.getDeposit(tx, id)
		if err != nil {
			return err
		}
		deposit = d
		return nil
	}); err != nil {
		return nil, err
	}
	return deposit, nil
}

func (r *depositRepositoryImpl) GetDepositsForOwner(
	ctx context.Context, owner string, page domain.Page,
) ([]domain.Deposit, error) {
	query := badgerhold.Where("Owner").Eq(owner).Index("Owner")
	return r.findDeposits(query, page)
}

func (r *depositRepositoryImpl) GetAllDeposits(
	ctx context.Context, page domain.Page,
) ([]domain.Deposit, error) {
	return r.findDeposits(nil, page)
}

func (r *depositRepositoryImpl) CountDeposits(ctx context.Context) (uint64, error) {
	var count uint64
	if err := r.store.Badger().View(func(tx *badger.Txn) error {
		counter, err := r.getCounter(tx)
		if err != nil {
			return err
		}
		count = counter.Next
		return nil
	}); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *depositRepositoryImpl) MarkWithdrawn(
	ctx context.Context, ids []uint64, timestamp int64,
) error {
	// Any error makes badger discard the whole transaction.
	return r.update(func(tx *badger.Txn) error {
		seen := make(map[uint64]struct{}, len(ids))
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				return domain.ErrAlreadyWithdrawn
			}
			seen[id] = struct{}{}

			deposit, err := r.getDeposit(tx, id)
			if err != nil {
				return err
			}
			if err := deposit.Withdraw(timestamp); err != nil {
				return err
			}
			if err := r.store.TxUpdate(
				tx, id, mapDomainDepositToInfraDeposit(*deposit),
			); err != nil {
				return err
			}
		}
		return nil
	})
}

// update runs fn in a read-write transaction, retrying in case of conflicts
// with concurrent transactions.
func (r *depositRepositoryImpl) update(fn func(tx *badger.Txn) error) error {
	var err error
	for i := 0; i < maxTxRetries; i++ {
		err = r.store.Badger().Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}

func (r *depositRepositoryImpl) getCounter(tx *badger.Txn) (*depositCounter, error) {
	counter := &depositCounter{}
	if err := r.store.TxGet(tx, depositCounterKey, counter); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return &depositCounter{}, nil
		}
		return nil, err
	}
	return counter, nil
}

func (r *depositRepositoryImpl) getDeposit(
	tx *badger.Txn, id uint64,
) (*domain.Deposit, error) {
	var deposit Deposit
	if err := r.store.TxGet(tx, id, &deposit); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, domain.ErrInvalidDepositID
		}
		return nil, err
	}
	return mapInfraDepositToDomainDeposit(deposit), nil
}

func (r *depositRepositoryImpl) findDeposits(
	query *badgerhold.Query, page domain.Page,
) ([]domain.Deposit, error) {
	var deposits []Deposit
	if err := r.store.Find(&deposits, query); err != nil {
		return nil, err
	}

	// Keys are not stored in numeric order, ledger order is restored here.
	sort.Slice(deposits, func(i, j int) bool {
		return deposits[i].ID < deposits[j].ID
	})

	start, end := domain.PageBounds(page, len(deposits))
	result := make([]domain.Deposit, 0, end-start)
	for _, d := range deposits[start:end] {
		result = append(result, *mapInfraDepositToDomainDeposit(d))
	}
	return result, nil
}
