package db_test

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tdex-network/tdex-timelock/internal/core/domain"
)

func TestDepositRepositoryImplementations(t *testing.T) {
	managers := createRepoManagers(t)

	for i := range managers {
		m := managers[i]

		t.Run(m.Name, func(t *testing.T) {
			t.Run("add_and_get_deposits", func(t *testing.T) {
				testAddAndGetDeposits(t, m.Manager.DepositRepository())
			})
			t.Run("mark_withdrawn", func(t *testing.T) {
				testMarkWithdrawn(t, m.Manager.DepositRepository())
			})
			t.Run("concurrent_add_deposits", func(t *testing.T) {
				testConcurrentAddDeposits(t, m.Manager.DepositRepository())
			})
		})
	}
}

func testAddAndGetDeposits(t *testing.T, repo domain.DepositRepository) {
	ctx := context.Background()
	owners := []string{randomAccount(), randomAccount()}
	deposits := makeRandomDeposits(20, owners)

	count, err := repo.CountDeposits(ctx)
	require.NoError(t, err)
	require.Zero(t, count)

	allDeposits, err := repo.GetAllDeposits(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, allDeposits)

	_, err = repo.GetDeposit(ctx, 0)
	require.ErrorIs(t, err, domain.ErrInvalidDepositID)

	for i, d := range deposits {
		err := repo.AddDeposit(ctx, d)
		require.NoError(t, err)
		require.Equal(t, uint64(i), d.ID)
	}

	count, err = repo.CountDeposits(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(20), count)

	allDeposits, err = repo.GetAllDeposits(ctx, nil)
	require.NoError(t, err)
	require.Len(t, allDeposits, 20)
	for i, d := range allDeposits {
		require.Equal(t, *deposits[i], d)
	}

	d, err := repo.GetDeposit(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, *deposits[7], *d)

	_, err = repo.GetDeposit(ctx, 20)
	require.ErrorIs(t, err, domain.ErrInvalidDepositID)

	// Test that pagination is correct by getting all 20 deposits in 4 pages,
	// each including 5 items. The concatenation of all pages must match the
	// non-paginated list item per item.
	allPagedDeposits := make([]domain.Deposit, 0)
	for i := 1; i < 5; i++ {
		pagedDeposits, err := repo.GetAllDeposits(ctx, domain.NewPage(int64(i), 5))
		require.NoError(t, err)
		require.Len(t, pagedDeposits, 5)
		allPagedDeposits = append(allPagedDeposits, pagedDeposits...)
	}
	require.Exactly(t, allDeposits, allPagedDeposits)

	depositsByOwner, err := repo.GetDepositsForOwner(ctx, owners[0], nil)
	require.NoError(t, err)
	require.Len(t, depositsByOwner, 10)
	for i, d := range depositsByOwner {
		require.Equal(t, owners[0], d.Owner)
		require.Equal(t, uint64(2*i), d.ID)
	}

	pagedByOwner, err := repo.GetDepositsForOwner(
		ctx, owners[1], domain.NewPage(2, 4),
	)
	require.NoError(t, err)
	require.Len(t, pagedByOwner, 4)
	require.Equal(t, uint64(9), pagedByOwner[0].ID)

	pagedByOwner, err = repo.GetDepositsForOwner(
		ctx, owners[1], domain.NewPage(2, math.MaxInt64),
	)
	require.NoError(t, err)
	require.Empty(t, pagedByOwner)

	pagedDeposits, err := repo.GetAllDeposits(ctx, domain.NewPage(1, math.MaxInt64))
	require.NoError(t, err)
	require.Exactly(t, allDeposits, pagedDeposits)

	depositsByOwner, err = repo.GetDepositsForOwner(ctx, randomAccount(), nil)
	require.NoError(t, err)
	require.Empty(t, depositsByOwner)
}

func testMarkWithdrawn(t *testing.T, repo domain.DepositRepository) {
	ctx := context.Background()
	owner := randomAccount()

	count, err := repo.CountDeposits(ctx)
	require.NoError(t, err)

	deposits := makeRandomDeposits(3, []string{owner})
	for _, d := range deposits {
		require.NoError(t, repo.AddDeposit(ctx, d))
	}
	ids := []uint64{deposits[0].ID, deposits[1].ID, deposits[2].ID}
	require.Equal(t, []uint64{count, count + 1, count + 2}, ids)

	err = repo.MarkWithdrawn(ctx, []uint64{ids[0]}, 1700000000)
	require.NoError(t, err)

	d, err := repo.GetDeposit(ctx, ids[0])
	require.NoError(t, err)
	require.True(t, d.Withdrawn)
	require.Equal(t, int64(1700000000), d.WithdrawnAt)

	// A batch including an already withdrawn deposit must leave the others
	// untouched.
	err = repo.MarkWithdrawn(ctx, []uint64{ids[1], ids[0]}, 1700000001)
	require.ErrorIs(t, err, domain.ErrAlreadyWithdrawn)

	d, err = repo.GetDeposit(ctx, ids[1])
	require.NoError(t, err)
	require.False(t, d.Withdrawn)

	// Same for batches referencing unknown deposits.
	err = repo.MarkWithdrawn(ctx, []uint64{ids[1], ids[2] + 100}, 1700000001)
	require.ErrorIs(t, err, domain.ErrInvalidDepositID)

	d, err = repo.GetDeposit(ctx, ids[1])
	require.NoError(t, err)
	require.False(t, d.Withdrawn)

	// And for batches with duplicates.
	err = repo.MarkWithdrawn(ctx, []uint64{ids[1], ids[1]}, 1700000001)
	require.ErrorIs(t, err, domain.ErrAlreadyWithdrawn)

	d, err = repo.GetDeposit(ctx, ids[1])
	require.NoError(t, err)
	require.False(t, d.Withdrawn)

	err = repo.MarkWithdrawn(ctx, []uint64{ids[1], ids[2]}, 1700000002)
	require.NoError(t, err)

	depositsByOwner, err := repo.GetDepositsForOwner(ctx, owner, nil)
	require.NoError(t, err)
	require.Len(t, depositsByOwner, 3)
	for _, d := range depositsByOwner {
		require.True(t, d.Withdrawn)
	}

	newCount, err := repo.CountDeposits(ctx)
	require.NoError(t, err)
	require.Equal(t, count+3, newCount)
}

func testConcurrentAddDeposits(t *testing.T, repo domain.DepositRepository) {
	ctx := context.Background()
	owners := []string{randomAccount(), randomAccount(), randomAccount()}
	deposits := makeRandomDeposits(30, owners)

	count, err := repo.CountDeposits(ctx)
	require.NoError(t, err)

	wg := &sync.WaitGroup{}
	errs := make(chan error, len(deposits))
	for i := range deposits {
		wg.Add(1)
		go func(d *domain.Deposit) {
			defer wg.Done()
			errs <- repo.AddDeposit(ctx, d)
		}(deposits[i])
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	ids := make(map[uint64]struct{})
	for _, d := range deposits {
		require.GreaterOrEqual(t, d.ID, count)
		require.Less(t, d.ID, count+30)
		ids[d.ID] = struct{}{}
	}
	require.Len(t, ids, 30)

	newCount, err := repo.CountDeposits(ctx)
	require.NoError(t, err)
	require.Equal(t, count+30, newCount)
}
