package db_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thanhpk/randstr"

	"github.com/tdex-network/tdex-timelock/internal/core/domain"
	"github.com/tdex-network/tdex-timelock/internal/core/ports"
	dbbadger "github.com/tdex-network/tdex-timelock/internal/infrastructure/storage/db/badger"
	"github.com/tdex-network/tdex-timelock/internal/infrastructure/storage/db/inmemory"
)

type repoManager struct {
	Name    string
	Manager ports.RepoManager
}

func createRepoManagers(t *testing.T) []repoManager {
	badgerInMemory, err := dbbadger.NewRepoManager("", nil)
	require.NoError(t, err)

	badgerOnDisk, err := dbbadger.NewRepoManager(t.TempDir(), nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		badgerInMemory.Close()
		badgerOnDisk.Close()
	})

	return []repoManager{
		{
			Name:    "inmemory",
			Manager: inmemory.NewRepoManager(),
		},
		{
			Name:    "badger_inmemory",
			Manager: badgerInMemory,
		},
		{
			Name:    "badger",
			Manager: badgerOnDisk,
		},
	}
}

func makeRandomDeposits(num int, owners []string) []*domain.Deposit {
	deposits := make([]*domain.Deposit, 0, num)
	for i := 0; i < num; i++ {
		owner := owners[i%len(owners)]
		d, _ := domain.NewDeposit(
			owner, uint64(randomIntInRange(1, 1000000)), randomTimestamp(),
		)
		deposits = append(deposits, d)
	}
	return deposits
}

func randomAccount() string {
	return randstr.Hex(20)
}

func randomTimestamp() int64 {
	return int64(randomIntInRange(1000000000, 1662688000))
}

func randomIntInRange(min, max int) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(n.Int64()) + min
}
