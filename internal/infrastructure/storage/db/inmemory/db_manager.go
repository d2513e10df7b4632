package inmemory

import (
	"sync"

	"github.com/tdex-network/tdex-timelock/internal/core/domain"
	"github.com/tdex-network/tdex-timelock/internal/core/ports"
)

type depositInmemoryStore struct {
	deposits        []domain.Deposit
	depositsByOwner map[string][]uint64
	locker          *sync.RWMutex
}

type repoManager struct {
	depositRepository domain.DepositRepository
}

// NewRepoManager returns a ports.RepoManager whose repositories keep
// everything in memory. Used for tests and throwaway simulated setups.
func NewRepoManager() ports.RepoManager {
	depositStore := &depositInmemoryStore{
		deposits:        make([]domain.Deposit, 0),
		depositsByOwner: make(map[string][]uint64),
		locker:          &sync.RWMutex{},
	}

	return &repoManager{
		depositRepository: NewDepositRepositoryImpl(depositStore),
	}
}

func (r *repoManager) DepositRepository() domain.DepositRepository {
	return r.depositRepository
}

func (r *repoManager) Close() {}
