package ports

import "github.com/tdex-network/tdex-timelock/internal/core/domain"

// RepoManager holds the repositories of the escrow daemon.
type RepoManager interface {
	DepositRepository() domain.DepositRepository

	Close()
}
