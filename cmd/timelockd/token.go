package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-timelock/internal/core/application"
	"github.com/tdex-network/tdex-timelock/internal/core/ports"
	badgertoken "github.com/tdex-network/tdex-timelock/internal/infrastructure/token/badger"
	inmemorytoken "github.com/tdex-network/tdex-timelock/internal/infrastructure/token/inmemory"
)

type daemonToken interface {
	ports.TokenGateway
	application.SimulatedToken
	TotalSupply() uint64
	Close()
}

// newSimulatedToken returns a token whose state has the same lifetime of the
// deposit ledger, persisted next to it when the ledger is.
func newSimulatedToken(dbType, escrowAccount, dbDir string) (daemonToken, error) {
	switch dbType {
	case application.DBBadger:
		return badgertoken.NewToken(escrowAccount, dbDir, log.New())
	case application.DBInMemory:
		return inmemorytoken.NewToken(escrowAccount)
	default:
		return nil, fmt.Errorf("unsupported db type %s", dbType)
	}
}

// mintInitialSupply funds the given account only the first time the token is
// created.
func mintInitialSupply(
	token daemonToken, account string, supply uint64,
) (bool, error) {
	if token.TotalSupply() > 0 {
		return false, nil
	}
	if err := token.Mint(account, supply); err != nil {
		return false, err
	}
	return true, nil
}

// checkEscrowBalance makes sure the escrow account holds exactly what the
// ledger owes before serving any request.
func checkEscrowBalance(ctx context.Context, svc application.EscrowService) error {
	balance, err := svc.GetEscrowBalance(ctx)
	if err != nil {
		return fmt.Errorf("failed to get escrow balance: %w", err)
	}
	if !balance.IsConsistent() {
		return fmt.Errorf(
			"escrow account holds %d but ledger owes %d to depositors",
			balance.GatewayBalance, balance.LedgerBalance,
		)
	}
	return nil
}
