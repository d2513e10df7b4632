package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-timelock/internal/core/application"
	"github.com/tdex-network/tdex-timelock/internal/infrastructure/clock"
)

const escrowAccount = "escrow"

func TestRestartKeepsEscrowBalance(t *testing.T) {
	ctx := context.Background()
	dbDir := t.TempDir()

	token, cfg := newDaemonState(t, application.DBBadger, dbDir)
	minted, err := mintInitialSupply(token, "alice", 1000)
	require.NoError(t, err)
	require.True(t, minted)
	require.NoError(t, token.Approve("alice", 300))
	_, err = cfg.EscrowService().Deposit(ctx, "alice", 300)
	require.NoError(t, err)
	require.NoError(t, checkEscrowBalance(ctx, cfg.EscrowService()))
	cfg.RepoManager().Close()
	token.Close()

	token, cfg = newDaemonState(t, application.DBBadger, dbDir)
	defer cfg.RepoManager().Close()
	defer token.Close()

	// The initial supply is not minted again.
	minted, err = mintInitialSupply(token, "alice", 1000)
	require.NoError(t, err)
	require.False(t, minted)
	require.Equal(t, uint64(1000), token.TotalSupply())

	balance, err := token.BalanceOf(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, uint64(700), balance)
	require.NoError(t, checkEscrowBalance(ctx, cfg.EscrowService()))
}

func TestInconsistentEscrowBalance(t *testing.T) {
	ctx := context.Background()
	dbDir := t.TempDir()

	token, cfg := newDaemonState(t, application.DBBadger, dbDir)
	_, err := mintInitialSupply(token, "alice", 1000)
	require.NoError(t, err)
	require.NoError(t, token.Approve("alice", 300))
	_, err = cfg.EscrowService().Deposit(ctx, "alice", 300)
	require.NoError(t, err)
	cfg.RepoManager().Close()
	token.Close()

	// A ledger reopened with an empty token owes funds the escrow can't pay.
	token, cfg = newDaemonState(t, application.DBInMemory, "")
	defer cfg.RepoManager().Close()
	defer token.Close()
	badgerCfg := &application.Config{
		DBType:       application.DBBadger,
		DBConfig:     dbDir,
		TokenGateway: token,
		Clock:        clock.NewManualClock(time.Now()),
	}
	require.NoError(t, badgerCfg.Validate())
	defer badgerCfg.RepoManager().Close()

	require.NoError(t, checkEscrowBalance(ctx, cfg.EscrowService()))
	require.Error(t, checkEscrowBalance(ctx, badgerCfg.EscrowService()))
}

func TestFailingNewSimulatedToken(t *testing.T) {
	_, err := newSimulatedToken("postgres", escrowAccount, t.TempDir())
	require.Error(t, err)

	_, err = newSimulatedToken(application.DBBadger, "", t.TempDir())
	require.Error(t, err)
}

func newDaemonState(
	t *testing.T, dbType, dbDir string,
) (daemonToken, *application.Config) {
	token, err := newSimulatedToken(dbType, escrowAccount, dbDir)
	require.NoError(t, err)

	cfg := &application.Config{
		DBType:       dbType,
		DBConfig:     dbDir,
		TokenGateway: token,
		Clock:        clock.NewManualClock(time.Now()),
	}
	require.NoError(t, cfg.Validate())
	return token, cfg
}
