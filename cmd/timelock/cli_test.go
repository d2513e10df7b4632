package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-timelock/internal/core/application"
	"github.com/tdex-network/tdex-timelock/internal/infrastructure/clock"
	"github.com/tdex-network/tdex-timelock/internal/infrastructure/pubsub"
	inmemorytoken "github.com/tdex-network/tdex-timelock/internal/infrastructure/token/inmemory"
	grpcinterface "github.com/tdex-network/tdex-timelock/internal/interfaces/grpc"
	"github.com/tdex-network/tdex-timelock/pkg/escrowrpc"
)

func TestState(t *testing.T) {
	useTempState(t)

	_, err := getState()
	require.Error(t, err)

	require.NoError(t, setState(map[string]string{rpcServerKey: "localhost:9000"}))
	require.NoError(t, setState(map[string]string{noTlsKey: "true"}))

	state, err := getState()
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		rpcServerKey: "localhost:9000",
		noTlsKey:     "true",
	}, state)
	require.Equal(t, int32(8), getPrecision())

	require.NoError(t, setState(map[string]string{precisionKey: "2"}))
	require.Equal(t, int32(2), getPrecision())
}

func TestCLI(t *testing.T) {
	useTempState(t)
	addr, operatorAddr := startDaemon(t)

	run := func(args ...string) error {
		return newApp().Run(append([]string{"timelock"}, args...))
	}

	require.Error(t, run("info"))
	require.NoError(t, run(
		"config", "init", "--rpcserver", addr, "--operator_rpcserver", addr, "--no_tls",
	))
	require.NoError(t, run("config"))

	// Operator commands are not served by the escrow interface.
	require.Error(t, run("faucet", "--account", "alice", "--amount", "10"))
	require.NoError(t, run("config", "set", operatorRpcServerKey, operatorAddr))

	require.NoError(t, run("faucet", "--account", "alice", "--amount", "10"))
	require.NoError(t, run("approve", "--owner", "alice", "--amount", "2.5"))
	require.NoError(t, run("deposit", "--owner", "alice", "--amount", "1.5"))
	require.NoError(t, run("deposit", "--owner", "alice", "--amount", "1"))
	require.Error(t, run("deposit", "--owner", "alice", "--amount", "1"))
	require.Error(t, run("deposit", "--owner", "alice", "--amount", "0.000000001"))
	require.Error(t, run("withdraw", "--deposit_id", "0", "--caller", "alice"))

	require.NoError(t, run("info"))
	require.NoError(t, run("deposits", "--owner", "alice"))
	require.NoError(t, run("deposits", "--deposit_id", "1"))
	require.NoError(t, run("withdrawable", "--owner", "alice"))
	require.NoError(t, run("withdrawable", "--deposit_id", "0"))

	require.NoError(t, run("advanceclock", "--duration", "2160h"))
	require.NoError(t, run("withdraw", "--deposit_id", "0", "--caller", "alice"))
	require.NoError(t, run("withdrawall", "--owner", "alice"))
	require.NoError(t, run("balance", "--account", "alice"))

	client, cleanup, err := getOperatorClient()
	require.NoError(t, err)
	defer cleanup()

	reply, err := client.BalanceOf(
		context.Background(), &escrowrpc.BalanceOfRequest{Account: "alice"},
	)
	require.NoError(t, err)
	require.Equal(t, uint64(10_00000000), reply.Balance)
	require.Zero(t, reply.Allowance)

	require.NoError(t, run(
		"webhooks", "add", "--topic", application.DepositCreatedTopic,
		"--endpoint", "http://localhost:8080/hook",
	))
	require.NoError(t, run("webhooks", "list"))
	require.Error(t, run("webhooks", "remove", "--id", "unknown"))
}

func useTempState(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	oldDataDir, oldStatePath := cliDataDir, statePath
	cliDataDir, statePath = dir, filepath.Join(dir, "state.json")
	t.Cleanup(func() {
		cliDataDir, statePath = oldDataDir, oldStatePath
	})
}

func startDaemon(t *testing.T) (string, string) {
	t.Helper()

	token, err := inmemorytoken.NewToken("escrow")
	require.NoError(t, err)
	clk := clock.NewManualClock(time.Unix(1600000000, 0))
	pubsubSvc, err := pubsub.NewService(100)
	require.NoError(t, err)

	cfg := &application.Config{
		DBType:         application.DBInMemory,
		TokenGateway:   token,
		Clock:          clk,
		PubSub:         pubsubSvc,
		SimulatedToken: token,
		SimulatedClock: clk,
	}
	require.NoError(t, cfg.Validate())

	svc, err := grpcinterface.NewService(grpcinterface.ServiceOpts{
		Address:         "127.0.0.1:0",
		OperatorAddress: "127.0.0.1:0",
		NoTls:           true,
		EscrowSvc:       cfg.EscrowService(),
		OperatorSvc:     cfg.OperatorService(),
		EventsSource:    pubsubSvc,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Start())

	t.Cleanup(func() {
		svc.Stop()
		pubsubSvc.Close()
		cfg.RepoManager().Close()
	})
	return svc.Addr(), svc.OperatorAddr()
}
