package application_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-timelock/internal/core/application"
	"github.com/tdex-network/tdex-timelock/internal/core/domain"
	"github.com/tdex-network/tdex-timelock/internal/infrastructure/clock"
	inmemorytoken "github.com/tdex-network/tdex-timelock/internal/infrastructure/token/inmemory"
)

func TestOperatorSimulation(t *testing.T) {
	token, err := inmemorytoken.NewToken(escrowAccount)
	require.NoError(t, err)
	clk := clock.NewManualClock(startTime)

	svc := application.NewOperatorService(nil, token, clk)

	require.NoError(t, svc.Faucet(ctx, "alice", 100))
	require.ErrorIs(t, svc.Faucet(ctx, "alice", 0), domain.ErrZeroAmount)
	require.NoError(t, svc.Approve(ctx, "alice", 40))

	balance, allowance, err := svc.BalanceOf(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, uint64(100), balance)
	require.Equal(t, uint64(40), allowance)

	now, err := svc.AdvanceClock(ctx, domain.LockDuration)
	require.NoError(t, err)
	require.Equal(t, startTime.Add(domain.LockDuration), now)
	require.Equal(t, now, clk.Now())

	_, err = svc.AdvanceClock(ctx, -time.Second)
	require.ErrorIs(t, err, application.ErrInvalidDuration)
}

func TestOperatorSimulationDisabled(t *testing.T) {
	svc := application.NewOperatorService(nil, nil, nil)

	err := svc.Faucet(ctx, "alice", 100)
	require.ErrorIs(t, err, application.ErrSimulationDisabled)

	err = svc.Approve(ctx, "alice", 100)
	require.ErrorIs(t, err, application.ErrSimulationDisabled)

	_, _, err = svc.BalanceOf(ctx, "alice")
	require.ErrorIs(t, err, application.ErrSimulationDisabled)

	_, err = svc.AdvanceClock(ctx, time.Hour)
	require.ErrorIs(t, err, application.ErrSimulationDisabled)

	_, err = svc.AddWebhook(ctx, application.DepositCreatedTopic, "http://localhost", "")
	require.ErrorIs(t, err, application.ErrPubSubNotInitialized)
}

func TestOperatorWebhooks(t *testing.T) {
	pubsub := newRecordingPubSub()
	svc := application.NewOperatorService(pubsub, nil, nil)

	_, err := svc.AddWebhook(ctx, "UNKNOWN", "http://localhost", "")
	require.ErrorIs(t, err, application.ErrUnknownTopic)

	_, err = svc.ListWebhooks(ctx, "UNKNOWN")
	require.ErrorIs(t, err, application.ErrUnknownTopic)

	_, err = svc.AddWebhook(ctx, application.DepositCreatedTopic, "http://localhost", "")
	require.NoError(t, err)

	hooks, err := svc.ListWebhooks(ctx, application.DepositCreatedTopic)
	require.NoError(t, err)
	require.Empty(t, hooks)

	require.NoError(t, svc.RemoveWebhook(ctx, "id"))
}
