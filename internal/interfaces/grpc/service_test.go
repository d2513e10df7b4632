package grpcinterface_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-timelock/internal/core/application"
	"github.com/tdex-network/tdex-timelock/internal/core/domain"
	"github.com/tdex-network/tdex-timelock/internal/infrastructure/clock"
	"github.com/tdex-network/tdex-timelock/internal/infrastructure/pubsub"
	inmemorytoken "github.com/tdex-network/tdex-timelock/internal/infrastructure/token/inmemory"
	grpcinterface "github.com/tdex-network/tdex-timelock/internal/interfaces/grpc"
	"github.com/tdex-network/tdex-timelock/pkg/escrowrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

var ctx = context.Background()

func TestService(t *testing.T) {
	svc := newTestService(t)

	escrowClient := escrowrpc.NewEscrowServiceClient(dial(t, svc.Addr()))
	operatorClient := escrowrpc.NewOperatorServiceClient(dial(t, svc.OperatorAddr()))

	// Subscribe to events before doing anything.
	wsConn, _, err := websocket.DefaultDialer.Dial(
		fmt.Sprintf("ws://%s/v1/events?topic=%s", svc.Addr(), application.DepositCreatedTopic),
		nil,
	)
	require.NoError(t, err)
	t.Cleanup(func() { wsConn.Close() })

	_, err = escrowClient.Deposit(ctx, &escrowrpc.DepositRequest{
		Owner: "alice", Amount: 100,
	})
	requireCode(t, codes.FailedPrecondition, err)

	_, err = escrowClient.Deposit(ctx, &escrowrpc.DepositRequest{
		Owner: "alice", Amount: 0,
	})
	requireCode(t, codes.InvalidArgument, err)

	_, err = operatorClient.Faucet(ctx, &escrowrpc.FaucetRequest{
		Account: "alice", Amount: 100,
	})
	require.NoError(t, err)
	_, err = operatorClient.Approve(ctx, &escrowrpc.ApproveRequest{
		Owner: "alice", Amount: 100,
	})
	require.NoError(t, err)

	depositRes, err := escrowClient.Deposit(ctx, &escrowrpc.DepositRequest{
		Owner: "alice", Amount: 100,
	})
	require.NoError(t, err)
	require.Equal(t, "0", depositRes.DepositId)

	//nolint
	wsConn.SetReadDeadline(time.Now().Add(5 * time.Second))
	event := struct {
		Topic   string                 `json:"topic"`
		Payload map[string]interface{} `json:"payload"`
	}{}
	require.NoError(t, wsConn.ReadJSON(&event))
	require.Equal(t, application.DepositCreatedTopic, event.Topic)
	require.Equal(t, "0", event.Payload["deposit_id"])

	balanceRes, err := operatorClient.BalanceOf(ctx, &escrowrpc.BalanceOfRequest{
		Account: "alice",
	})
	require.NoError(t, err)
	require.Zero(t, balanceRes.Balance)
	require.Zero(t, balanceRes.Allowance)

	for _, id := range []string{"", "-0", "00", " 0", "0x0", "toString", "1.0"} {
		_, err := escrowClient.Withdraw(ctx, &escrowrpc.WithdrawRequest{
			DepositId: id, Caller: "alice",
		})
		requireCode(t, codes.InvalidArgument, err)
	}

	_, err = escrowClient.Withdraw(ctx, &escrowrpc.WithdrawRequest{
		DepositId: "1", Caller: "alice",
	})
	requireCode(t, codes.NotFound, err)

	_, err = escrowClient.Withdraw(ctx, &escrowrpc.WithdrawRequest{
		DepositId: "0", Caller: "bob",
	})
	requireCode(t, codes.PermissionDenied, err)

	_, err = escrowClient.Withdraw(ctx, &escrowrpc.WithdrawRequest{
		DepositId: "0", Caller: "alice",
	})
	requireCode(t, codes.FailedPrecondition, err)

	_, err = operatorClient.AdvanceClock(ctx, &escrowrpc.AdvanceClockRequest{
		Seconds: int64(domain.LockDuration.Seconds()),
	})
	require.NoError(t, err)

	withdrawableRes, err := escrowClient.IsWithdrawable(ctx, &escrowrpc.IsWithdrawableRequest{
		DepositId: "0",
	})
	require.NoError(t, err)
	require.True(t, withdrawableRes.Withdrawable)

	listRes, err := escrowClient.GetWithdrawableList(ctx, &escrowrpc.GetWithdrawableListRequest{
		Owner: "alice",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"0"}, listRes.DepositIds)

	_, err = escrowClient.Withdraw(ctx, &escrowrpc.WithdrawRequest{
		DepositId: "0", Caller: "alice",
	})
	require.NoError(t, err)

	_, err = escrowClient.WithdrawAllPossible(ctx, &escrowrpc.WithdrawAllPossibleRequest{
		Owner: "alice",
	})
	requireCode(t, codes.FailedPrecondition, err)

	depositInfo, err := escrowClient.GetDeposit(ctx, &escrowrpc.GetDepositRequest{
		DepositId: "0",
	})
	require.NoError(t, err)
	require.Equal(t, domain.DepositWithdrawn.String(), depositInfo.Deposit.Status)

	countRes, err := escrowClient.GetTotalNumDeposits(ctx, &escrowrpc.GetTotalNumDepositsRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(1), countRes.Count)

	escrowBalance, err := escrowClient.GetEscrowBalance(ctx, &escrowrpc.GetEscrowBalanceRequest{})
	require.NoError(t, err)
	require.Zero(t, escrowBalance.LedgerBalance)
	require.True(t, escrowBalance.Consistent)

	hookRes, err := operatorClient.AddWebhook(ctx, &escrowrpc.AddWebhookRequest{
		Topic: application.DepositWithdrawnTopic, Endpoint: "http://localhost:8080",
	})
	require.NoError(t, err)
	hooksRes, err := operatorClient.ListWebhooks(ctx, &escrowrpc.ListWebhooksRequest{
		Topic: application.DepositWithdrawnTopic,
	})
	require.NoError(t, err)
	require.Len(t, hooksRes.Webhooks, 1)
	require.Equal(t, hookRes.Id, hooksRes.Webhooks[0].Id)
	_, err = operatorClient.RemoveWebhook(ctx, &escrowrpc.RemoveWebhookRequest{
		Id: hookRes.Id,
	})
	require.NoError(t, err)

	resp, err := http.Get(fmt.Sprintf("http://%s/metrics", svc.Addr()))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "timelock_rpc_requests_total")
	require.Contains(t, string(body), "timelock_escrow_balance")
}

func TestOperatorInterfaceIsSeparated(t *testing.T) {
	svc := newTestService(t)
	require.NotEqual(t, svc.Addr(), svc.OperatorAddr())

	// The escrow interface refuses any operator rpc.
	exposedOperator := escrowrpc.NewOperatorServiceClient(dial(t, svc.Addr()))
	_, err := exposedOperator.Faucet(ctx, &escrowrpc.FaucetRequest{
		Account: "alice", Amount: 100,
	})
	requireCode(t, codes.Unimplemented, err)
	_, err = exposedOperator.AddWebhook(ctx, &escrowrpc.AddWebhookRequest{
		Topic: application.DepositWithdrawnTopic, Endpoint: "http://localhost:8080",
	})
	requireCode(t, codes.Unimplemented, err)

	operatorClient := escrowrpc.NewOperatorServiceClient(dial(t, svc.OperatorAddr()))
	balanceRes, err := operatorClient.BalanceOf(ctx, &escrowrpc.BalanceOfRequest{
		Account: "alice",
	})
	require.NoError(t, err)
	require.Zero(t, balanceRes.Balance)

	// The operator interface serves neither escrow rpcs nor metrics.
	internalEscrow := escrowrpc.NewEscrowServiceClient(dial(t, svc.OperatorAddr()))
	_, err = internalEscrow.GetTotalNumDeposits(ctx, &escrowrpc.GetTotalNumDepositsRequest{})
	requireCode(t, codes.Unimplemented, err)

	resp, err := http.Get(fmt.Sprintf("http://%s/metrics", svc.OperatorAddr()))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFailingNewService(t *testing.T) {
	cfg := newTestConfig(t)

	_, err := grpcinterface.NewService(grpcinterface.ServiceOpts{
		Address:         "127.0.0.1:9000",
		OperatorAddress: "127.0.0.1:9000",
		NoTls:           true,
		EscrowSvc:       cfg.EscrowService(),
		OperatorSvc:     cfg.OperatorService(),
	})
	require.Error(t, err)

	_, err = grpcinterface.NewService(grpcinterface.ServiceOpts{
		Address:     "127.0.0.1:9000",
		NoTls:       true,
		EscrowSvc:   cfg.EscrowService(),
		OperatorSvc: cfg.OperatorService(),
	})
	require.Error(t, err)
}

func TestUnknownEventsTopic(t *testing.T) {
	svc := newTestService(t)

	_, resp, err := websocket.DefaultDialer.Dial(
		fmt.Sprintf("ws://%s/v1/events?topic=UNKNOWN", svc.Addr()), nil,
	)
	require.Error(t, err)
	require.NotNil(t, resp)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func newTestService(t *testing.T) *grpcinterface.Service {
	cfg := newTestConfig(t)

	svc, err := grpcinterface.NewService(grpcinterface.ServiceOpts{
		Address:         "127.0.0.1:0",
		OperatorAddress: "127.0.0.1:0",
		NoTls:           true,
		EscrowSvc:       cfg.EscrowService(),
		OperatorSvc:     cfg.OperatorService(),
		EventsSource:    cfg.PubSub.(*pubsub.Service),
	})
	require.NoError(t, err)
	require.NoError(t, svc.Start())

	t.Cleanup(svc.Stop)
	return svc
}

func newTestConfig(t *testing.T) *application.Config {
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

	t.Cleanup(func() {
		pubsubSvc.Close()
		cfg.RepoManager().Close()
	})
	return cfg
}

func dial(t *testing.T, address string) *grpc.ClientConn {
	conn, err := grpc.Dial(
		address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		escrowrpc.WithCodec(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func requireCode(t *testing.T, code codes.Code, err error) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, status.Code(err), err.Error())
}
