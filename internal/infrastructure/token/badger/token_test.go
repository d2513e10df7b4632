package badgertoken_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-timelock/internal/core/domain"
	badgertoken "github.com/tdex-network/tdex-timelock/internal/infrastructure/token/badger"
)

const (
	escrow = "escrow"
	alice  = "alice"
	bob    = "bob"
)

func TestToken(t *testing.T) {
	ctx := context.Background()

	token, err := badgertoken.NewToken(escrow, "", nil)
	require.NoError(t, err)
	defer token.Close()
	require.Equal(t, escrow, token.EscrowAccount())

	require.NoError(t, token.Mint(alice, 15000))
	require.Equal(t, uint64(15000), token.TotalSupply())

	err = token.Pull(ctx, alice, 555)
	require.ErrorIs(t, err, domain.ErrInsufficientAllowance)
	requireBalance(t, token, alice, 15000)
	requireBalance(t, token, escrow, 0)

	require.NoError(t, token.Approve(alice, 1000))
	require.NoError(t, token.Pull(ctx, alice, 555))
	requireBalance(t, token, alice, 15000-555)
	requireBalance(t, token, escrow, 555)
	require.Equal(t, uint64(445), token.Allowance(alice))

	err = token.Pull(ctx, alice, 555)
	require.ErrorIs(t, err, domain.ErrInsufficientAllowance)
	require.Equal(t, uint64(445), token.Allowance(alice))

	require.NoError(t, token.Approve(alice, 0))
	require.Zero(t, token.Allowance(alice))

	// A refused pull must not consume the allowance.
	require.NoError(t, token.Approve(bob, 100))
	err = token.Pull(ctx, bob, 100)
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)
	require.Equal(t, uint64(100), token.Allowance(bob))

	require.NoError(t, token.Push(ctx, bob, 55))
	requireBalance(t, token, bob, 55)
	requireBalance(t, token, escrow, 500)

	err = token.Push(ctx, bob, 501)
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)
	requireBalance(t, token, escrow, 500)

	require.NoError(t, token.Transfer(bob, alice, 55))
	requireBalance(t, token, bob, 0)
	requireBalance(t, token, alice, 15000-555+55)

	require.ErrorIs(t, token.Mint(bob, math.MaxUint64), domain.ErrAmountOverflow)
	require.ErrorIs(t, token.Mint(escrow, 1), domain.ErrInvalidAccount)
	require.ErrorIs(t, token.Push(ctx, "", 1), domain.ErrInvalidAccount)
	require.Equal(t, uint64(15000), token.TotalSupply())
}

func TestTokenSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	token, err := badgertoken.NewToken(escrow, dir, nil)
	require.NoError(t, err)
	require.NoError(t, token.Mint(alice, 1000))
	require.NoError(t, token.Approve(alice, 300))
	require.NoError(t, token.Pull(ctx, alice, 200))
	token.Close()

	token, err = badgertoken.NewToken(escrow, dir, nil)
	require.NoError(t, err)
	defer token.Close()

	requireBalance(t, token, alice, 800)
	requireBalance(t, token, escrow, 200)
	require.Equal(t, uint64(100), token.Allowance(alice))
	require.Equal(t, uint64(1000), token.TotalSupply())
}

func TestFailingNewToken(t *testing.T) {
	token, err := badgertoken.NewToken("", "", nil)
	require.ErrorIs(t, err, domain.ErrInvalidAccount)
	require.Nil(t, token)
}

func requireBalance(
	t *testing.T, token *badgertoken.Token, account string, expected uint64,
) {
	balance, err := token.BalanceOf(context.Background(), account)
	require.NoError(t, err)
	require.Equal(t, expected, balance)
}
