package token

import (
	"context"
	"errors"
	"fmt"

	"github.com/sony/gobreaker"
	"github.com/tdex-network/tdex-timelock/internal/core/domain"
	"github.com/tdex-network/tdex-timelock/internal/core/ports"
	"github.com/tdex-network/tdex-timelock/pkg/circuitbreaker"
)

// refusals are errors returned by a healthy gateway. They don't count as
// failures for the circuit breaker.
var refusals = []error{
	domain.ErrInsufficientAllowance,
	domain.ErrInsufficientBalance,
	domain.ErrInvalidAccount,
	context.Canceled,
}

type guardedGateway struct {
	gateway ports.TokenGateway
	cb      *gobreaker.CircuitBreaker
}

// NewGuardedGateway wraps the given gateway with a circuit breaker that stops
// forwarding requests once the gateway keeps failing.
func NewGuardedGateway(gateway ports.TokenGateway) (ports.TokenGateway, error) {
	if gateway == nil {
		return nil, fmt.Errorf("missing token gateway")
	}
	return &guardedGateway{
		gateway: gateway,
		cb:      circuitbreaker.NewCircuitBreaker("token-gateway"),
	}, nil
}

func (g *guardedGateway) EscrowAccount() string {
	return g.gateway.EscrowAccount()
}

func (g *guardedGateway) Pull(ctx context.Context, from string, amount uint64) error {
	_, err := g.execute(func() (interface{}, error) {
		return nil, g.gateway.Pull(ctx, from, amount)
	})
	return err
}

func (g *guardedGateway) Push(ctx context.Context, to string, amount uint64) error {
	_, err := g.execute(func() (interface{}, error) {
		return nil, g.gateway.Push(ctx, to, amount)
	})
	return err
}

func (g *guardedGateway) BalanceOf(ctx context.Context, account string) (uint64, error) {
	res, err := g.execute(func() (interface{}, error) {
		return g.gateway.BalanceOf(ctx, account)
	})
	if err != nil {
		return 0, err
	}
	return res.(uint64), nil
}

func (g *guardedGateway) execute(
	fn func() (interface{}, error),
) (interface{}, error) {
	var refusal error
	res, err := g.cb.Execute(func() (interface{}, error) {
		res, err := fn()
		if isRefusal(err) {
			refusal = err
			return nil, nil
		}
		return res, err
	})
	if refusal != nil {
		return nil, refusal
	}
	if errors.Is(err, gobreaker.ErrOpenState) ||
		errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %s", domain.ErrTransferFailed, err)
	}
	return res, err
}

func isRefusal(err error) bool {
	for _, e := range refusals {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
