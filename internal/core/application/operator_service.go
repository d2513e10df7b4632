package application

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-timelock/internal/core/domain"
	"github.com/tdex-network/tdex-timelock/internal/core/ports"
)

// OperatorService defines the methods of the application layer reserved to
// the operator of the daemon.
type OperatorService interface {
	AddWebhook(ctx context.Context, topic, endpoint, secret string) (string, error)
	RemoveWebhook(ctx context.Context, id string) error
	ListWebhooks(ctx context.Context, topic string) ([]Webhook, error)

	// Faucet, Approve, BalanceOf and AdvanceClock are available only when the
	// daemon runs with a simulated token and/or clock.
	Faucet(ctx context.Context, account string, amount uint64) error
	Approve(ctx context.Context, owner string, amount uint64) error
	BalanceOf(ctx context.Context, account string) (balance, allowance uint64, err error)
	AdvanceClock(ctx context.Context, d time.Duration) (time.Time, error)
}

type operatorService struct {
	pubsub ports.PubSub
	token  SimulatedToken
	clock  SimulatedClock
}

// NewOperatorService returns a new operator service. Any of the arguments
// can be nil, in which case the related operations are disabled.
func NewOperatorService(
	pubsub ports.PubSub, token SimulatedToken, clock SimulatedClock,
) OperatorService {
	return &operatorService{pubsub, token, clock}
}

func (s *operatorService) AddWebhook(
	_ context.Context, topic, endpoint, secret string,
) (string, error) {
	if s.pubsub == nil {
		return "", ErrPubSubNotInitialized
	}
	if _, ok := Topics[topic]; !ok {
		return "", ErrUnknownTopic
	}
	return s.pubsub.Subscribe(topic, endpoint, secret)
}

func (s *operatorService) RemoveWebhook(_ context.Context, id string) error {
	if s.pubsub == nil {
		return ErrPubSubNotInitialized
	}
	return s.pubsub.Unsubscribe(ports.UnspecifiedTopic, id)
}

func (s *operatorService) ListWebhooks(
	_ context.Context, topic string,
) ([]Webhook, error) {
	if s.pubsub == nil {
		return nil, ErrPubSubNotInitialized
	}
	if _, ok := Topics[topic]; !ok {
		return nil, ErrUnknownTopic
	}

	subs := s.pubsub.ListSubscriptionsForTopic(topic)
	hooks := make([]Webhook, 0, len(subs))
	for _, sub := range subs {
		hooks = append(hooks, Webhook{
			Id:       sub.Id(),
			Topic:    sub.Topic(),
			Endpoint: sub.NotifyAt(),
			IsSecure: sub.IsSecured(),
		})
	}
	return hooks, nil
}

func (s *operatorService) Faucet(
	_ context.Context, account string, amount uint64,
) error {
	if s.token == nil {
		return ErrSimulationDisabled
	}
	if amount == 0 {
		return domain.ErrZeroAmount
	}
	if err := s.token.Mint(account, amount); err != nil {
		return err
	}
	log.Debugf("minted %d to %s", amount, account)
	return nil
}

func (s *operatorService) Approve(
	_ context.Context, owner string, amount uint64,
) error {
	if s.token == nil {
		return ErrSimulationDisabled
	}
	return s.token.Approve(owner, amount)
}

func (s *operatorService) BalanceOf(
	ctx context.Context, account string,
) (uint64, uint64, error) {
	if s.token == nil {
		return 0, 0, ErrSimulationDisabled
	}
	balance, err := s.token.BalanceOf(ctx, account)
	if err != nil {
		return 0, 0, err
	}
	return balance, s.token.Allowance(account), nil
}

func (s *operatorService) AdvanceClock(
	_ context.Context, d time.Duration,
) (time.Time, error) {
	if s.clock == nil {
		return time.Time{}, ErrSimulationDisabled
	}
	if d <= 0 {
		return time.Time{}, ErrInvalidDuration
	}
	now := s.clock.Advance(d)
	log.Infof("clock moved forward by %s, now is %s", d, now.Format(time.RFC3339))
	return now, nil
}
