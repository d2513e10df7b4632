package application_test

import (
	"context"
	"errors"
	"sync"

	"github.com/stretchr/testify/mock"
	"github.com/tdex-network/tdex-timelock/internal/core/domain"
	"github.com/tdex-network/tdex-timelock/internal/core/ports"
)

// **** Token gateway ****

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) EscrowAccount() string {
	args := m.Called()
	return args.String(0)
}

func (m *mockGateway) Pull(ctx context.Context, from string, amount uint64) error {
	args := m.Called(ctx, from, amount)
	return args.Error(0)
}

func (m *mockGateway) Push(ctx context.Context, to string, amount uint64) error {
	args := m.Called(ctx, to, amount)
	return args.Error(0)
}

func (m *mockGateway) BalanceOf(ctx context.Context, account string) (uint64, error) {
	args := m.Called(ctx, account)

	var res uint64
	if a := args.Get(0); a != nil {
		res = a.(uint64)
	}
	return res, args.Error(1)
}

// **** Repositories ****

type mockRepoManager struct {
	mock.Mock
	depositRepository *mockDepositRepository
}

func newMockRepoManager() *mockRepoManager {
	return &mockRepoManager{depositRepository: &mockDepositRepository{}}
}

func (m *mockRepoManager) DepositRepository() domain.DepositRepository {
	return m.depositRepository
}

func (m *mockRepoManager) Close() {}

type mockDepositRepository struct {
	mock.Mock
}

func (m *mockDepositRepository) AddDeposit(
	ctx context.Context, deposit *domain.Deposit,
) error {
	args := m.Called(ctx, deposit)
	return args.Error(0)
}

func (m *mockDepositRepository) GetDeposit(
	ctx context.Context, id uint64,
) (*domain.Deposit, error) {
	args := m.Called(ctx, id)

	var res *domain.Deposit
	if a := args.Get(0); a != nil {
		res = a.(*domain.Deposit)
	}
	return res, args.Error(1)
}

func (m *mockDepositRepository) GetDepositsForOwner(
	ctx context.Context, owner string, page domain.Page,
) ([]domain.Deposit, error) {
	args := m.Called(ctx, owner, page)

	var res []domain.Deposit
	if a := args.Get(0); a != nil {
		res = a.([]domain.Deposit)
	}
	return res, args.Error(1)
}

func (m *mockDepositRepository) GetAllDeposits(
	ctx context.Context, page domain.Page,
) ([]domain.Deposit, error) {
	args := m.Called(ctx, page)

	var res []domain.Deposit
	if a := args.Get(0); a != nil {
		res = a.([]domain.Deposit)
	}
	return res, args.Error(1)
}

func (m *mockDepositRepository) CountDeposits(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)

	var res uint64
	if a := args.Get(0); a != nil {
		res = a.(uint64)
	}
	return res, args.Error(1)
}

func (m *mockDepositRepository) MarkWithdrawn(
	ctx context.Context, ids []uint64, timestamp int64,
) error {
	args := m.Called(ctx, ids, timestamp)
	return args.Error(0)
}

// **** PubSub ****

// recordingPubSub keeps track of every published message.
type recordingPubSub struct {
	lock     sync.Mutex
	messages map[string][]string
}

func newRecordingPubSub() *recordingPubSub {
	return &recordingPubSub{messages: make(map[string][]string)}
}

func (p *recordingPubSub) Subscribe(topic, endpoint, secret string) (string, error) {
	return "", nil
}

func (p *recordingPubSub) Unsubscribe(topic, id string) error {
	return nil
}

func (p *recordingPubSub) ListSubscriptionsForTopic(topic string) []ports.Subscription {
	return nil
}

func (p *recordingPubSub) Publish(topic, message string) error {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.messages[topic] = append(p.messages[topic], message)
	return nil
}

func (p *recordingPubSub) Close() {}

func (p *recordingPubSub) messagesForTopic(topic string) []string {
	p.lock.Lock()
	defer p.lock.Unlock()
	return append([]string{}, p.messages[topic]...)
}

// **** Flaky ledger ****

// flakyRepoManager wraps a working repo manager whose deposit repository
// fails the first markFailures calls to MarkWithdrawn.
type flakyRepoManager struct {
	ports.RepoManager
	repo *flakyDepositRepository
}

func newFlakyRepoManager(
	repoManager ports.RepoManager, markFailures int,
) *flakyRepoManager {
	return &flakyRepoManager{
		RepoManager: repoManager,
		repo: &flakyDepositRepository{
			DepositRepository: repoManager.DepositRepository(),
			markFailures:      markFailures,
		},
	}
}

func (m *flakyRepoManager) DepositRepository() domain.DepositRepository {
	return m.repo
}

type flakyDepositRepository struct {
	domain.DepositRepository

	lock         sync.Mutex
	markFailures int
}

func (r *flakyDepositRepository) MarkWithdrawn(
	ctx context.Context, ids []uint64, timestamp int64,
) error {
	r.lock.Lock()
	if r.markFailures > 0 {
		r.markFailures--
		r.lock.Unlock()
		return errors.New("ledger write failed")
	}
	r.lock.Unlock()

	return r.DepositRepository.MarkWithdrawn(ctx, ids, timestamp)
}
