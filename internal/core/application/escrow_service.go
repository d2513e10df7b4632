package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-timelock/internal/core/domain"
	"github.com/tdex-network/tdex-timelock/internal/core/ports"
)

// EscrowService holds tokens deposited by owners for domain.LockDuration and
// pays them back once matured.
type EscrowService interface {
	// Deposit pulls amount from owner into escrow and returns the id of the
	// new deposit.
	Deposit(ctx context.Context, owner string, amount uint64) (uint64, error)
	// Withdraw pays back a single matured deposit to its owner. Only the owner
	// can withdraw it.
	Withdraw(ctx context.Context, depositID uint64, caller string) error
	// WithdrawAllPossible pays back in a single transfer all matured deposits
	// of the given owner. Anyone can trigger it, funds always go to the owner.
	WithdrawAllPossible(ctx context.Context, owner string) (*WithdrawalResult, error)
	IsWithdrawable(ctx context.Context, depositID uint64) (bool, error)
	GetTotalWithdrawableAmount(ctx context.Context, owner string) (uint64, error)
	GetWithdrawableList(ctx context.Context, owner string) ([]uint64, error)
	GetTotalNumDeposits(ctx context.Context) (uint64, error)
	GetDeposit(ctx context.Context, depositID uint64) (*DepositInfo, error)
	ListDeposits(ctx context.Context, owner string, page Page) ([]DepositInfo, error)
	GetEscrowBalance(ctx context.Context) (*EscrowBalance, error)
}

type escrowService struct {
	repoManager ports.RepoManager
	gateway     ports.TokenGateway
	clock       ports.Clock
	pubsub      ports.PubSub

	// lock serializes all operations mutating the ledger.
	lock *sync.Mutex
	// pending holds the deposits paid out but not yet marked as withdrawn in
	// the ledger.
	pending *pendingWithdrawals
}

func NewEscrowService(
	repoManager ports.RepoManager,
	gateway ports.TokenGateway,
	clock ports.Clock,
	pubsub ports.PubSub,
) (EscrowService, error) {
	if repoManager == nil {
		return nil, fmt.Errorf("missing repo manager")
	}
	if gateway == nil {
		return nil, fmt.Errorf("missing token gateway")
	}
	if clock == nil {
		return nil, fmt.Errorf("missing clock")
	}

	svc := &escrowService{
		repoManager: repoManager,
		gateway:     gateway,
		clock:       clock,
		pubsub:      pubsub,
		lock:        &sync.Mutex{},
		pending:     newPendingWithdrawals(),
	}

	balance, err := svc.ledgerBalance(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to compute escrow balance: %w", err)
	}
	escrowBalanceGauge.Set(float64(balance))

	return svc, nil
}

func (s *escrowService) Deposit(
	ctx context.Context, owner string, amount uint64,
) (uint64, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.commitPendingWithdrawals(ctx)

	deposit, err := domain.NewDeposit(owner, amount, s.clock.Now().Unix())
	if err != nil {
		return 0, err
	}

	if err := s.gateway.Pull(ctx, owner, amount); err != nil {
		return 0, pullError(err)
	}

	if err := s.depositRepository().AddDeposit(ctx, deposit); err != nil {
		// The ledger can't owe what it didn't record, tokens go back to the
		// owner regardless of the request context.
		if refundErr := s.gateway.Push(
			context.Background(), owner, amount,
		); refundErr != nil {
			log.WithError(refundErr).Errorf(
				"failed to refund %d to %s after deposit was rejected by ledger",
				amount, owner,
			)
		}
		log.WithError(err).Warnf("failed to add deposit for %s", owner)
		return 0, ErrServiceUnavailable
	}

	depositsCounter.Inc()
	escrowBalanceGauge.Add(float64(amount))
	log.Debugf("added deposit %d of %d for %s", deposit.ID, amount, owner)

	go publishDepositCreatedTopic(s.pubsub, *deposit)

	return deposit.ID, nil
}

func (s *escrowService) Withdraw(
	ctx context.Context, depositID uint64, caller string,
) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.commitPendingWithdrawals(ctx)

	deposit, err := s.getDeposit(ctx, depositID)
	if err != nil {
		return err
	}
	if deposit.Owner != caller {
		return domain.ErrUnauthorized
	}
	if deposit.Withdrawn {
		return domain.ErrAlreadyWithdrawn
	}
	now := s.clock.Now()
	if !deposit.IsMatured(now) {
		return domain.ErrNotMatured
	}

	if err := s.gateway.Push(ctx, deposit.Owner, deposit.Amount); err != nil {
		return gatewayError(err)
	}

	var commitErr error
	if err := s.depositRepository().MarkWithdrawn(
		ctx, []uint64{depositID}, now.Unix(),
	); err != nil {
		log.WithError(err).Errorf(
			"deposit %d paid out to %s but not marked as withdrawn",
			depositID, deposit.Owner,
		)
		s.pending.add([]uint64{depositID}, now.Unix())
		commitErr = ErrWithdrawalNotCommitted
	}
	deposit.Withdrawn = true
	deposit.WithdrawnAt = now.Unix()

	withdrawalsCounter.Inc()
	escrowBalanceGauge.Sub(float64(deposit.Amount))
	log.Debugf("withdrawn deposit %d of %d for %s", depositID, deposit.Amount, deposit.Owner)

	go publishDepositWithdrawnTopic(s.pubsub, *deposit)

	return commitErr
}

func (s *escrowService) WithdrawAllPossible(
	ctx context.Context, owner string,
) (*WithdrawalResult, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.commitPendingWithdrawals(ctx)

	now := s.clock.Now()
	eligible, err := s.withdrawableDeposits(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(eligible) <= 0 {
		return nil, domain.ErrNoWithdrawableDeposits
	}

	total, err := domain.SumAmounts(eligible)
	if err != nil {
		return nil, err
	}
	ids := depositIDs(eligible)

	if err := s.gateway.Push(ctx, owner, total); err != nil {
		return nil, gatewayError(err)
	}

	var commitErr error
	if err := s.depositRepository().MarkWithdrawn(ctx, ids, now.Unix()); err != nil {
		log.WithError(err).Errorf(
			"deposits %v paid out to %s but not marked as withdrawn", ids, owner,
		)
		s.pending.add(ids, now.Unix())
		commitErr = ErrWithdrawalNotCommitted
	}

	withdrawalsCounter.Add(float64(len(ids)))
	escrowBalanceGauge.Sub(float64(total))
	log.Debugf("withdrawn %d deposits for a total of %d for %s", len(ids), total, owner)

	result := &WithdrawalResult{
		Owner:      owner,
		DepositIDs: ids,
		Amount:     total,
	}

	go publishDepositsWithdrawnTopic(s.pubsub, *result)

	return result, commitErr
}

func (s *escrowService) IsWithdrawable(
	ctx context.Context, depositID uint64,
) (bool, error) {
	deposit, err := s.getDeposit(ctx, depositID)
	if err != nil {
		return false, err
	}
	return deposit.IsWithdrawable(s.clock.Now()), nil
}

func (s *escrowService) GetTotalWithdrawableAmount(
	ctx context.Context, owner string,
) (uint64, error) {
	deposits, err := s.withdrawableDeposits(ctx, owner)
	if err != nil {
		return 0, err
	}
	return domain.SumAmounts(deposits)
}

func (s *escrowService) GetWithdrawableList(
	ctx context.Context, owner string,
) ([]uint64, error) {
	deposits, err := s.withdrawableDeposits(ctx, owner)
	if err != nil {
		return nil, err
	}
	return depositIDs(deposits), nil
}

func (s *escrowService) GetTotalNumDeposits(ctx context.Context) (uint64, error) {
	count, err := s.depositRepository().CountDeposits(ctx)
	if err != nil {
		log.WithError(err).Warn("failed to count deposits")
		return 0, ErrServiceUnavailable
	}
	return count, nil
}

func (s *escrowService) GetDeposit(
	ctx context.Context, depositID uint64,
) (*DepositInfo, error) {
	deposit, err := s.getDeposit(ctx, depositID)
	if err != nil {
		return nil, err
	}
	info := newDepositInfo(*deposit, s.clock.Now())
	return &info, nil
}

func (s *escrowService) ListDeposits(
	ctx context.Context, owner string, page Page,
) ([]DepositInfo, error) {
	deposits, err := s.depositRepository().GetDepositsForOwner(ctx, owner, page)
	if err != nil {
		log.WithError(err).Warnf("failed to list deposits for %s", owner)
		return nil, ErrServiceUnavailable
	}

	s.pending.applyToList(deposits)

	now := s.clock.Now()
	infos := make([]DepositInfo, 0, len(deposits))
	for _, d := range deposits {
		infos = append(infos, newDepositInfo(d, now))
	}
	return infos, nil
}

func (s *escrowService) GetEscrowBalance(ctx context.Context) (*EscrowBalance, error) {
	ledgerBalance, err := s.ledgerBalance(ctx)
	if err != nil {
		log.WithError(err).Warn("failed to compute ledger balance")
		return nil, ErrServiceUnavailable
	}

	gatewayBalance, err := s.gateway.BalanceOf(ctx, s.gateway.EscrowAccount())
	if err != nil {
		return nil, gatewayError(err)
	}

	return &EscrowBalance{
		LedgerBalance:  ledgerBalance,
		GatewayBalance: gatewayBalance,
	}, nil
}

func (s *escrowService) depositRepository() domain.DepositRepository {
	return s.repoManager.DepositRepository()
}

func (s *escrowService) getDeposit(
	ctx context.Context, depositID uint64,
) (*domain.Deposit, error) {
	deposit, err := s.depositRepository().GetDeposit(ctx, depositID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDepositID) {
			return nil, err
		}
		log.WithError(err).Warnf("failed to get deposit %d", depositID)
		return nil, ErrServiceUnavailable
	}
	s.pending.apply(deposit)
	return deposit, nil
}

// withdrawableDeposits returns the matured and not withdrawn deposits of the
// given owner, in ascending id order.
func (s *escrowService) withdrawableDeposits(
	ctx context.Context, owner string,
) ([]domain.Deposit, error) {
	deposits, err := s.depositRepository().GetDepositsForOwner(ctx, owner, nil)
	if err != nil {
		log.WithError(err).Warnf("failed to get deposits for %s", owner)
		return nil, ErrServiceUnavailable
	}
	s.pending.applyToList(deposits)

	now := s.clock.Now()
	withdrawable := make([]domain.Deposit, 0, len(deposits))
	for _, d := range deposits {
		if d.IsWithdrawable(now) {
			withdrawable = append(withdrawable, d)
		}
	}
	return withdrawable, nil
}

func (s *escrowService) ledgerBalance(ctx context.Context) (uint64, error) {
	deposits, err := s.depositRepository().GetAllDeposits(ctx, nil)
	if err != nil {
		return 0, err
	}
	s.pending.applyToList(deposits)

	notWithdrawn := make([]domain.Deposit, 0, len(deposits))
	for _, d := range deposits {
		if !d.Withdrawn {
			notWithdrawn = append(notWithdrawn, d)
		}
	}
	return domain.SumAmounts(notWithdrawn)
}

func depositIDs(deposits []domain.Deposit) []uint64 {
	ids := make([]uint64, 0, len(deposits))
	for _, d := range deposits {
		ids = append(ids, d.ID)
	}
	return ids
}

// commitPendingWithdrawals retries to mark as withdrawn in the ledger the
// deposits already paid out. Must be called with the service lock held.
func (s *escrowService) commitPendingWithdrawals(ctx context.Context) {
	ids, timestamps := s.pending.list()
	for _, id := range ids {
		err := s.depositRepository().MarkWithdrawn(
			ctx, []uint64{id}, timestamps[id],
		)
		if err != nil && !errors.Is(err, domain.ErrAlreadyWithdrawn) {
			log.WithError(err).Warnf("failed to commit withdrawal of deposit %d", id)
			continue
		}
		s.pending.remove(id)
		log.Infof("committed pending withdrawal of deposit %d", id)
	}
}

// pullError makes sure that any failure of the token gateway when pulling
// funds from an owner, other than a refusal of the owner's funds, is
// reported as domain.ErrTransferFailed.
func pullError(err error) error {
	if errors.Is(err, domain.ErrInsufficientAllowance) ||
		errors.Is(err, domain.ErrInsufficientBalance) ||
		errors.Is(err, domain.ErrInvalidAccount) {
		return err
	}
	return gatewayError(err)
}

// gatewayError reports any failure of the token gateway moving funds out of
// the escrow, or reading its balance, as domain.ErrTransferFailed.
func gatewayError(err error) error {
	if errors.Is(err, domain.ErrTransferFailed) {
		return err
	}
	return fmt.Errorf("%w: %s", domain.ErrTransferFailed, err)
}
