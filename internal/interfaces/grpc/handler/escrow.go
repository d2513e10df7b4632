package grpchandler

import (
	"context"

	"github.com/tdex-network/tdex-timelock/internal/core/application"
	"github.com/tdex-network/tdex-timelock/pkg/escrowrpc"
)

type escrowHandler struct {
	escrowSvc application.EscrowService
}

// NewEscrowHandler is a constructor function returning an
// escrowrpc.EscrowServiceServer.
func NewEscrowHandler(
	escrowSvc application.EscrowService,
) escrowrpc.EscrowServiceServer {
	return &escrowHandler{escrowSvc}
}

func (h *escrowHandler) Deposit(
	ctx context.Context, req *escrowrpc.DepositRequest,
) (*escrowrpc.DepositResponse, error) {
	owner, err := parseAccount(req.Owner)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	id, err := h.escrowSvc.Deposit(ctx, owner, amount)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &escrowrpc.DepositResponse{
		DepositId: depositIDsToString([]uint64{id})[0],
	}, nil
}

func (h *escrowHandler) Withdraw(
	ctx context.Context, req *escrowrpc.WithdrawRequest,
) (*escrowrpc.WithdrawResponse, error) {
	id, err := parseDepositID(req.DepositId)
	if err != nil {
		return nil, err
	}
	caller, err := parseAccount(req.Caller)
	if err != nil {
		return nil, err
	}

	if err := h.escrowSvc.Withdraw(ctx, id, caller); err != nil {
		return nil, toStatusError(err)
	}
	return &escrowrpc.WithdrawResponse{}, nil
}

func (h *escrowHandler) WithdrawAllPossible(
	ctx context.Context, req *escrowrpc.WithdrawAllPossibleRequest,
) (*escrowrpc.WithdrawAllPossibleResponse, error) {
	owner, err := parseAccount(req.Owner)
	if err != nil {
		return nil, err
	}

	result, err := h.escrowSvc.WithdrawAllPossible(ctx, owner)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &escrowrpc.WithdrawAllPossibleResponse{
		DepositIds: depositIDsToString(result.DepositIDs),
		Amount:     result.Amount,
	}, nil
}

func (h *escrowHandler) IsWithdrawable(
	ctx context.Context, req *escrowrpc.IsWithdrawableRequest,
) (*escrowrpc.IsWithdrawableResponse, error) {
	id, err := parseDepositID(req.DepositId)
	if err != nil {
		return nil, err
	}

	ok, err := h.escrowSvc.IsWithdrawable(ctx, id)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &escrowrpc.IsWithdrawableResponse{Withdrawable: ok}, nil
}

func (h *escrowHandler) GetTotalWithdrawableAmount(
	ctx context.Context, req *escrowrpc.GetTotalWithdrawableAmountRequest,
) (*escrowrpc.GetTotalWithdrawableAmountResponse, error) {
	owner, err := parseAccount(req.Owner)
	if err != nil {
		return nil, err
	}

	amount, err := h.escrowSvc.GetTotalWithdrawableAmount(ctx, owner)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &escrowrpc.GetTotalWithdrawableAmountResponse{Amount: amount}, nil
}

func (h *escrowHandler) GetWithdrawableList(
	ctx context.Context, req *escrowrpc.GetWithdrawableListRequest,
) (*escrowrpc.GetWithdrawableListResponse, error) {
	owner, err := parseAccount(req.Owner)
	if err != nil {
		return nil, err
	}

	ids, err := h.escrowSvc.GetWithdrawableList(ctx, owner)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &escrowrpc.GetWithdrawableListResponse{
		DepositIds: depositIDsToString(ids),
	}, nil
}

func (h *escrowHandler) GetTotalNumDeposits(
	ctx context.Context, _ *escrowrpc.GetTotalNumDepositsRequest,
) (*escrowrpc.GetTotalNumDepositsResponse, error) {
	count, err := h.escrowSvc.GetTotalNumDeposits(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &escrowrpc.GetTotalNumDepositsResponse{Count: count}, nil
}

func (h *escrowHandler) GetDeposit(
	ctx context.Context, req *escrowrpc.GetDepositRequest,
) (*escrowrpc.GetDepositResponse, error) {
	id, err := parseDepositID(req.DepositId)
	if err != nil {
		return nil, err
	}

	info, err := h.escrowSvc.GetDeposit(ctx, id)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &escrowrpc.GetDepositResponse{Deposit: toDepositInfo(*info)}, nil
}

func (h *escrowHandler) ListDeposits(
	ctx context.Context, req *escrowrpc.ListDepositsRequest,
) (*escrowrpc.ListDepositsResponse, error) {
	owner, err := parseAccount(req.Owner)
	if err != nil {
		return nil, err
	}
	page, err := parsePage(req.Page)
	if err != nil {
		return nil, err
	}

	deposits, err := h.escrowSvc.ListDeposits(ctx, owner, page)
	if err != nil {
		return nil, toStatusError(err)
	}

	list := make([]*escrowrpc.Deposit, 0, len(deposits))
	for _, d := range deposits {
		list = append(list, toDepositInfo(d))
	}
	return &escrowrpc.ListDepositsResponse{Deposits: list}, nil
}

func (h *escrowHandler) GetEscrowBalance(
	ctx context.Context, _ *escrowrpc.GetEscrowBalanceRequest,
) (*escrowrpc.GetEscrowBalanceResponse, error) {
	balance, err := h.escrowSvc.GetEscrowBalance(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &escrowrpc.GetEscrowBalanceResponse{
		LedgerBalance:  balance.LedgerBalance,
		GatewayBalance: balance.GatewayBalance,
		Consistent:     balance.IsConsistent(),
	}, nil
}
