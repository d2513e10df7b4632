package grpchandler

import (
	"context"
	"time"

	"github.com/tdex-network/tdex-timelock/internal/core/application"
	"github.com/tdex-network/tdex-timelock/pkg/escrowrpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type operatorHandler struct {
	operatorSvc application.OperatorService
}

// NewOperatorHandler is a constructor function returning an
// escrowrpc.OperatorServiceServer.
func NewOperatorHandler(
	operatorSvc application.OperatorService,
) escrowrpc.OperatorServiceServer {
	return &operatorHandler{operatorSvc}
}

func (h *operatorHandler) AddWebhook(
	ctx context.Context, req *escrowrpc.AddWebhookRequest,
) (*escrowrpc.AddWebhookResponse, error) {
	if len(req.Endpoint) <= 0 {
		return nil, status.Error(codes.InvalidArgument, "missing endpoint")
	}

	id, err := h.operatorSvc.AddWebhook(ctx, req.Topic, req.Endpoint, req.Secret)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &escrowrpc.AddWebhookResponse{Id: id}, nil
}

func (h *operatorHandler) RemoveWebhook(
	ctx context.Context, req *escrowrpc.RemoveWebhookRequest,
) (*escrowrpc.RemoveWebhookResponse, error) {
	if len(req.Id) <= 0 {
		return nil, status.Error(codes.InvalidArgument, "missing webhook id")
	}

	if err := h.operatorSvc.RemoveWebhook(ctx, req.Id); err != nil {
		return nil, toStatusError(err)
	}
	return &escrowrpc.RemoveWebhookResponse{}, nil
}

func (h *operatorHandler) ListWebhooks(
	ctx context.Context, req *escrowrpc.ListWebhooksRequest,
) (*escrowrpc.ListWebhooksResponse, error) {
	hooks, err := h.operatorSvc.ListWebhooks(ctx, req.Topic)
	if err != nil {
		return nil, toStatusError(err)
	}

	list := make([]*escrowrpc.Webhook, 0, len(hooks))
	for _, hook := range hooks {
		list = append(list, &escrowrpc.Webhook{
			Id:        hook.Id,
			Topic:     hook.Topic,
			Endpoint:  hook.Endpoint,
			IsSecured: hook.IsSecure,
		})
	}
	return &escrowrpc.ListWebhooksResponse{Webhooks: list}, nil
}

func (h *operatorHandler) Faucet(
	ctx context.Context, req *escrowrpc.FaucetRequest,
) (*escrowrpc.FaucetResponse, error) {
	account, err := parseAccount(req.Account)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	if err := h.operatorSvc.Faucet(ctx, account, amount); err != nil {
		return nil, toStatusError(err)
	}
	return &escrowrpc.FaucetResponse{}, nil
}

func (h *operatorHandler) Approve(
	ctx context.Context, req *escrowrpc.ApproveRequest,
) (*escrowrpc.ApproveResponse, error) {
	owner, err := parseAccount(req.Owner)
	if err != nil {
		return nil, err
	}

	if err := h.operatorSvc.Approve(ctx, owner, req.Amount); err != nil {
		return nil, toStatusError(err)
	}
	return &escrowrpc.ApproveResponse{}, nil
}

func (h *operatorHandler) BalanceOf(
	ctx context.Context, req *escrowrpc.BalanceOfRequest,
) (*escrowrpc.BalanceOfResponse, error) {
	account, err := parseAccount(req.Account)
	if err != nil {
		return nil, err
	}

	balance, allowance, err := h.operatorSvc.BalanceOf(ctx, account)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &escrowrpc.BalanceOfResponse{
		Balance:   balance,
		Allowance: allowance,
	}, nil
}

func (h *operatorHandler) AdvanceClock(
	ctx context.Context, req *escrowrpc.AdvanceClockRequest,
) (*escrowrpc.AdvanceClockResponse, error) {
	d := time.Duration(req.Seconds) * time.Second
	now, err := h.operatorSvc.AdvanceClock(ctx, d)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &escrowrpc.AdvanceClockResponse{Now: now.Unix()}, nil
}
