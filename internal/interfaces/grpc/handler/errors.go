package grpchandler

import (
	"errors"

	"github.com/tdex-network/tdex-timelock/internal/core/application"
	"github.com/tdex-network/tdex-timelock/internal/core/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodes = []struct {
	err  error
	code codes.Code
}{
	{domain.ErrZeroAmount, codes.InvalidArgument},
	{domain.ErrInvalidAccount, codes.InvalidArgument},
	{application.ErrUnknownTopic, codes.InvalidArgument},
	{application.ErrInvalidDuration, codes.InvalidArgument},
	{domain.ErrInvalidDepositID, codes.NotFound},
	{domain.ErrUnauthorized, codes.PermissionDenied},
	{domain.ErrNotMatured, codes.FailedPrecondition},
	{domain.ErrAlreadyWithdrawn, codes.FailedPrecondition},
	{domain.ErrNoWithdrawableDeposits, codes.FailedPrecondition},
	{domain.ErrInsufficientAllowance, codes.FailedPrecondition},
	{domain.ErrInsufficientBalance, codes.FailedPrecondition},
	{domain.ErrAmountOverflow, codes.OutOfRange},
	{domain.ErrTransferFailed, codes.Unavailable},
	{application.ErrServiceUnavailable, codes.Unavailable},
	{application.ErrSimulationDisabled, codes.Unimplemented},
	{application.ErrPubSubNotInitialized, codes.Unimplemented},
	{application.ErrWithdrawalNotCommitted, codes.Internal},
}

// toStatusError maps an application error to a grpc status error.
func toStatusError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return status.Error(e.code, err.Error())
		}
	}
	return status.Error(codes.Internal, err.Error())
}
