package grpchandler

import (
	"fmt"
	"strconv"

	"github.com/tdex-network/tdex-timelock/internal/core/application"
	"github.com/tdex-network/tdex-timelock/internal/core/domain"
	"github.com/tdex-network/tdex-timelock/pkg/escrowrpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MaxPageSize is the max number of deposits returned by a single page.
const MaxPageSize = 1000

func parseDepositID(id string) (uint64, error) {
	depositID, err := domain.ParseDepositID(id)
	if err != nil {
		return 0, status.Error(codes.InvalidArgument, err.Error())
	}
	return depositID, nil
}

func parseAccount(account string) (string, error) {
	if len(account) <= 0 {
		return "", status.Error(codes.InvalidArgument, domain.ErrInvalidAccount.Error())
	}
	return account, nil
}

func parseAmount(amount uint64) (uint64, error) {
	if amount == 0 {
		return 0, status.Error(codes.InvalidArgument, domain.ErrZeroAmount.Error())
	}
	return amount, nil
}

func parsePage(page *escrowrpc.Page) (application.Page, error) {
	if page == nil {
		return nil, nil
	}
	if page.Number < 0 || page.Size < 0 {
		return nil, status.Error(
			codes.InvalidArgument, "page number and size must not be negative",
		)
	}
	if page.Size > MaxPageSize {
		return nil, status.Error(
			codes.InvalidArgument,
			fmt.Sprintf("page size must not be greater than %d", MaxPageSize),
		)
	}
	return domain.NewPage(page.Number, page.Size), nil
}

func depositIDsToString(ids []uint64) []string {
	list := make([]string, 0, len(ids))
	for _, id := range ids {
		list = append(list, strconv.FormatUint(id, 10))
	}
	return list
}

func toDepositInfo(info application.DepositInfo) *escrowrpc.Deposit {
	return &escrowrpc.Deposit{
		DepositId:    strconv.FormatUint(info.ID, 10),
		Owner:        info.Owner,
		Amount:       info.Amount,
		Timestamp:    info.Timestamp,
		MaturityTime: info.MaturityTime,
		Status:       info.Status.String(),
		Withdrawn:    info.Withdrawn,
		WithdrawnAt:  info.WithdrawnAt,
	}
}
