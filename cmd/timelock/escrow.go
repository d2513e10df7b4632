package main

import (
	"context"
	"fmt"

	"github.com/tdex-network/tdex-timelock/pkg/escrowrpc"
	"github.com/tdex-network/tdex-timelock/pkg/mathutil"
	"github.com/urfave/cli/v2"
)

var (
	ownerFlag = cli.StringFlag{
		Name:     "owner",
		Usage:    "the account owning the deposits",
		Required: true,
	}
	amountFlag = cli.StringFlag{
		Name:     "amount",
		Usage:    "the decimal amount of tokens, ie. 1.5",
		Required: true,
	}
	depositIDFlag = cli.StringFlag{
		Name:     "deposit_id",
		Usage:    "the id of the deposit",
		Required: true,
	}
)

var deposit = cli.Command{
	Name:   "deposit",
	Usage:  "lock an amount of tokens in escrow for 90 days",
	Flags:  []cli.Flag{&ownerFlag, &amountFlag},
	Action: depositAction,
}

var withdraw = cli.Command{
	Name:  "withdraw",
	Usage: "withdraw a matured deposit",
	Flags: []cli.Flag{
		&depositIDFlag,
		&cli.StringFlag{
			Name:     "caller",
			Usage:    "the account withdrawing, must be the owner of the deposit",
			Required: true,
		},
	},
	Action: withdrawAction,
}

var withdrawall = cli.Command{
	Name:   "withdrawall",
	Usage:  "withdraw all matured deposits of an owner at once",
	Flags:  []cli.Flag{&ownerFlag},
	Action: withdrawAllAction,
}

var withdrawable = cli.Command{
	Name:  "withdrawable",
	Usage: "show the withdrawable deposits and amount of an owner",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "owner",
			Usage: "the account owning the deposits",
		},
		&cli.StringFlag{
			Name:  "deposit_id",
			Usage: "check a single deposit instead",
		},
	},
	Action: withdrawableAction,
}

var deposits = cli.Command{
	Name:  "deposits",
	Usage: "list the deposits of an owner or get one by id",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "owner",
			Usage: "the account owning the deposits to list",
		},
		&cli.StringFlag{
			Name:  "deposit_id",
			Usage: "get a single deposit",
		},
		&cli.Int64Flag{
			Name:  "page",
			Usage: "the page number, starting from 1",
		},
		&cli.Int64Flag{
			Name:  "page_size",
			Usage: "the number of deposits per page",
		},
	},
	Action: depositsAction,
}

var info = cli.Command{
	Name:   "info",
	Usage:  "show the number of deposits and the escrow balance",
	Action: infoAction,
}

func depositAction(ctx *cli.Context) error {
	amount, err := mathutil.ToSmallestUnit(ctx.String("amount"), getPrecision())
	if err != nil {
		return err
	}

	client, cleanup, err := getEscrowClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.Deposit(context.Background(), &escrowrpc.DepositRequest{
		Owner:  ctx.String("owner"),
		Amount: amount,
	})
	if err != nil {
		return err
	}

	printRespJSON(reply)
	return nil
}

func withdrawAction(ctx *cli.Context) error {
	client, cleanup, err := getEscrowClient()
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := client.Withdraw(context.Background(), &escrowrpc.WithdrawRequest{
		DepositId: ctx.String("deposit_id"),
		Caller:    ctx.String("caller"),
	}); err != nil {
		return err
	}

	fmt.Printf("deposit %s withdrawn\n", ctx.String("deposit_id"))
	return nil
}

func withdrawAllAction(ctx *cli.Context) error {
	client, cleanup, err := getEscrowClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.WithdrawAllPossible(
		context.Background(), &escrowrpc.WithdrawAllPossibleRequest{
			Owner: ctx.String("owner"),
		},
	)
	if err != nil {
		return err
	}

	printRespJSON(map[string]interface{}{
		"deposit_ids": reply.DepositIds,
		"amount":      mathutil.FromSmallestUnit(reply.Amount, getPrecision()),
	})
	return nil
}

func withdrawableAction(ctx *cli.Context) error {
	owner := ctx.String("owner")
	depositID := ctx.String("deposit_id")
	if (owner == "") == (depositID == "") {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}

	client, cleanup, err := getEscrowClient()
	if err != nil {
		return err
	}
	defer cleanup()

	if depositID != "" {
		reply, err := client.IsWithdrawable(
			context.Background(), &escrowrpc.IsWithdrawableRequest{
				DepositId: depositID,
			},
		)
		if err != nil {
			return err
		}
		printRespJSON(reply)
		return nil
	}

	list, err := client.GetWithdrawableList(
		context.Background(), &escrowrpc.GetWithdrawableListRequest{Owner: owner},
	)
	if err != nil {
		return err
	}
	total, err := client.GetTotalWithdrawableAmount(
		context.Background(), &escrowrpc.GetTotalWithdrawableAmountRequest{
			Owner: owner,
		},
	)
	if err != nil {
		return err
	}

	printRespJSON(map[string]interface{}{
		"deposit_ids": list.DepositIds,
		"amount":      mathutil.FromSmallestUnit(total.Amount, getPrecision()),
	})
	return nil
}

func depositsAction(ctx *cli.Context) error {
	depositID := ctx.String("deposit_id")
	if (ctx.String("owner") == "") == (depositID == "") {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}

	client, cleanup, err := getEscrowClient()
	if err != nil {
		return err
	}
	defer cleanup()

	if depositID != "" {
		reply, err := client.GetDeposit(
			context.Background(), &escrowrpc.GetDepositRequest{DepositId: depositID},
		)
		if err != nil {
			return err
		}
		printRespJSON(reply)
		return nil
	}

	var page *escrowrpc.Page
	if ctx.IsSet("page") || ctx.IsSet("page_size") {
		page = &escrowrpc.Page{
			Number: ctx.Int64("page"),
			Size:   ctx.Int64("page_size"),
		}
	}

	reply, err := client.ListDeposits(
		context.Background(), &escrowrpc.ListDepositsRequest{
			Owner: ctx.String("owner"),
			Page:  page,
		},
	)
	if err != nil {
		return err
	}

	printRespJSON(reply)
	return nil
}

func infoAction(ctx *cli.Context) error {
	client, cleanup, err := getEscrowClient()
	if err != nil {
		return err
	}
	defer cleanup()

	count, err := client.GetTotalNumDeposits(
		context.Background(), &escrowrpc.GetTotalNumDepositsRequest{},
	)
	if err != nil {
		return err
	}
	balance, err := client.GetEscrowBalance(
		context.Background(), &escrowrpc.GetEscrowBalanceRequest{},
	)
	if err != nil {
		return err
	}

	precision := getPrecision()
	printRespJSON(map[string]interface{}{
		"total_deposits":  count.Count,
		"ledger_balance":  mathutil.FromSmallestUnit(balance.LedgerBalance, precision),
		"gateway_balance": mathutil.FromSmallestUnit(balance.GatewayBalance, precision),
		"consistent":      balance.Consistent,
	})
	return nil
}
