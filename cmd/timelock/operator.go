package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tdex-network/tdex-timelock/pkg/escrowrpc"
	"github.com/tdex-network/tdex-timelock/pkg/mathutil"
	"github.com/urfave/cli/v2"
)

var webhooks = cli.Command{
	Name:  "webhooks",
	Usage: "manage the webhooks notified about escrow events",
	Subcommands: []*cli.Command{
		{
			Name:  "add",
			Usage: "register a webhook for a topic",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "topic",
					Usage:    "DEPOSIT_CREATED, DEPOSIT_WITHDRAWN, DEPOSITS_WITHDRAWN or * for all",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "endpoint",
					Usage:    "the url notified with a POST request",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "secret",
					Usage: "optional secret to sign the requests with",
				},
			},
			Action: addWebhookAction,
		},
		{
			Name:  "remove",
			Usage: "remove a webhook by id",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "id",
					Usage:    "the id of the webhook",
					Required: true,
				},
			},
			Action: removeWebhookAction,
		},
		{
			Name:  "list",
			Usage: "list the webhooks registered for a topic",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "topic",
					Usage: "the topic to filter hooks by",
					Value: "*",
				},
			},
			Action: listWebhooksAction,
		},
	},
}

var faucet = cli.Command{
	Name:  "faucet",
	Usage: "mint simulated tokens to an account",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "account",
			Usage:    "the account receiving the tokens",
			Required: true,
		},
		&amountFlag,
	},
	Action: faucetAction,
}

var approve = cli.Command{
	Name:   "approve",
	Usage:  "let the escrow pull up to amount tokens from owner",
	Flags:  []cli.Flag{&ownerFlag, &amountFlag},
	Action: approveAction,
}

var balance = cli.Command{
	Name:  "balance",
	Usage: "show the simulated token balance and allowance of an account",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "account",
			Usage:    "the account to check",
			Required: true,
		},
	},
	Action: balanceAction,
}

var advanceclock = cli.Command{
	Name:  "advanceclock",
	Usage: "move the simulated clock of the daemon forward",
	Flags: []cli.Flag{
		&cli.DurationFlag{
			Name:     "duration",
			Usage:    "the amount of time to move forward, ie. 2160h",
			Required: true,
		},
	},
	Action: advanceClockAction,
}

func addWebhookAction(ctx *cli.Context) error {
	client, cleanup, err := getOperatorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.AddWebhook(
		context.Background(), &escrowrpc.AddWebhookRequest{
			Topic:    ctx.String("topic"),
			Endpoint: ctx.String("endpoint"),
			Secret:   ctx.String("secret"),
		},
	)
	if err != nil {
		return err
	}

	printRespJSON(reply)
	return nil
}

func removeWebhookAction(ctx *cli.Context) error {
	client, cleanup, err := getOperatorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := client.RemoveWebhook(
		context.Background(), &escrowrpc.RemoveWebhookRequest{
			Id: ctx.String("id"),
		},
	); err != nil {
		return err
	}

	fmt.Println("webhook removed")
	return nil
}

func listWebhooksAction(ctx *cli.Context) error {
	client, cleanup, err := getOperatorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.ListWebhooks(
		context.Background(), &escrowrpc.ListWebhooksRequest{
			Topic: ctx.String("topic"),
		},
	)
	if err != nil {
		return err
	}

	printRespJSON(reply)
	return nil
}

func faucetAction(ctx *cli.Context) error {
	amount, err := mathutil.ToSmallestUnit(ctx.String("amount"), getPrecision())
	if err != nil {
		return err
	}

	client, cleanup, err := getOperatorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := client.Faucet(context.Background(), &escrowrpc.FaucetRequest{
		Account: ctx.String("account"),
		Amount:  amount,
	}); err != nil {
		return err
	}

	fmt.Printf("minted %s to %s\n", ctx.String("amount"), ctx.String("account"))
	return nil
}

func approveAction(ctx *cli.Context) error {
	amount, err := mathutil.ToSmallestUnit(ctx.String("amount"), getPrecision())
	if err != nil {
		return err
	}

	client, cleanup, err := getOperatorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := client.Approve(context.Background(), &escrowrpc.ApproveRequest{
		Owner:  ctx.String("owner"),
		Amount: amount,
	}); err != nil {
		return err
	}

	fmt.Printf("allowance of %s set to %s\n", ctx.String("owner"), ctx.String("amount"))
	return nil
}

func balanceAction(ctx *cli.Context) error {
	client, cleanup, err := getOperatorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.BalanceOf(context.Background(), &escrowrpc.BalanceOfRequest{
		Account: ctx.String("account"),
	})
	if err != nil {
		return err
	}

	precision := getPrecision()
	printRespJSON(map[string]string{
		"balance":   mathutil.FromSmallestUnit(reply.Balance, precision),
		"allowance": mathutil.FromSmallestUnit(reply.Allowance, precision),
	})
	return nil
}

func advanceClockAction(ctx *cli.Context) error {
	d := ctx.Duration("duration")
	if d <= 0 {
		return fmt.Errorf("duration must be positive")
	}

	client, cleanup, err := getOperatorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.AdvanceClock(
		context.Background(), &escrowrpc.AdvanceClockRequest{
			Seconds: int64(d / time.Second),
		},
	)
	if err != nil {
		return err
	}

	fmt.Printf("daemon clock is now %s\n", time.Unix(reply.Now, 0).UTC().Format(time.RFC3339))
	return nil
}
