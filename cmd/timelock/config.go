package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/urfave/cli/v2"
)

var (
	rpcFlag = cli.StringFlag{
		Name:  "rpcserver",
		Usage: "timelockd daemon address host:port",
		Value: "localhost:9000",
	}

	operatorRpcFlag = cli.StringFlag{
		Name:  "operator_rpcserver",
		Usage: "timelockd operator interface address host:port",
		Value: "localhost:9001",
	}

	noTlsFlag = cli.BoolFlag{
		Name:  "no_tls",
		Usage: "connect to the daemon without TLS",
	}

	tlsCertFlag = cli.StringFlag{
		Name:  "tls_cert_path",
		Usage: "path of the daemon's TLS certificate",
	}

	precisionFlag = cli.IntFlag{
		Name:  "precision",
		Usage: "number of decimal places of the escrowed token",
		Value: 8,
	}
)

var config = cli.Command{
	Name:   "config",
	Usage:  "Print local configuration of the timelock CLI",
	Action: configAction,
	Subcommands: []*cli.Command{
		{
			Name:   "set",
			Usage:  "set a <key> <value> in the local state",
			Action: configSetAction,
		},
		{
			Name:   "init",
			Usage:  "initialize the local state with flags",
			Action: configInitAction,
			Flags: []cli.Flag{
				&rpcFlag,
				&operatorRpcFlag,
				&noTlsFlag,
				&tlsCertFlag,
				&precisionFlag,
			},
		},
	},
}

func configAction(ctx *cli.Context) error {
	state, err := getState()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(state))
	for key := range state {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Println(key + ": " + state[key])
	}

	return nil
}

func configInitAction(c *cli.Context) error {
	if c.Int("precision") < 0 {
		return errors.New("precision must not be negative")
	}

	return setState(map[string]string{
		rpcServerKey:         c.String("rpcserver"),
		operatorRpcServerKey: c.String("operator_rpcserver"),
		noTlsKey:             strconv.FormatBool(c.Bool("no_tls")),
		tlsCertPathKey:       c.String("tls_cert_path"),
		precisionKey:         strconv.Itoa(c.Int("precision")),
	})
}

func configSetAction(c *cli.Context) error {
	if c.NArg() < 2 {
		return errors.New("key and value are missing")
	}

	key := c.Args().Get(0)
	value := c.Args().Get(1)

	if err := setState(map[string]string{key: value}); err != nil {
		return err
	}

	fmt.Printf("%s %s has been set\n", key, value)

	return nil
}
