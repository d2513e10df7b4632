package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/tdex-network/tdex-timelock/pkg/escrowrpc"
	"github.com/tdex-network/tdex-timelock/pkg/mathutil"
	"github.com/urfave/cli/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	rpcServerKey         = "rpcserver"
	operatorRpcServerKey = "operator_rpcserver"
	noTlsKey             = "no_tls"
	tlsCertPathKey       = "tls_cert_path"
	precisionKey         = "precision"
)

var (
	// maxMsgRecvSize is the largest message our client will receive. We
	// set this to 200MiB atm.
	maxMsgRecvSize = grpc.MaxCallRecvMsgSize(1 * 1024 * 1024 * 200)

	cliDataDir = btcutil.AppDataDir("timelock-cli", false)
	statePath  = filepath.Join(cliDataDir, "state.json")
)

func main() {
	app := newApp()

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "timelock CLI"
	app.Usage = "Command line interface for the timelock escrow daemon"
	app.Commands = append(
		app.Commands,
		&config,
		&deposit,
		&withdraw,
		&withdrawall,
		&withdrawable,
		&deposits,
		&info,
		&webhooks,
		&faucet,
		&approve,
		&balance,
		&advanceclock,
	)
	return app
}

func getState() (map[string]string, error) {
	data := map[string]string{}

	file, err := os.ReadFile(statePath)
	if err != nil {
		return nil, errors.New("get config state error: try 'config init'")
	}
	if err := json.Unmarshal(file, &data); err != nil {
		return nil, fmt.Errorf("invalid config state: %s", err)
	}

	return data, nil
}

func setState(data map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(statePath), os.ModeDir|0755); err != nil {
		return err
	}

	currentData := map[string]string{}
	if _, err := os.Stat(statePath); err == nil {
		if currentData, err = getState(); err != nil {
			return err
		}
	}

	mergedData := merge(currentData, data)

	jsonString, err := json.Marshal(mergedData)
	if err != nil {
		return err
	}
	if err := os.WriteFile(statePath, jsonString, 0644); err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}

	return nil
}

func merge(maps ...map[string]string) map[string]string {
	merge := make(map[string]string)
	for _, m := range maps {
		for k, v := range m {
			merge[k] = v
		}
	}
	return merge
}

func printRespJSON(resp interface{}) {
	jsonBytes, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fmt.Println("unable to decode response: ", err)
		return
	}

	fmt.Println(string(jsonBytes))
}

func getEscrowClient() (escrowrpc.EscrowServiceClient, func(), error) {
	conn, err := getClientConn(rpcServerKey)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = conn.Close() }

	return escrowrpc.NewEscrowServiceClient(conn), cleanup, nil
}

func getOperatorClient() (escrowrpc.OperatorServiceClient, func(), error) {
	conn, err := getClientConn(operatorRpcServerKey)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = conn.Close() }

	return escrowrpc.NewOperatorServiceClient(conn), cleanup, nil
}

func getClientConn(addressKey string) (*grpc.ClientConn, error) {
	state, err := getState()
	if err != nil {
		return nil, err
	}
	address, ok := state[addressKey]
	if !ok || address == "" {
		return nil, fmt.Errorf("set %s with `config set %s`", addressKey, addressKey)
	}

	opts := []grpc.DialOption{
		grpc.WithDefaultCallOptions(maxMsgRecvSize),
		escrowrpc.WithCodec(),
	}

	noTls, _ := strconv.ParseBool(state[noTlsKey])
	if noTls {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	} else {
		certPath := state[tlsCertPathKey]
		if certPath == "" {
			return nil, errors.New(
				"set tls_cert_path with `config set tls_cert_path` or disable tls " +
					"with `config set no_tls true`",
			)
		}
		creds, err := credentials.NewClientTLSFromFile(certPath, "")
		if err != nil {
			return nil, fmt.Errorf("failed to load tls cert: %s", err)
		}
		opts = append(opts, grpc.WithTransportCredentials(creds))
	}

	conn, err := grpc.Dial(address, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to RPC server: %v", err)
	}

	return conn, nil
}

func getPrecision() int32 {
	state, err := getState()
	if err != nil {
		return mathutil.DefaultPrecision
	}
	precision, err := strconv.ParseInt(state[precisionKey], 10, 32)
	if err != nil {
		return mathutil.DefaultPrecision
	}
	return int32(precision)
}

type invalidUsageError struct {
	ctx     *cli.Context
	command string
}

func (e *invalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage of command %s", e.command)
}

func fatal(err error) {
	var e *invalidUsageError
	if errors.As(err, &e) {
		_ = cli.ShowCommandHelp(e.ctx, e.command)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "[timelock] %v\n", err)
	}
	os.Exit(1)
}
