package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/tdex-network/tdex-timelock/internal/core/application"

	"github.com/spf13/viper"
)

const (
	// ListeningPortKey is the port where the gRPC escrow interface will listen on
	ListeningPortKey = "LISTENING_PORT"
	// OperatorListeningPortKey is the port where the gRPC operator interface
	// will listen on
	OperatorListeningPortKey = "OPERATOR_LISTENING_PORT"
	// OperatorListeningHostKey is the host the operator interface binds to.
	// It defaults to the loopback interface
	OperatorListeningHostKey = "OPERATOR_LISTENING_HOST"
	// DatadirKey is the local data directory to store the internal state of daemon
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// DBTypeKey is used to switch database type between those supported
	DBTypeKey = "DB_TYPE"
	// SimulatedClockKey makes the daemon use a clock that can be moved forward
	// with the AdvanceClock rpc
	SimulatedClockKey = "SIMULATED_CLOCK"
	// EscrowAccountKey is the account of the simulated token holding the funds
	// in escrow
	EscrowAccountKey = "ESCROW_ACCOUNT"
	// TokenInitialSupplyAccountKey is the account receiving the initial supply
	// of the simulated token, if any
	TokenInitialSupplyAccountKey = "TOKEN_INITIAL_SUPPLY_ACCOUNT"
	// TokenInitialSupplyKey is the amount minted at startup to
	// TOKEN_INITIAL_SUPPLY_ACCOUNT
	TokenInitialSupplyKey = "TOKEN_INITIAL_SUPPLY"
	// WebhookRateLimitKey is the max number of webhook requests sent per second
	WebhookRateLimitKey = "WEBHOOK_RATE_LIMIT"
	// EnableProfilerKey enables profiler that can be used to investigate performance issues
	EnableProfilerKey = "ENABLE_PROFILER"
	// StatsIntervalKey defines interval for printing basic statistics
	StatsIntervalKey = "STATS_INTERVAL"
	// NoTlsKey is used to start the daemon without using TLS
	NoTlsKey = "NO_TLS"
	// TLSExtraIPKey is used to add extra ip addresses to the self-signed TLS
	// certificate.
	TLSExtraIPKey = "TLS_EXTRA_IP"
	// TLSExtraDomainKey is used to add extra domains to the self signed TLS
	// certificate.
	TLSExtraDomainKey = "TLS_EXTRA_DOMAIN"

	DbLocation       = "db"
	TLSLocation      = "tls"
	ProfilerLocation = "stats"

	defaultEscrowAccount = "timelock-escrow"
)

var vip *viper.Viper
var defaultDatadir = btcutil.AppDataDir("tdex-timelock", false)

func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("TIMELOCK")
	vip.AutomaticEnv()

	vip.SetDefault(ListeningPortKey, 9000)
	vip.SetDefault(OperatorListeningPortKey, 9001)
	vip.SetDefault(OperatorListeningHostKey, "127.0.0.1")
	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(DBTypeKey, application.DBBadger)
	vip.SetDefault(SimulatedClockKey, false)
	vip.SetDefault(EscrowAccountKey, defaultEscrowAccount)
	vip.SetDefault(WebhookRateLimitKey, 50)
	vip.SetDefault(EnableProfilerKey, false)
	vip.SetDefault(StatsIntervalKey, 600)
	vip.SetDefault(NoTlsKey, false)

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetUint64(key string) uint64 {
	return vip.GetUint64(key)
}

func GetStringSlice(key string) []string {
	return vip.GetStringSlice(key)
}

func GetDuration(key string) time.Duration {
	return vip.GetDuration(key)
}

func GetBool(key string) bool {
	return vip.GetBool(key)
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("missing datadir")
	}

	dbType := GetString(DBTypeKey)
	if _, ok := application.SupportedDBType[dbType]; !ok {
		return fmt.Errorf("unsupported db type %s", dbType)
	}

	if GetInt(ListeningPortKey) == GetInt(OperatorListeningPortKey) {
		return fmt.Errorf(
			"%s and %s must be different", ListeningPortKey, OperatorListeningPortKey,
		)
	}

	if GetInt(WebhookRateLimitKey) <= 0 {
		return fmt.Errorf("%s must be a positive number", WebhookRateLimitKey)
	}

	if GetInt(StatsIntervalKey) <= 0 {
		return fmt.Errorf("%s must be a positive number", StatsIntervalKey)
	}

	if len(GetString(EscrowAccountKey)) <= 0 {
		return fmt.Errorf("missing escrow account")
	}

	supplyAccount := GetString(TokenInitialSupplyAccountKey)
	if vip.IsSet(TokenInitialSupplyKey) && supplyAccount == "" {
		return fmt.Errorf(
			"%s requires %s to be set", TokenInitialSupplyKey, TokenInitialSupplyAccountKey,
		)
	}
	if supplyAccount != "" && supplyAccount == GetString(EscrowAccountKey) {
		return fmt.Errorf("initial supply can't be minted to the escrow account")
	}

	for _, ip := range GetStringSlice(TLSExtraIPKey) {
		if net.ParseIP(ip) == nil {
			return fmt.Errorf("invalid tls extra ip %s", ip)
		}
	}

	return nil
}

func initDatadir() error {
	datadir := GetDatadir()
	if err := makeDirectoryIfNotExists(filepath.Join(datadir, DbLocation)); err != nil {
		return err
	}

	profilerEnabled := GetBool(EnableProfilerKey)
	if profilerEnabled {
		if err := makeDirectoryIfNotExists(filepath.Join(datadir, ProfilerLocation)); err != nil {
			return err
		}
	}

	noTls := GetBool(NoTlsKey)
	if !noTls {
		if err := makeDirectoryIfNotExists(filepath.Join(datadir, TLSLocation)); err != nil {
			return err
		}
	}
	return nil
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
