package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-timelock/internal/config"
	"github.com/tdex-network/tdex-timelock/internal/core/application"
	"github.com/tdex-network/tdex-timelock/internal/core/ports"
	"github.com/tdex-network/tdex-timelock/internal/infrastructure/clock"
	"github.com/tdex-network/tdex-timelock/internal/infrastructure/pubsub"
	"github.com/tdex-network/tdex-timelock/internal/infrastructure/token"
	grpcinterface "github.com/tdex-network/tdex-timelock/internal/interfaces/grpc"
	"github.com/tdex-network/tdex-timelock/pkg/stats"
)

func main() {
	if err := config.InitConfig(); err != nil {
		log.WithError(err).Fatal("failed to init config")
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	datadir := config.GetDatadir()

	dbType := config.GetString(config.DBTypeKey)
	dbDir := filepath.Join(datadir, config.DbLocation)

	simulatedToken, err := newSimulatedToken(
		dbType, config.GetString(config.EscrowAccountKey), dbDir,
	)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize token")
	}
	if account := config.GetString(config.TokenInitialSupplyAccountKey); account != "" {
		supply := config.GetUint64(config.TokenInitialSupplyKey)
		minted, err := mintInitialSupply(simulatedToken, account, supply)
		if err != nil {
			log.WithError(err).Fatal("failed to mint initial token supply")
		}
		if minted {
			log.Infof("minted initial supply of %d to %s", supply, account)
		}
	}
	gateway, err := token.NewGuardedGateway(simulatedToken)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize token gateway")
	}

	var cl ports.Clock = clock.NewSystemClock()
	var simulatedClock application.SimulatedClock
	if config.GetBool(config.SimulatedClockKey) {
		manual := clock.NewManualClock(time.Now())
		cl, simulatedClock = manual, manual
		log.Warn("daemon is running with a simulated clock")
	}

	pubsubSvc, err := pubsub.NewService(config.GetInt(config.WebhookRateLimitKey))
	if err != nil {
		log.WithError(err).Fatal("failed to initialize pubsub service")
	}

	appConfig := &application.Config{
		DBType:         dbType,
		DBConfig:       dbDir,
		TokenGateway:   gateway,
		Clock:          cl,
		PubSub:         pubsubSvc,
		SimulatedToken: simulatedToken,
		SimulatedClock: simulatedClock,
	}
	if err := appConfig.Validate(); err != nil {
		log.WithError(err).Fatal("invalid app config")
	}

	ctx, cancel := context.WithCancel(context.Background())

	if err := checkEscrowBalance(ctx, appConfig.EscrowService()); err != nil {
		log.WithError(err).Fatal("refusing to start")
	}

	svc, err := grpcinterface.NewService(grpcinterface.ServiceOpts{
		Address: fmt.Sprintf(":%d", config.GetInt(config.ListeningPortKey)),
		OperatorAddress: net.JoinHostPort(
			config.GetString(config.OperatorListeningHostKey),
			config.GetString(config.OperatorListeningPortKey),
		),
		NoTls:        config.GetBool(config.NoTlsKey),
		TLSLocation:  filepath.Join(datadir, config.TLSLocation),
		ExtraIPs:     config.GetStringSlice(config.TLSExtraIPKey),
		ExtraDomains: config.GetStringSlice(config.TLSExtraDomainKey),
		EscrowSvc:    appConfig.EscrowService(),
		OperatorSvc:  appConfig.OperatorService(),
		EventsSource: pubsubSvc,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to initialize interface service")
	}

	if config.GetBool(config.EnableProfilerKey) {
		interval := time.Duration(config.GetInt(config.StatsIntervalKey)) * time.Second
		stats.EnableMemoryStatistics(
			ctx, interval, filepath.Join(datadir, config.ProfilerLocation),
		)
	}

	log.RegisterExitHandler(func() {
		cancel()
		svc.Stop()
		pubsubSvc.Close()
		appConfig.RepoManager().Close()
		simulatedToken.Close()
	})

	if err := svc.Start(); err != nil {
		log.WithError(err).Fatal("failed to start daemon")
	}
	log.Infof(
		"timelock daemon listening on %s, operator interface on %s",
		svc.Addr(), svc.OperatorAddr(),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)
	<-sigChan

	log.Info("shutting down daemon")
	cancel()
	svc.Stop()
	pubsubSvc.Close()
	appConfig.RepoManager().Close()
	simulatedToken.Close()

	log.Debug("exiting")
}
