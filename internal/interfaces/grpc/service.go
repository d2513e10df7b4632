package grpcinterface

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/soheilhy/cmux"
	"github.com/tdex-network/tdex-timelock/internal/core/application"
	interfaces "github.com/tdex-network/tdex-timelock/internal/interfaces"
	grpchandler "github.com/tdex-network/tdex-timelock/internal/interfaces/grpc/handler"
	"github.com/tdex-network/tdex-timelock/internal/interfaces/grpc/interceptor"
	"github.com/tdex-network/tdex-timelock/pkg/escrowrpc"
	"google.golang.org/grpc"
)

const (
	metricsPath = "/metrics"
	eventsPath  = "/v1/events"
)

var _ interfaces.Service = (*Service)(nil)

type ServiceOpts struct {
	Address string
	// OperatorAddress is where the operator service is exposed, separated from
	// the public escrow interface.
	OperatorAddress string

	NoTls        bool
	TLSLocation  string
	ExtraIPs     []string
	ExtraDomains []string

	EscrowSvc   application.EscrowService
	OperatorSvc application.OperatorService
	// Optional, enables the websocket endpoint streaming escrow events.
	EventsSource EventsSource
}

func (o ServiceOpts) validate() error {
	if _, _, err := net.SplitHostPort(o.Address); err != nil {
		return fmt.Errorf("invalid address: %s", err)
	}
	_, operatorPort, err := net.SplitHostPort(o.OperatorAddress)
	if err != nil {
		return fmt.Errorf("invalid operator address: %s", err)
	}
	// Port 0 lets the system pick a free port for both.
	if o.Address == o.OperatorAddress && operatorPort != "0" {
		return fmt.Errorf("escrow and operator interfaces must not share the same address")
	}
	if !o.NoTls {
		if o.TLSLocation == "" {
			return fmt.Errorf("missing tls location")
		}
		keyExists := pathExists(o.tlsKey())
		certExists := pathExists(o.tlsCert())
		if !keyExists && certExists {
			return fmt.Errorf(
				"found %s file but %s is missing. Please delete %s to have the daemon recreate both in path %s",
				TLSCertFile, TLSKeyFile, TLSCertFile, o.TLSLocation,
			)
		}
		for _, ip := range o.ExtraIPs {
			if net.ParseIP(ip) == nil {
				return fmt.Errorf("invalid extra ip %s", ip)
			}
		}
	}
	if o.EscrowSvc == nil {
		return fmt.Errorf("escrow app service must not be null")
	}
	if o.OperatorSvc == nil {
		return fmt.Errorf("operator app service must not be null")
	}
	return nil
}

func (o ServiceOpts) tlsKey() string {
	return filepath.Join(o.TLSLocation, TLSKeyFile)
}

func (o ServiceOpts) tlsCert() string {
	return filepath.Join(o.TLSLocation, TLSCertFile)
}

// Service serves the escrow interface (grpc, grpc-web, prometheus metrics
// and the events websocket multiplexed on the same port) and the operator
// interface (grpc and grpc-web) on a separate port.
type Service struct {
	opts ServiceOpts

	escrow   *endpoint
	operator *endpoint
}

type endpoint struct {
	listener   net.Listener
	grpcServer *grpc.Server
	httpServer *http.Server
	mux        cmux.CMux
}

func NewService(opts ServiceOpts) (*Service, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("invalid opts: %s", err)
	}

	if !opts.NoTls {
		if err := generateTLSKeyCert(
			opts.TLSLocation, opts.ExtraIPs, opts.ExtraDomains,
		); err != nil {
			return nil, err
		}
	}

	return &Service{opts: opts}, nil
}

func (s *Service) Start() error {
	escrowServer := newGRPCServer()
	escrowrpc.RegisterEscrowServiceServer(
		escrowServer, grpchandler.NewEscrowHandler(s.opts.EscrowSvc),
	)
	handlers := http.NewServeMux()
	handlers.Handle(metricsPath, promhttp.Handler())
	if s.opts.EventsSource != nil {
		handlers.Handle(eventsPath, eventsHandler(s.opts.EventsSource))
	}

	operatorServer := newGRPCServer()
	escrowrpc.RegisterOperatorServiceServer(
		operatorServer, grpchandler.NewOperatorHandler(s.opts.OperatorSvc),
	)

	escrow, err := s.serve(s.opts.Address, escrowServer, handlers)
	if err != nil {
		return err
	}
	operator, err := s.serve(s.opts.OperatorAddress, operatorServer, http.NotFoundHandler())
	if err != nil {
		escrow.stop()
		return err
	}

	s.escrow = escrow
	s.operator = operator

	log.Infof("escrow interface is listening on %s", s.Addr())
	log.Infof("operator interface is listening on %s", s.OperatorAddr())
	return nil
}

func (s *Service) Stop() {
	if s.operator != nil {
		s.operator.stop()
		log.Debug("disabled operator interface")
	}
	if s.escrow != nil {
		s.escrow.stop()
		log.Debug("disabled escrow interface")
	}
}

// Addr returns the address of the escrow interface, once started.
func (s *Service) Addr() string {
	if s.escrow == nil {
		return ""
	}
	return s.escrow.listener.Addr().String()
}

// OperatorAddr returns the address of the operator interface, once started.
func (s *Service) OperatorAddr() string {
	if s.operator == nil {
		return ""
	}
	return s.operator.listener.Addr().String()
}

// serve multiplexes grpc and http on the given address.
func (s *Service) serve(
	address string, grpcServer *grpc.Server, handler http.Handler,
) (*endpoint, error) {
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return nil, err
	}
	if !s.opts.NoTls {
		tlsLis, err := tlsListener(lis, s.opts.tlsKey(), s.opts.tlsCert())
		if err != nil {
			lis.Close()
			return nil, err
		}
		lis = tlsLis
	}
	httpServer := newGRPCWrappedServer(grpcServer, handler)

	mux := cmux.New(lis)
	grpcL := mux.MatchWithWriters(
		cmux.HTTP2MatchHeaderFieldPrefixSendSettings("content-type", "application/grpc"),
	)
	httpL := mux.Match(cmux.HTTP1Fast())

	go func() {
		if err := grpcServer.Serve(grpcL); err != nil && err != cmux.ErrListenerClosed {
			log.WithError(err).Debug("grpc server stopped")
		}
	}()
	go func() {
		if err := httpServer.Serve(httpL); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Debug("http server stopped")
		}
	}()
	go func() {
		if err := mux.Serve(); err != nil {
			log.WithError(err).Debug("mux stopped")
		}
	}()

	return &endpoint{
		listener:   lis,
		grpcServer: grpcServer,
		httpServer: httpServer,
		mux:        mux,
	}, nil
}

func (e *endpoint) stop() {
	//nolint
	e.httpServer.Shutdown(context.Background())
	e.grpcServer.GracefulStop()
	e.listener.Close()
}

func newGRPCServer() *grpc.Server {
	return grpc.NewServer(
		interceptor.UnaryInterceptor(),
		interceptor.StreamInterceptor(),
	)
}
