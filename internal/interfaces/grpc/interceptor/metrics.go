package interceptor

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

var rpcRequestsCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "timelock_rpc_requests_total",
		Help: "Number of rpc requests served, by method and status code.",
	},
	[]string{"method", "code"},
)

func unaryMetrics(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	res, err := handler(ctx, req)
	rpcRequestsCounter.WithLabelValues(
		info.FullMethod, status.Code(err).String(),
	).Inc()
	return res, err
}
