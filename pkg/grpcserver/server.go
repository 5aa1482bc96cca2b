package grpcserver

import (
	"context"
	"net"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/tair/warehouse/pkg/logger"
)

// ServiceName is the health-check service name reported by the warehouse
const ServiceName = "warehouse.v1.Warehouse"

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server exposes gRPC health and reflection for the warehouse process
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	pinger Pinger
}

// New creates a server with tracing, metrics and logging wired in
func New(pinger Pinger) *Server {
	gs := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(MetricsInterceptor, LoggingInterceptor),
	)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	reflection.Register(gs)

	return &Server{grpc: gs, health: hs, pinger: pinger}
}

// Refresh sets the serving status from a store ping
func (s *Server) Refresh(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if s.pinger != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := s.pinger.Ping(pingCtx); err != nil {
			logger.Warn(ctx).Err(err).Msg("Store ping failed, reporting NOT_SERVING")
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Serve blocks serving on lis
func (s *Server) Serve(lis net.Listener) error {
	s.Refresh(context.Background())
	logger.Logger.Info().Str("addr", lis.Addr().String()).Msg("gRPC server listening")
	return s.grpc.Serve(lis)
}

// Stop marks the service as not serving and drains in-flight calls
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
