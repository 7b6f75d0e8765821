package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/louisbranch/pursuit/internal/platform/metrics"
	"github.com/louisbranch/pursuit/internal/platform/timeouts"
)

// HealthService is the health-check service name reported by the admin
// listener alongside the overall "" status.
const HealthService = "world.v1.WorldService"

// admin serves gRPC health checks and /metrics on one cleartext port. HTTP/2
// requests with a gRPC content type go to the gRPC server.
type admin struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	httpServer *http.Server
}

func newAdmin(addr string, gatherer prometheus.Gatherer) (*admin, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, nil
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on admin %s: %w", addr, err)
	}

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(HealthService, grpc_health_v1.HealthCheckResponse_SERVING)

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(gatherer))
	root := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ProtoMajor == 2 && strings.HasPrefix(r.Header.Get("Content-Type"), "application/grpc") {
			grpcServer.ServeHTTP(w, r)
			return
		}
		mux.ServeHTTP(w, r)
	})

	return &admin{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		httpServer: &http.Server{
			Handler:           h2c.NewHandler(root, &http2.Server{}),
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

func (a *admin) addr() string {
	if a == nil {
		return ""
	}
	return a.listener.Addr().String()
}

func (a *admin) serve() error {
	if a == nil {
		return nil
	}
	err := a.httpServer.Serve(a.listener)
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("serve admin: %w", err)
}

func (a *admin) close() error {
	if a == nil {
		return nil
	}
	a.health.Shutdown()
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
	defer cancel()
	err := a.httpServer.Shutdown(ctx)
	a.grpcServer.Stop()
	if err != nil {
		return fmt.Errorf("shutdown admin: %w", err)
	}
	return nil
}
