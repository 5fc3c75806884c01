// Package health reports registry readiness over the gRPC health protocol.
package health

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health service name reported next to the empty (server wide) name.
const ServiceName = "myregistry"

const pingTimeout = 2 * time.Second

// PingFunc checks the backing store, e.g. a redis PING.
type PingFunc func(ctx context.Context) error

// Checker flips the gRPC health status between SERVING and NOT_SERVING following PingFunc.
type Checker struct {
	server   *health.Server
	ping     PingFunc
	interval time.Duration
	logger   log.Logger
}

// NewChecker creates a Checker. Status is NOT_SERVING until the first successful Check.
func NewChecker(ping PingFunc, interval time.Duration, logger log.Logger) *Checker {
	c := &Checker{
		server:   health.NewServer(),
		ping:     ping,
		interval: interval,
		logger:   log.WithPrefix(logger, "component", "HealthChecker"),
	}
	c.set(grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	return c
}

// Check pings once and publishes the result.
func (c *Checker) Check(ctx context.Context) grpc_health_v1.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	status := grpc_health_v1.HealthCheckResponse_SERVING
	if err := c.ping(ctx); err != nil {
		level.Warn(c.logger).Log("msg", "backing store ping failed", "err", err)
		status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}
	c.set(status)
	return status
}

// Run checks every interval until ctx is done, then marks the server as shutting down.
func (c *Checker) Run(ctx context.Context) {
	c.Check(ctx)
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			c.server.Shutdown()
			return
		case <-ticker.C:
			c.Check(ctx)
		}
	}
}

// NewGRPCServer creates a gRPC server exposing only the health and reflection services.
func NewGRPCServer(c *Checker) *grpc.Server {
	s := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(s, c.server)
	reflection.Register(s)
	return s
}

func (c *Checker) set(status grpc_health_v1.HealthCheckResponse_ServingStatus) {
	c.server.SetServingStatus("", status)
	c.server.SetServingStatus(ServiceName, status)
}
