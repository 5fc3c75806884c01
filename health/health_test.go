package health

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
)

func startServer(t *testing.T, c *Checker) grpc_health_v1.HealthClient {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	grpcServer := NewGRPCServer(c)
	go func() {
		_ = grpcServer.Serve(lis)
	}()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return grpc_health_v1.NewHealthClient(conn)
}

func status(t *testing.T, client grpc_health_v1.HealthClient, service string) grpc_health_v1.HealthCheckResponse_ServingStatus {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	resp, err := client.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.Status
}

func TestChecker_Check(t *testing.T) {
	healthy := atomic.NewBool(false)
	c := NewChecker(func(ctx context.Context) error {
		if healthy.Load() {
			return nil
		}
		return assert.AnError
	}, time.Second, log.NewNopLogger())
	client := startServer(t, c)

	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, status(t, client, ""))

	healthy.Store(true)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, c.Check(context.Background()))
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, status(t, client, ""))
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, status(t, client, ServiceName))

	healthy.Store(false)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, c.Check(context.Background()))
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, status(t, client, ServiceName))
}

func TestChecker_Run(t *testing.T) {
	pings := atomic.NewInt32(0)
	c := NewChecker(func(ctx context.Context) error {
		pings.Inc()
		return nil
	}, 10*time.Millisecond, log.NewNopLogger())
	client := startServer(t, c)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return pings.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, status(t, client, ""))

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, status(t, client, ""))
}
