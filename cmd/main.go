package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myregistry/adapters/myredis"
	"myregistry/api"
	"myregistry/domain"
	"myregistry/events"
	"myregistry/handlers"
	"myregistry/health"
	"myregistry/metrics"
	"myregistry/scheduler"
	"myregistry/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"
	"google.golang.org/grpc"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting MyRegistry service")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	logger = level.NewFilter(logger, config.LogLevel)
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"service_port_grpc", config.GRPCPort,
		"redis_addr", config.Redis.Addr,
		"default_ttl_seconds", config.DefaultTTL,
		"reaper_interval", config.ReaperInterval,
		"events_channel", config.EventsChannel,
	)

	var redisClient redis.UniversalClient
	{
		redisClient, err = myredis.NewRedisUniversalClient(config.Redis.Addr, config.Redis.Options()...)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to Redis")
	}

	promRegistry := prometheus.NewRegistry()
	registryMetrics := metrics.New(promRegistry)

	// Event publisher
	emitter := events.NewEmitter()
	{
		eventLogger := log.WithPrefix(logger, "component", "Events")
		emitter.OnOnline(func(reg domain.Registration) {
			level.Debug(eventLogger).Log("msg", "online", "id", reg.ID)
		})
		emitter.OnOffline(func(id string) {
			level.Debug(eventLogger).Log("msg", "offline", "id", id)
		})
		if config.EventsChannel != "" {
			myredis.NewNotifier(redisClient, config.EventsChannel, logger).Subscribe(emitter)
		}
	}

	registry := myredis.NewRegistry(redisClient, emitter, logger,
		myredis.WithDefaultTTL(config.DefaultTTL),
		myredis.WithMetrics(registryMetrics),
	)

	reaper, err := scheduler.NewReaper(registry, config.ReaperInterval, logger)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to create reaper", "err", err)
		os.Exit(1)
	}

	// Create HTTPServer
	var httpServer handlers.ServerInterface
	{
		httpServer = handlers.NewHTTPServer(registry, logger)
	}

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		validator, err := handlers.NewRequestValidator(api.Spec)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to load OpenAPI document", "err", err)
			os.Exit(1)
		}

		e = echo.New()
		e.HideBanner = true
		service.RegisterErrorHandler(e, logger)
		e.Use(validator)
		handlers.RegisterHandlers(e, httpServer)
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(promRegistry)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := reaper.Start(ctx); err != nil {
		level.Error(logger).Log("msg", "Failed to start reaper", "err", err)
		os.Exit(1)
	}

	// Optional gRPC health server
	var grpcServer *grpc.Server
	if config.GRPCPort != 0 {
		checker := health.NewChecker(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}, 5*time.Second, logger)
		grpcServer = health.NewGRPCServer(checker)

		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", config.GRPCPort))
		if err != nil {
			level.Error(logger).Log("msg", "Failed to listen", "err", err)
			os.Exit(1)
		}
		go checker.Run(ctx)
		go func() {
			level.Info(logger).Log("msg", "Starting gRPC health server", "addr", lis.Addr())
			if err := grpcServer.Serve(lis); err != nil {
				level.Error(logger).Log("msg", "gRPC server error", "err", err)
			}
		}()
	}

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
			stop()
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()
	level.Info(logger).Log("msg", "Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	err = e.Shutdown(shutdownCtx)
	reaper.Stop(shutdownCtx)
	err = multierr.Append(err, redisClient.Close())
	for _, err := range multierr.Errors(err) {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}

	level.Info(logger).Log("msg", "Server stopped")
}
