package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"standup-lab/auth"
	"standup-lab/infrastructure/rest"
	"standup-lab/infrastructure/ws"
	"standup-lab/internal"
	"standup-lab/observability"
	"standup-lab/repositories"
	"standup-lab/runtime"
	"standup-lab/runtime/workers"
	"standup-lab/services"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "standup-lab terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and owns the server lifecycle, so that all
// deferred cleanups execute before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	locale, _ := config.Locale()
	log := logs.GetLoggerFromString(config.LogLevel)
	if config.JWTSecret == "" {
		log.Warn("JWT_SECRET is empty, every connection will be refused as misconfigured")
	}

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	membership := repositories.NewMembershipRepository(db, log)
	checkins := repositories.NewCheckinRepository(db)

	// 3. Coordinator & supervised workers
	monitoring := observability.NewMonitoringManager(log, config.MetricInterval)
	coordinator := runtime.NewCoordinator(log, membership, workers.NewEventFanout(log), monitoring, runtime.Settings{
		SessionBudget: config.SessionBudget,
		SessionTick:   config.SessionTick,
		LookupTimeout: config.MembershipTimeout,
		Locale:        locale,
	})
	sup := workers.NewSupervisor(log, config.RestartInterval).
		Add(workers.NewLivenessWorker(log, coordinator, config.PingInterval), monitoring)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go sup.Run(ctx)

	// 4. HTTP: websocket, command API, debug
	verifier := auth.NewTokenVerifier(config.JWTSecret)
	gate := ws.NewGate(log, verifier, membership, coordinator, config.MembershipTimeout)
	service := services.NewStandupService(log, coordinator, membership, checkins)
	inspect := internal.InspectHandler(db, nil, func() map[string]any {
		stats := monitoring.GetLatest()
		return map[string]any{
			"open_connections": stats.OpenConnections,
			"broadcasts":       stats.Broadcasts,
			"sessions_started": stats.SessionsStarted,
		}
	})
	router := rest.NewRouter(log, service, verifier,
		ws.NewHandler(log, gate, coordinator, monitoring, config.ConnectionBufferSize), monitoring, inspect)

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{Addr: address, Handler: router, ReadHeaderTimeout: 10 * time.Second}

	// 5. gRPC health service
	healthAddress := fmt.Sprintf("%s:%d", config.Host, config.HealthPort)
	listener, err := net.Listen("tcp", healthAddress)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", healthAddress, err)
	}
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	errChan := make(chan error, 2)
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()
	go func() {
		log.Info("Starting gRPC health server", "address", healthAddress)
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC health server error: %w", err)
		}
	}()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	// 6. Wait for Stop or Error
	code := exitOK
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err = <-errChan:
		log.Error("Server failed", "error", err)
		code = exitRuntime
	}

	// 7. Final Cleanup
	healthServer.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown incomplete", "error", err)
	}
	coordinator.Shutdown()
	sup.Stop()
	grpcServer.GracefulStop()
	log.Info("Program stopped cleanly")

	return code, err
}
