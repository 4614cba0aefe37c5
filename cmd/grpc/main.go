package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-ledger-service/config"
	"github.com/fekuna/omnipos-ledger-service/internal/app"
	"github.com/fekuna/omnipos-ledger-service/pkg/clock"
	"github.com/fekuna/omnipos-ledger-service/pkg/database/sqlite"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Open Store
	ctx, cancel := context.WithTimeout(context.Background(), cfg.SQLite.BusyTimeout+5*time.Second)
	db, err := sqlite.NewSQLite(ctx, &sqlite.Config{
		Path:         cfg.SQLite.Path,
		BusyTimeout:  cfg.SQLite.BusyTimeout,
		MaxOpenConns: cfg.SQLite.MaxOpenConns,
	})
	if err != nil {
		cancel()
		appLogger.Fatal("Could not open store", zap.String("path", cfg.SQLite.Path), zap.Error(err))
	}
	defer db.Close()

	if err := sqlite.EnsureSchema(ctx, db); err != nil {
		cancel()
		appLogger.Fatal("Could not apply schema", zap.Error(err))
	}
	version, err := sqlite.SchemaVersion(ctx, db)
	cancel()
	if err != nil {
		appLogger.Fatal("Could not read schema version", zap.Error(err))
	}
	appLogger.Info("Opened SQLite store", zap.String("path", cfg.SQLite.Path), zap.String("schema_version", version))

	// 4. Wire services
	srv := app.NewServer(sqlite.NewTxManager(db), clock.System, appLogger)

	// 5. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.Contains(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		appLogger.Fatal("failed to listen", zap.String("port", port), zap.Error(err))
	}

	appLogger.Info("Starting gRPC server", zap.String("port", port))

	go func() {
		if err := srv.GRPC.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	done := make(chan struct{})
	go func() {
		srv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(cfg.Server.ShutdownTimeout):
		appLogger.Warn("Graceful stop timed out, forcing stop")
		srv.GRPC.Stop()
	}
	appLogger.Info("Server stopped")
}
