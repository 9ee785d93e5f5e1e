package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tartapies/tartapies-server-go/internal/config"
	"github.com/tartapies/tartapies-server-go/internal/game"
	"github.com/tartapies/tartapies-server-go/internal/repository"
	"github.com/tartapies/tartapies-server-go/internal/server"
	"github.com/tartapies/tartapies-server-go/internal/session"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting Tartapies server",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Optional durable snapshot store.
	var store server.SnapshotSaver
	if cfg.Database.Enabled {
		db, dbErr := repository.NewDB(ctx, cfg.Database, logger)
		if dbErr != nil {
			logger.Fatal("failed to connect to database", zap.Error(dbErr))
		}
		defer db.Close()

		stats := db.Stats()
		logger.Info("database connection pool initialized",
			zap.Int32("total_conns", stats.TotalConns()),
			zap.Int32("idle_conns", stats.IdleConns()),
		)

		snapshots, storeErr := repository.NewSnapshotStore(ctx, db)
		if storeErr != nil {
			logger.Fatal("failed to initialize snapshot store", zap.Error(storeErr))
		}
		store = snapshots
	}

	engine := game.NewEngine(logger, nil)
	logger.Info("game engine initialized")

	sessionMgr := session.NewManager(engine, cfg.Server.MaxSessions, cfg.Server.TurnTimeout, logger)
	logger.Info("session manager initialized",
		zap.Int("max_sessions", cfg.Server.MaxSessions),
		zap.Duration("turn_timeout", cfg.Server.TurnTimeout),
	)
	go sessionMgr.RunJanitor(ctx)

	go func() {
		if wsErr := server.StartWebSocketServer(cfg.Server.WebSocket, sessionMgr, engine, store, logger); wsErr != nil {
			logger.Error("WebSocket server error", zap.Error(wsErr))
		}
	}()

	logger.Info("Tartapies server initialized",
		zap.String("websocket_address", cfg.Server.WebSocket.Address),
		zap.Bool("snapshot_store", cfg.Database.Enabled),
	)

	sig := <-sigChan
	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	logger.Info("shutting down gracefully...")
	cancel()

	logger.Info("Tartapies server stopped")
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
