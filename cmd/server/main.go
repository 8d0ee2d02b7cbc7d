package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/user/drrm-simulator/config"
	"github.com/user/drrm-simulator/internal/content"
	"github.com/user/drrm-simulator/internal/cue"
	"github.com/user/drrm-simulator/internal/game"
	"github.com/user/drrm-simulator/internal/server"
	"github.com/user/drrm-simulator/internal/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "./config/config.json", "Path to configuration file")
	flag.Parse()

	// A missing .env file is fine; real environment variables still apply
	envErr := godotenv.Load()

	// Load configuration
	cfg, cfgErr := config.LoadConfig(*configPath)
	if cfgErr == nil {
		cfg.ApplyEnv()
	}

	// Set up logger
	logger := setupLogger(cfg.Server.LogLevel)
	defer logger.Sync()

	if cfgErr != nil {
		logger.Fatal("Failed to load configuration", zap.Error(cfgErr))
	}
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logger.Warn("Failed to read .env file", zap.Error(envErr))
	}

	// Open the key-value store behind session state, history and the mute flag
	kv, err := store.New(cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	if closer, ok := kv.(io.Closer); ok {
		defer closer.Close()
	}
	logger.Info("Storage ready", zap.String("driver", cfg.Storage.Driver))

	// Load game data
	library := content.DefaultLibrary()
	if err := loadGameData(library, cfg.Game.DataDir, logger); err != nil {
		logger.Fatal("Failed to load game data", zap.Error(err))
	}

	// Audio cues are logged and buffered for the client, unless muted
	feed := cue.NewFeed(0)
	audio := cue.NewMuteEmitter(cue.Multi{cue.NewLogEmitter(logger), feed}, kv, logger)

	// Initialize game session
	session := game.NewGameSession(cfg, kv, library, audio, nil)
	session.SetLogger(logger)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: server.New(session, audio, feed, cfg.Server.PublicURL, logger).Routes(),
	}

	// Start HTTP server
	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Server.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server stopped", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	waitForShutdown(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Failed to shut down HTTP server", zap.Error(err))
	}
	session.Close()
}

func setupLogger(level string) *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		config.Level = lvl
	}
	logger, _ := config.Build()
	return logger
}

// loadGameData merges events.json from the data directory into the built-in pools
func loadGameData(library *content.Library, dataDir string, logger *zap.Logger) error {
	dataLoader := content.NewDataLoader(dataDir, logger)

	events, err := dataLoader.LoadEvents()
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("No extra events found, using built-in scenarios", zap.String("dir", dataDir))
		return nil
	}
	if err != nil {
		return err
	}

	library.Add(events)
	logger.Info("Loaded events", zap.Int("count", len(events)))
	return nil
}

func waitForShutdown(logger *zap.Logger) {
	// Set up channel for shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	sig := <-sigChan
	logger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	// Perform cleanup
	logger.Info("Shutting down")
}
