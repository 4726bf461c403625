package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/darianrosebrook/figma-make-doom/internal/engine"
	"github.com/darianrosebrook/figma-make-doom/internal/server"
	"github.com/darianrosebrook/figma-make-doom/internal/version"
	"github.com/darianrosebrook/figma-make-doom/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации.
	cfg := engine.NewConfig()
	flag.Int64Var(&cfg.Seed, "seed", 0, "Simulation seed (0 for random)")
	flag.StringVar(&cfg.Port, "port", cfg.Port, "HTTP/WebSocket port")
	flag.StringVar(&cfg.TuningPath, "tuning", "", "Path to YAML balance overrides")
	flag.Parse()

	logger.Log.Info("Starting Make-Doom simulation core...")
	logger.Log.Info(version.String())

	// 2. Движок.
	gameService, err := engine.NewService(cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to initialize game service")
	}
	go gameService.Run()

	// 3. Транспорт.
	srv := server.New(gameService, cfg.Port)
	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	// 4. Ждем сигнала и гасим симуляцию.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down...")
	gameService.Stop()
}
