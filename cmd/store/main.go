package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/itsnaruto045-hub/EBONZ/internal/bootstrap"
	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/logging"
	"github.com/joho/godotenv"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.StdoutLogger

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using process environment")
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	app := bootstrap.NewApp(cfg, logger)
	defer app.Shutdown()

	if err := app.Run(mainCtx); err != nil {
		logger.Error("application stopped with error", "error", err.Error())
		os.Exit(1)
	}
}
