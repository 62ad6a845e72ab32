package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"marketplace/cmd"
	"marketplace/internal/pkg/logging"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, the relay and the background jobs",
	RunE:  runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	config, err := cmd.LoadConfig()
	if err != nil {
		return err
	}
	if err = config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger := logging.NewLogger(config.LogLevel)

	db, err := openDatabase(config)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	app, err := cmd.NewCompositionRoot(config, db, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("close dependencies", "error", closeErr)
		}
	}()

	e, err := app.CreateRouter()
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		address := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		logger.Info("http server listening", "address", address)
		serveErr <- e.Start(address)
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err = e.Shutdown(shutdownCtx)

	// the listener is closed, so no relay session can start after this
	closed := app.CloseRelayConnections()
	logger.Info("relay connections closed", "count", closed)
	return err
}
