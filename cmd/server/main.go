package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"bigpicture/internal/assets"
	"bigpicture/internal/common/clock"
	"bigpicture/internal/handlers/httpapi"
	roomService "bigpicture/internal/services/room"
)

func main() {
	// A missing .env file is fine, env vars still apply.
	_ = godotenv.Load()

	cfg := &config{}
	if err := newCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(ctx context.Context, cfg *config) error {
	logger := newLogger(cfg.verbose)

	provider := assets.NewRandom(&assets.Config{})

	rooms, err := roomService.New(&roomService.Config{
		MaxRounds:     cfg.maxRounds,
		CodeLength:    cfg.codeLength,
		AssetProvider: provider,
		Clock:         &clock.DefaultClock{},
	})
	if err != nil {
		return fmt.Errorf("failed to create room service: %w", err)
	}

	handler, err := httpapi.New(&httpapi.Config{
		RoomService: rooms,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create http handler: %w", err)
	}

	addr := net.JoinHostPort(cfg.bind, strconv.Itoa(cfg.port))
	srv := &http.Server{
		Addr:    addr,
		Handler: handler.Routes(),
	}

	errs := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	select {
	case err := <-errs:
		return err
	case <-sc:
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newLogger(verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
