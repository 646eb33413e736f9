package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alphawatch/alphawatch/internal/config"
	httpserver "github.com/alphawatch/alphawatch/internal/interfaces/http"
	"github.com/alphawatch/alphawatch/internal/interfaces/http/handlers"
	"github.com/alphawatch/alphawatch/internal/narratives"
	"github.com/alphawatch/alphawatch/internal/prices"
	"github.com/alphawatch/alphawatch/internal/scoring"
	"github.com/alphawatch/alphawatch/internal/telemetry/metrics"
	"github.com/alphawatch/alphawatch/internal/tokens"
	"github.com/alphawatch/alphawatch/internal/wallet"
)

const (
	appName = "AlphaWatch"
	version = "v0.3.1"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	// .env is optional for local development; absence is not an error.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "alphawatch",
		Short:   appName + " — narrative-driven alpha scanner for Solana tokens",
		Version: version,
		RunE:    runServe,
	}
	rootCmd.Flags().Int("port", 0, "Listening port (overrides PORT)")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("exiting")
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}

	metrics.Init()

	table, err := tokens.Load(cfg.TokenMapFile)
	if err != nil {
		return err
	}

	identity, err := wallet.LoadIdentity(cfg.WalletSecret)
	if err != nil {
		return err
	}
	log.Info().
		Str("address", identity.Address.String()).
		Bool("ephemeral", identity.Ephemeral).
		Str("network", cfg.Network).
		Msg("wallet identity ready")

	deps := handlers.Deps{
		Version:  version,
		Feed:     narratives.NewClient(narratives.Config{BaseURL: cfg.NarrativeAPIURL, Timeout: cfg.RequestTimeout}),
		Prices:   prices.NewClient(prices.Config{BaseURL: cfg.PriceAPIURL, Timeout: cfg.RequestTimeout}),
		Wallet:   wallet.NewStatsClient(cfg.RPCEndpoint, cfg.Network),
		Identity: identity,
		Scorer:   scoring.NewScorer(table),
		Table:    table,
	}

	serverCfg := httpserver.DefaultServerConfig()
	serverCfg.Host = cfg.Host
	serverCfg.Port = cfg.Port

	srv, err := httpserver.NewServer(serverCfg, handlers.NewHandlers(deps))
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
