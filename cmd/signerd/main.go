package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/stablepay/signerd/pkg/chains"
	"github.com/stablepay/signerd/pkg/config"
	"github.com/stablepay/signerd/pkg/constants"
	"github.com/stablepay/signerd/pkg/server"
	"github.com/stablepay/signerd/pkg/signer"
	"github.com/stablepay/signerd/pkg/swap"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	if err := run(logger); err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	identity, err := signer.NewIdentity(cfg.PrivateKey)
	if err != nil {
		return err
	}

	chainConfigs, err := cfg.ChainConfigs()
	if err != nil {
		return err
	}
	registry, err := chains.NewRegistry(chainConfigs, cfg.DefaultChain)
	if err != nil {
		return err
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	handlers := server.NewHandlers(
		logger,
		registry,
		chains.NewResolver(registry, !cfg.Multichain),
		signer.NewEngine(identity, cfg.ActivationFlag),
		swap.NewQuoteReader(logger),
		swap.NewCalldataBuilder(),
	)
	router := server.SetupRouter(handlers, cfg.CORSOrigins, logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	logger.Info("starting paymaster signing service",
		"addr", srv.Addr,
		"signer", identity.Address().Hex(),
		"defaultChain", cfg.DefaultChain,
		"chains", cfg.ChainAliases,
		"multichain", cfg.Multichain,
		"activationFlag", cfg.ActivationFlag)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen error: %w", err)
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server exited")
	return nil
}
