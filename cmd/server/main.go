// Command server starts the item management HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/procopiouriel/gerenciamento-itens-api/internal/config"
	"github.com/procopiouriel/gerenciamento-itens-api/internal/migrate"
	"github.com/procopiouriel/gerenciamento-itens-api/internal/repository/postgres"
	"github.com/procopiouriel/gerenciamento-itens-api/internal/server/httpapi"
	"github.com/procopiouriel/gerenciamento-itens-api/internal/service"
	"github.com/procopiouriel/gerenciamento-itens-api/internal/token"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, runs migrations, and serves the HTTP API until
// interrupted.
func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
	)

	// The signing key is mandatory; refuse to start without it.
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.DatabaseDSN); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	// DB pool
	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("pgxpool.New", zap.Error(err))
	}
	defer pool.Close()

	// Repositories
	db := &postgres.DB{Pool: pool}
	userRepo := postgres.NewUserRepo(db)
	itemRepo := postgres.NewItemRepo(db)

	// Services
	tokens := token.NewService([]byte(cfg.SecretKey), cfg.TokenTTL)
	authSvc := service.NewAuthService(userRepo, tokens, cfg.BcryptCost)
	itemSvc := service.NewItemService(itemRepo)

	api := httpapi.New(authSvc, itemSvc, tokens, logger)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("shutdown complete")
}
