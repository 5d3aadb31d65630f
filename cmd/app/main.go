package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cardvault/catalogsync/internal/auth"
	"github.com/cardvault/catalogsync/internal/bootstrap"
	"github.com/cardvault/catalogsync/internal/catalog"
	"github.com/cardvault/catalogsync/internal/config"
	"github.com/cardvault/catalogsync/internal/database"
	"github.com/cardvault/catalogsync/internal/server"
	"github.com/cardvault/catalogsync/internal/synclog"
	"github.com/cardvault/catalogsync/internal/tcgapi"
)

// @title CardVault Catalog Sync API
// @version 1.0
// @description Synchronizes the trading card catalog from the external
// @description PokemonTCG API into the local store. Sync operations are admin only.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	slog.Info(bootstrap.LogMsgStartingCatalogSync, "version", cfg.Version, "environment", cfg.Environment)
	slog.Info(bootstrap.LogMsgConfigurationLoaded, "port", cfg.Port, "catalog_base_url", cfg.CatalogBaseURL)

	connString := cfg.GetDBConnString()

	if err := bootstrap.RunMigrations(connString); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	dbPool, err := database.NewPool(context.Background(), connString, cfg.DBMaxConns, cfg.DBMaxIdleTime, cfg.DBMaxLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	verifier := auth.NewVerifier(cfg.JWTSecret)
	gate := auth.NewGate(repos.Roles, cfg.CapabilityCacheLen, cfg.CapabilityCacheTTL)

	fetcher := tcgapi.NewClient(cfg.CatalogBaseURL, cfg.CatalogAPIKey, cfg.CatalogPageSize, cfg.CatalogTimeout).
		WithRetry(tcgapi.PageRetry{Attempts: cfg.CatalogRetryAttempts, Delay: cfg.CatalogRetryDelay})

	ledger := synclog.NewService(repos.SyncLog)
	syncService := catalog.NewService(gate, fetcher, repos.Catalog, ledger)

	srv := server.NewServer(cfg.Port, verifier, gate, cfg.TrustedProxies, dbPool, syncService, ledger)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Fatalf("Server failed: %v", err)
	case sig := <-quit:
		slog.Info("Signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})
}
