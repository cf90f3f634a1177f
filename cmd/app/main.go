package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tillerlane/CroftBot_Go/internal/account"
	"github.com/tillerlane/CroftBot_Go/internal/bootstrap"
	"github.com/tillerlane/CroftBot_Go/internal/clock"
	"github.com/tillerlane/CroftBot_Go/internal/config"
	"github.com/tillerlane/CroftBot_Go/internal/database"
	"github.com/tillerlane/CroftBot_Go/internal/database/postgres"
	"github.com/tillerlane/CroftBot_Go/internal/farm"
	"github.com/tillerlane/CroftBot_Go/internal/handler"
	"github.com/tillerlane/CroftBot_Go/internal/ledger"
	"github.com/tillerlane/CroftBot_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	handler.InitValidator()

	dbPool, err := database.NewPool(cfg.GetDBConnString())
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	catalog, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		slog.Error("Crop catalog load failed", "error", err)
		os.Exit(1)
	}

	eventBus := bootstrap.InitializeEventSystem()

	clk := clock.New()
	ldg := ledger.New(clk)
	farmRepo := postgres.NewFarmRepository(dbPool)
	accountService := account.NewService(farmRepo, ldg, clk, cfg.PlotCapacity, cfg.StartingBalance)
	farmService := farm.NewService(farmRepo, accountService, catalog, ldg, clk, eventBus)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, farmService, catalog)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})
}
