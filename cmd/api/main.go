package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/peopleperf/dailyowo/internal/budget"
	budgetStore "github.com/peopleperf/dailyowo/internal/budget/store"
	"github.com/peopleperf/dailyowo/internal/config"
	"github.com/peopleperf/dailyowo/internal/database"
	"github.com/peopleperf/dailyowo/internal/export"
	owoHttp "github.com/peopleperf/dailyowo/internal/http"
	budgetHandler "github.com/peopleperf/dailyowo/internal/http/budget"
	exportHandler "github.com/peopleperf/dailyowo/internal/http/export"
	importHandler "github.com/peopleperf/dailyowo/internal/http/importcsv"
	insightsHandler "github.com/peopleperf/dailyowo/internal/http/insights"
	txHandler "github.com/peopleperf/dailyowo/internal/http/transaction"
	"github.com/peopleperf/dailyowo/internal/importer"
	"github.com/peopleperf/dailyowo/internal/matching"
	matchingStore "github.com/peopleperf/dailyowo/internal/matching/store"
	"github.com/peopleperf/dailyowo/internal/transaction"
	txStore "github.com/peopleperf/dailyowo/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		slog.Error("failed to apply schema", "error", err)
		os.Exit(1)
	}

	var (
		transactionService = transaction.NewService(txStore.New(db))
		budgetService      = budget.NewService(budgetStore.New(db))
		matchingService    = matching.NewService(matchingStore.New(db))
		importService      = importer.NewService()
		exportService      = export.NewService(transactionService)
	)

	var (
		transactionH = txHandler.NewHandler(transactionService)
		budgetH      = budgetHandler.NewHandler(budgetService, transactionService)
		insightsH    = insightsHandler.NewHandler(transactionService)
		importH      = importHandler.NewHandler(importService, transactionService, matchingService)
		exportH      = exportHandler.NewHandler(exportService)
	)

	router := owoHttp.New(transactionH, budgetH, insightsH, importH, exportH, cfg.Server.AllowedOrigins)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "addr", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
