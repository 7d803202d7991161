package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fasihgds-afk/activity-detector-backend/internal/config"
	"github.com/fasihgds-afk/activity-detector-backend/internal/fixtures"
	"github.com/fasihgds-afk/activity-detector-backend/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}
	if cfg.StoreDriver == config.StoreMemory {
		fmt.Println("STORE_DRIVER=memory keeps nothing after exit; choose mongo or postgres")
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	repos, err := repository.Open(ctx, cfg)
	if err != nil {
		slog.Error("open store", "error", err)
		os.Exit(1)
	}
	defer repos.Close()

	seeded, err := fixtures.Seed(ctx, repos, time.Now())
	if err != nil {
		slog.Error("seed failed", "error", err)
		return
	}

	slog.Info("seed complete",
		"store", cfg.StoreDriver,
		"employees", len(seeded.EmployeeIDs),
		"idle_logs", seeded.IdleLogs,
		"auto_breaks", seeded.AutoBreaks,
	)
}
