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
	"time"
	_ "time/tzdata"

	"github.com/fasihgds-afk/activity-detector-backend/internal/config"
	appHTTP "github.com/fasihgds-afk/activity-detector-backend/internal/handler/http"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/jwt"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/shift"
	"github.com/fasihgds-afk/activity-detector-backend/internal/repository"
	activityService "github.com/fasihgds-afk/activity-detector-backend/internal/service/activity"
	serviceAuth "github.com/fasihgds-afk/activity-detector-backend/internal/service/auth"
	employeeService "github.com/fasihgds-afk/activity-detector-backend/internal/service/employee"
	reportService "github.com/fasihgds-afk/activity-detector-backend/internal/service/report"
	settingsService "github.com/fasihgds-afk/activity-detector-backend/internal/service/settings"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	resolver, err := shift.LoadResolver(cfg.Shift.Timezone)
	if err != nil {
		return fmt.Errorf("load shift timezone: %w", err)
	}

	repos, err := repository.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer repos.Close()

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	accounts := serviceAuth.Accounts{
		SuperAdmin: serviceAuth.Credentials{Username: cfg.Accounts.SuperAdminUser, Password: cfg.Accounts.SuperAdminPass},
		Admin:      serviceAuth.Credentials{Username: cfg.Accounts.AdminUser, Password: cfg.Accounts.AdminPass},
	}

	authSvc := serviceAuth.NewAuthService(repos.Employees, JWTService, accounts)
	settingsSvc := settingsService.NewSettingsService(repos.Settings)
	reportSvc := reportService.NewReportService(repos.Employees, repos.Activities, repos.Breaks, repos.Settings, resolver)
	employeeSvc := employeeService.NewEmployeeService(repos.Employees)
	activitySvc := activityService.NewActivityService(repos.Activities)

	router := appHTTP.NewRouter(cfg, logger, JWTService, appHTTP.Handlers{
		Auth:     appHTTP.NewAuthHandler(authSvc),
		Config:   appHTTP.NewConfigHandler(settingsSvc),
		Report:   appHTTP.NewReportHandler(reportSvc),
		Employee: appHTTP.NewEmployeeHandler(employeeSvc),
		Activity: appHTTP.NewActivityHandler(activitySvc),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ReadTimeout:       cfg.HTTP.RequestTimeout,
		IdleTimeout:       2 * cfg.HTTP.ReadHeaderTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
