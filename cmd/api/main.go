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

	"github.com/cmlabs-hris/attendance-recap/internal/app"
	"github.com/cmlabs-hris/attendance-recap/internal/config"
	appHTTP "github.com/cmlabs-hris/attendance-recap/internal/handler/http"
	"github.com/cmlabs-hris/attendance-recap/internal/pkg/cron"
)

const version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := appHTTP.NewLogger(os.Stdout, cfg.App.Env, version, cfg.SlogLevel())
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services, err := app.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}
	defer services.Close()

	scheduler := cron.NewScheduler(logger)
	cron.NewRecapJobs(services.Attendance, logger).RegisterJobs(scheduler, cfg.App.RecapInterval)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	attendanceHandler := appHTTP.NewAttendanceHandler(services.Attendance)
	employeeHandler := appHTTP.NewEmployeeHandler(services.Employee)
	dashboardHandler := appHTTP.NewDashboardHandler(services.Dashboard)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AllowedOrigins: cfg.App.AllowedOrigins,
			LogLevel:       cfg.SlogLevel(),
		},
		logger,
		attendanceHandler,
		employeeHandler,
		dashboardHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server running", "addr", server.Addr, "source", cfg.Upstream.SourceType)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
}
