// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	appConfig "github.com/pitchside/league/internal/config"
	"github.com/pitchside/league/internal/database"
	"github.com/pitchside/league/internal/database/migrate"
	"github.com/pitchside/league/internal/health"
	joinrequestRouter "github.com/pitchside/league/internal/joinrequest/router"
	"github.com/pitchside/league/internal/middleware"
	"github.com/pitchside/league/internal/notification"
	rosterRouter "github.com/pitchside/league/internal/roster/router"
	statisticsRouter "github.com/pitchside/league/internal/statistics/router"
	teamRouter "github.com/pitchside/league/internal/team/router"
	"github.com/pitchside/league/pkg/logger"
)

func main() {
	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	db, err := database.New()
	if err != nil {
		zapLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			zapLogger.Warnw("failed to close database", "error", closeErr)
		}
	}()

	if err := migrate.Migrate(db); err != nil {
		zapLogger.Fatalw("failed to apply migrations", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(zapLogger))
	r.Use(middleware.Logger(zapLogger))

	dispatcher := notification.NewDispatcher(notification.NewLogNotifier(zapLogger), zapLogger)

	healthHandler := health.New(db, zapLogger)
	r.GET("/health", healthHandler.Check)

	teamRouter.RegisterRoutes(r, db, zapLogger)
	rosterRouter.RegisterRoutes(r, db, zapLogger, dispatcher)
	joinrequestRouter.RegisterRoutes(r, db, zapLogger, dispatcher)
	statisticsRouter.RegisterRoutes(r, db, zapLogger)

	server := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zapLogger.Infow("starting server", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatalw("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLogger.Infow("shutting down", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Warnw("forced shutdown", "error", err)
	}

	// Let in-flight notifications finish before the process exits.
	dispatcher.Wait()
}
