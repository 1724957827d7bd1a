package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/commonhall/commonhall/internal/community/http"
	"github.com/commonhall/commonhall/internal/community/service"
	"github.com/commonhall/commonhall/internal/community/store"
	"github.com/commonhall/commonhall/internal/community/store/drivers/sqlite"
	"github.com/commonhall/commonhall/pkg/jwtx"
	"github.com/commonhall/commonhall/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the community service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	keys     *jwtx.KeySet
	verifier jwtx.Verifier

	// Services
	profileService      *service.ProfileService
	buildingService     *service.BuildingService
	verificationService *service.VerificationService
	postService         *service.PostService
	interactionService  *service.InteractionService
	reconcileService    *service.ReconcileService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "community-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	// Load the identity provider's verification keys
	if err := app.initVerifier(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start counter reconciliation
	app.reconcileService.Start()

	app.logger.Info("community service starting",
		"port", app.cfg.Port, "version", BuildVersion, "policy", app.cfg.ApprovalPolicy)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down community service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the reconciler
	app.reconcileService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("community service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initVerifier loads the identity provider's JWKS and builds the token
// verifier for the configured algorithm.
func (app *Application) initVerifier() error {
	if app.cfg.JWKSSource == "" {
		return fmt.Errorf("COMMUNITY_JWKS_SOURCE is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	keys, err := jwtx.LoadKeySet(ctx, app.cfg.JWKSSource)
	if err != nil {
		return fmt.Errorf("failed to load identity provider keys: %w", err)
	}
	app.keys = keys

	switch app.cfg.Algorithm {
	case "RS256":
		app.verifier = jwtx.NewCommonRS256(keys, app.cfg.Issuer, app.cfg.Audience)
	case "ES256":
		app.verifier = jwtx.NewCommonES256(keys, app.cfg.Issuer, app.cfg.Audience)
	default:
		app.verifier = jwtx.NewCommonEdDSA(keys, app.cfg.Issuer, app.cfg.Audience)
	}

	app.logger.Info("identity provider keys loaded", "algorithm", app.cfg.Algorithm)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.profileService = &service.ProfileService{Store: app.db}
	app.buildingService = &service.BuildingService{Store: app.db}
	app.verificationService = &service.VerificationService{
		Store:  app.db,
		Policy: app.cfg.ApprovalPolicy,
	}
	app.postService = &service.PostService{Store: app.db}
	app.interactionService = &service.InteractionService{Store: app.db}

	app.reconcileService = service.NewReconcileService(
		app.db,
		app.logger,
		app.cfg.ReconcileInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys,
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.ProfileService = app.profileService
	router.BuildingService = app.buildingService
	router.VerificationService = app.verificationService
	router.PostService = app.postService
	router.InteractionService = app.interactionService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
