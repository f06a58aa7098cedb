// Package main initializes and starts the fakeforge HTTP server, setting up
// configuration, logging, database connections, repositories, services,
// handlers and optional TLS.
package main

import (
	"cmp"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"github.com/atinyakov/fakeforge/internal/config"
	"github.com/atinyakov/fakeforge/internal/db"
	"github.com/atinyakov/fakeforge/internal/faker"
	"github.com/atinyakov/fakeforge/internal/generator"
	"github.com/atinyakov/fakeforge/internal/logger"
	"github.com/atinyakov/fakeforge/internal/repository"
	"github.com/atinyakov/fakeforge/internal/server/handler/http"
	"github.com/atinyakov/fakeforge/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line, config file and environment configuration.
	options, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}
	zapLogger := log.Log

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL connection.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}
	defer postgresDB.Close()

	// Purge soft-deleted models in the background.
	db.StartSoftDeleteCleaner(ctx, postgresDB,
		options.CleanupInterval,
		options.Retention,
		zapLogger,
	)

	// Repositories.
	modelRepo := repository.NewPostgresModelRepository(postgresDB)
	propRepo := repository.NewPostgresPropertyRepository(postgresDB)

	// Fake value provider and generator.
	registry := faker.NewDefault(options.FakerSeed)
	gen := generator.New(registry)
	zapLogger.Info("fake value provider ready", zap.Int("operations", len(registry.Keys())))

	// Business-logic services.
	modelService := service.NewModelService(modelRepo)
	propService := service.NewPropertyService(propRepo, modelRepo, registry)
	genService := service.NewGenerateService(modelRepo, propRepo, gen)

	// Build the router with middleware and routes.
	router := http.NewRouter(
		&http.ModelHandler{ModelService: modelService},
		&http.PropertyHandler{PropertyService: propService},
		&http.GenerateHandler{GenerateService: genService, Catalog: registry},
		zapLogger,
	)

	server := &nethttp.Server{
		Addr:              options.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if options.TLSEnabled() {
		server.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			zapLogger.Error("graceful shutdown failed", zap.Error(err))
		}
	}()

	zapLogger.Info("starting server", zap.String("addr", options.Port), zap.Bool("tls", options.TLSEnabled()))
	if options.TLSEnabled() {
		err = server.ListenAndServeTLS(options.TLSCert, options.TLSKey)
	} else {
		err = server.ListenAndServe()
	}
	if err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
	zapLogger.Info("server stopped")
}
