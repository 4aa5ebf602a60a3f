package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/camden-git/metagridexport/config"
	"github.com/camden-git/metagridexport/database"
	"github.com/camden-git/metagridexport/handlers"
	"github.com/camden-git/metagridexport/logging"
	"github.com/camden-git/metagridexport/repository"
	"github.com/camden-git/metagridexport/services"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if envErr != nil {
		logging.Info().Err(envErr).Msg("no .env file loaded")
	}

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	gormDB, err := database.InitGormDB(db)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to initialize GORM")
	}

	gateway := services.NewGateway(
		services.GatewayConfig{APIKey: cfg.APIKey, ExportUser: cfg.ExportUser},
		repository.NewGormTreeRepository(gormDB),
		repository.NewGormSettingsRepository(gormDB),
		services.NewPersonExporter(repository.NewSQLPersonRepository(db, cfg.QueryTimeout)),
	)

	exportHandler := &handlers.ExportHandler{Gateway: gateway, PublicBasePath: cfg.PublicBasePath}
	healthHandler := &handlers.HealthHandler{DB: db}

	router := handlers.NewRouter(handlers.RouterConfig{
		ExportRoute:       cfg.ExportRoute,
		AllowedOrigins:    cfg.AllowedOrigins,
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   cfg.RateLimitWindow,
		RequestTimeout:    cfg.QueryTimeout + 5*time.Second,
	}, exportHandler, healthHandler)

	if cfg.APIKey == "" {
		logging.Warn().Msg("API_KEY is empty, the export is open to everybody")
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.QueryTimeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logging.Info().Str("addr", server.Addr).Str("route", cfg.ExportRoute).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
	logging.Info().Msg("server stopped")
}
