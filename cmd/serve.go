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

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/brackets"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/config"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/handlers"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/repositories"
	api "github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/routes"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/scheduler"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/services"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/storage"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, WebSocket hub and tally scheduler",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func newUploader(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.FileUploader, error) {
	if !cfg.R2Enabled() {
		logger.Warn("Cloudflare R2 is not configured, logo and certificate uploads are disabled")
		return nil, nil
	}
	uploader, err := storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudflare R2 uploader: %w", err)
	}
	logger.Info("Cloudflare R2 uploader initialized")
	return uploader, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	logger, cfg, dbConn, err := bootstrap()
	if err != nil {
		return err
	}
	defer closeDB(logger, dbConn)
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	uploader, err := newUploader(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	wsHub := brackets.NewHub(logger)
	go wsHub.Run()
	logger.Info("WebSocket Hub started")

	userRepo := repositories.NewPostgresUserRepository(dbConn)
	competitionRepo := repositories.NewPostgresCompetitionRepository(dbConn)
	classRepo := repositories.NewPostgresClassRepository(dbConn)
	dojangRepo := repositories.NewPostgresDojangRepository(dbConn)
	athleteRepo := repositories.NewPostgresAthleteRepository(dbConn)
	participantRepo := repositories.NewPostgresParticipantRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	logger.Info("Repositories initialized")

	authService := services.NewAuthService(userRepo)
	competitionService := services.NewCompetitionService(competitionRepo, classRepo, matchRepo)
	medalService := services.NewMedalService(competitionRepo, classRepo, participantRepo, matchRepo, cfg.TallyConcurrency, logger)
	certificateService := services.NewCertificateService(athleteRepo, participantRepo, classRepo, competitionRepo, matchRepo, uploader, logger)
	dojangService := services.NewDojangService(dojangRepo, uploader, logger)
	athleteService := services.NewAthleteService(athleteRepo, dojangRepo, classRepo, participantRepo)
	dashboardService := services.NewDashboardService(dojangRepo, athleteRepo, competitionRepo, participantRepo, matchRepo)
	logger.Info("Services initialized")

	tallyScheduler := scheduler.NewTallyScheduler(competitionService, medalService, wsHub, logger)
	if err := tallyScheduler.Start(cfg.TallyRefreshSpec); err != nil {
		wsHub.Stop()
		return err
	}

	router := chi.NewRouter()
	api.SetupRoutes(router, api.Options{
		JWTSecret:      cfg.JWTSecretKey,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         logger,
	}, api.Handlers{
		Auth:        handlers.NewAuthHandler(authService, cfg.JWTSecretKey),
		Competition: handlers.NewCompetitionHandler(competitionService),
		Medal:       handlers.NewMedalHandler(medalService),
		Dojang:      handlers.NewDojangHandler(dojangService, athleteService),
		Participant: handlers.NewParticipantHandler(athleteService),
		Certificate: handlers.NewCertificateHandler(certificateService, athleteService),
		Dashboard:   handlers.NewDashboardHandler(dashboardService),
		WebSocket:   handlers.NewWebSocketHandler(wsHub, medalService, cfg.CORSAllowedOrigins, logger),
	})
	logger.Info("Routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	defer func() {
		tallyScheduler.Stop()
		wsHub.Stop()
		logger.Info("application exited")
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		logger.Info("server stopped gracefully")
		return nil
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))
	if err := server.Shutdown(shutdownCtx); err != nil {
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("failed to force close server", slog.Any("error", closeErr))
		}
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("server shutdown complete")
	return nil
}
