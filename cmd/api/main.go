package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httphandlers "github.com/rafabene/sheetsync-backend/internal/handlers/http"
	"github.com/rafabene/sheetsync-backend/internal/infrastructure/config"
	"github.com/rafabene/sheetsync-backend/internal/infrastructure/i18n"
	"github.com/rafabene/sheetsync-backend/internal/infrastructure/logging"
	"github.com/rafabene/sheetsync-backend/internal/infrastructure/oauth"
	"github.com/rafabene/sheetsync-backend/internal/infrastructure/persistence/mongodb"
	"github.com/rafabene/sheetsync-backend/internal/infrastructure/sheets"
	"github.com/rafabene/sheetsync-backend/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting sheetsync backend",
		"env", cfg.Env,
		"version", "1.0.0",
	)

	// Conectar ao MongoDB (cria os índices únicos de email)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := mongodb.NewDatabase(ctx, &cfg.Mongo, logger)
	cancel()
	if err != nil {
		logger.Error("failed to connect to mongodb", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := mongodb.NewUserRepository(db)
	operatorRepo := mongodb.NewOperatorRepository(db)

	// Inicializar gateways externos
	identityProvider := oauth.NewGoogleProvider(&cfg.OAuth)
	sheetsClient := sheets.NewClient(logger)

	// Inicializar services
	authService := services.NewAuthService(operatorRepo, identityProvider, cfg.Session.Secret, cfg.Session.Expiry, logger)
	userService := services.NewUserService(userRepo, logger)
	syncService := services.NewSyncService(userRepo, authService, sheetsClient, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService)
	userHandler := httphandlers.NewUserHandler(userService)
	syncHandler := httphandlers.NewSyncHandler(syncService)

	router := httphandlers.NewRouter(
		httphandlers.RouterConfig{
			Env:            cfg.Env,
			BaseURL:        cfg.Server.BaseURL,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		i18nService,
		authService,
		authHandler,
		userHandler,
		syncHandler,
	)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if err := db.Close(shutdownCtx); err != nil {
		logger.Error("failed to close mongodb connection", "error", err)
	}

	logger.Info("server exited")
}
