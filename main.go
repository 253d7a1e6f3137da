package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/onurcolak/direct-message-service/environments"
	"github.com/onurcolak/direct-message-service/handlers"
	"github.com/onurcolak/direct-message-service/internal/domain"
	"github.com/onurcolak/direct-message-service/internal/history"
	"github.com/onurcolak/direct-message-service/internal/middlewares"
	"github.com/onurcolak/direct-message-service/internal/phone"
	"github.com/onurcolak/direct-message-service/internal/qr"
	"github.com/onurcolak/direct-message-service/internal/service"
	"github.com/onurcolak/direct-message-service/internal/settings"
	"github.com/onurcolak/direct-message-service/internal/storage"
	"github.com/onurcolak/direct-message-service/pkg/locale"
	"github.com/onurcolak/direct-message-service/pkg/logger"
	"github.com/onurcolak/direct-message-service/pkg/opener"
	"github.com/onurcolak/direct-message-service/pkg/validator"
	"github.com/onurcolak/direct-message-service/routes"

	_ "github.com/onurcolak/direct-message-service/docs" // swagger docs
)

// @title Direct Message Service API
// @version 1.0
// @description Open chats with unsaved numbers and act on scanned QR codes
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email onur.colak@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @schemes http https
func main() {
	// Load config
	cfg := environments.Load()

	logger.Init(cfg.Log.Level)

	// Hard-fail if required secrets are missing
	if cfg.Auth.APIKey == "" {
		logger.Fatalf("API_KEY is required but not set")
	}

	logger.Infof("Starting Direct Message Service...")

	store, backend := storage.Open(cfg)

	openerClient := opener.NewOpenerClient(cfg.Opener)
	logger.Infof("URL opener configured: %s", openerClient.GetURL())

	// A nil *Detector must not end up inside the interface
	countries := service.NewCountryService(domain.Countries(), nil)
	if detector := locale.NewDetector(cfg.Locale); detector != nil {
		countries = service.NewCountryService(domain.Countries(), detector)
	}

	historyStore := history.NewStore(store, cfg.History.MaxSize)
	settingsStore := settings.NewStore(store)
	gate := qr.NewGate(cfg.Scan.Cooldown)

	sendService := service.NewSendService(
		phone.NewNormalizer(phone.LibValidator{}),
		openerClient,
		historyStore,
		cfg.History,
	)
	scanService := service.NewScanService(
		qr.NewClassifier(domain.Countries()),
		gate,
		openerClient,
		historyStore,
	)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			middlewares.APIKeyHeader,
		},
	}))

	// Setup routes
	routes.RegisterRoutes(e, routes.Handlers{
		Health:   handlers.NewHealthHandler(backend, store, openerClient),
		Send:     handlers.NewSendHandler(sendService),
		Scan:     handlers.NewScanHandler(scanService, gate),
		History:  handlers.NewHistoryHandler(historyStore),
		Settings: handlers.NewSettingsHandler(settingsStore),
		Country:  handlers.NewCountryHandler(countries),
	}, cfg)

	// Start server in goroutine
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Infof("Server starting on http://localhost%s", addr)
		logger.Infof("Swagger docs available at http://localhost%s/swagger/index.html", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("Shutting down gracefully...")

	// Shutdown HTTP server (with timeout)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	logger.Infof("Shutting down HTTP server...")
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	} else {
		logger.Infof("HTTP server stopped successfully")
	}

	logger.Infof("Closing %s storage...", backend)
	if err := store.Close(); err != nil {
		logger.Errorf("Error closing storage: %v", err)
	}

	logger.Infof("Graceful shutdown completed")
}
