package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/onurcolak/direct-message-service/environments"
	"github.com/onurcolak/direct-message-service/handlers"
	"github.com/onurcolak/direct-message-service/internal/middlewares"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Send     *handlers.SendHandler
	Scan     *handlers.ScanHandler
	History  *handlers.HistoryHandler
	Settings *handlers.SettingsHandler
	Country  *handlers.CountryHandler
}

// RegisterRoutes registers all API routes with middleware
func RegisterRoutes(e *echo.Echo, h Handlers, cfg *environments.Config) {
	e.GET("/health", h.Health.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Everything under /api/v1 shares one API key
	v1 := e.Group("/api/v1", middlewares.APIKeyAuth(cfg.Auth.APIKey))

	v1.POST("/messages/send", h.Send.SendMessage)
	v1.GET("/templates", h.Country.GetTemplates)

	v1.POST("/scan", h.Scan.Scan)
	v1.POST("/scan/classify", h.Scan.Classify)

	scanner := v1.Group("/scanner")
	scanner.GET("/status", h.Scan.GetScannerStatus)
	scanner.POST("/enable", h.Scan.EnableScanner)
	scanner.POST("/disable", h.Scan.DisableScanner)
	scanner.POST("/flashlight", h.Scan.SetFlashlight)

	v1.GET("/history", h.History.GetHistory)
	v1.DELETE("/history", h.History.ClearHistory)

	v1.GET("/settings", h.Settings.GetSettings)
	v1.PUT("/settings", h.Settings.UpdateSettings)

	v1.GET("/countries", h.Country.GetCountries)
	v1.GET("/countries/default", h.Country.GetDefaultCountry)
	v1.GET("/countries/:iso", h.Country.GetCountry)
}
