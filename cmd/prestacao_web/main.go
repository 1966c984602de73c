package main

import (
	"html/template"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/hevile/prestacao-web/internal/adapters/backend"
	portssvc "github.com/hevile/prestacao-web/internal/core/ports/services"
	"github.com/hevile/prestacao-web/internal/dto"
	"github.com/hevile/prestacao-web/internal/handlers"
	"github.com/hevile/prestacao-web/internal/middleware"
	"github.com/hevile/prestacao-web/internal/platform/config"
	"github.com/hevile/prestacao-web/internal/session"
	"github.com/hevile/prestacao-web/internal/utils"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	dto.RegisterValidations()

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.SetFuncMap(template.FuncMap{
		"formatBRL":   utils.FormatBRL,
		"formatData":  utils.FormatData,
		"formatCargo": utils.FormatCargo,
	})
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "web/static")

	// One REST client implements every service port; the backend stays the
	// single source of truth for balances, statuses and authorization.
	client := backend.NewClient(cfg.BackendBaseURL)
	services := &portssvc.ServiceContainer{
		Auth:         client,
		User:         client,
		Departamento: client,
		Viagem:       client,
		Despesa:      client,
		Adiantamento: client,
	}

	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionCookieName, cfg.SessionTTL, cfg.IsProduction)

	handlers.RegisterRoutes(r, cfg, sessions, services)

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("backend", cfg.BackendBaseURL),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
