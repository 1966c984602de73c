package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/hevile/prestacao-web/internal/core/ports/services"
	"github.com/hevile/prestacao-web/internal/middleware"
	"github.com/hevile/prestacao-web/internal/platform/config"
	"github.com/hevile/prestacao-web/internal/session"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	sessions *session.Manager,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public routes: login (rate limited) and logout.
	registerLoginRoutes(r, sessions, services.Auth, services.User)

	// Every page below requires a session; the guard redirects anonymous
	// visitors to /login and feeds the session to the backend client.
	pages := r.Group("/", middleware.RequireSession(sessions))

	pages.GET("", rootRedirect)

	registerPerfilRoutes(pages, services.User, services.Despesa)
	registerViagemRoutes(pages, services.User, services.Viagem, services.Despesa)
	registerDepositoRoutes(pages, services.Viagem, services.Adiantamento)
	registerAdminRoutes(pages, services.User, services.Departamento)
}
