package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hevile/prestacao-web/internal/session"
)

// RequireSession guards protected pages: anonymous visitors are redirected
// to the login screen, authenticated ones get their session placed in the
// request context for the page handlers and the backend client.
//
// Only the cookie is checked here. A backend token that has been revoked
// server-side is not detected until a protected call fails.
func RequireSession(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := mgr.Get(c.Request)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Info("Anonymous visitor redirected to login")
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(session.WithContext(c.Request.Context(), s))
		c.Next()
	}
}
