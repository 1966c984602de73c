package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hevile/prestacao-web/internal/session"
)

// rootRedirect sends the authenticated visitor to their landing page. The
// rule is static on the admin flag and never inspects non-admin roles.
func rootRedirect(c *gin.Context) {
	s, _ := session.FromContext(c.Request.Context())
	if s.IsAdmin {
		c.Redirect(http.StatusFound, "/admin/viagens")
		return
	}
	c.Redirect(http.StatusFound, "/despesas")
}
