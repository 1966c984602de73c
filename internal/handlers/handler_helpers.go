package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hevile/prestacao-web/internal/apperrors"
)

// redirectIfUnauthenticated sends the visitor back to the login screen when
// the backend rejected the stored token. The cookie may still verify, the
// token inside it is what went stale.
func redirectIfUnauthenticated(c *gin.Context, err error) bool {
	if !errors.Is(err, apperrors.ErrUnauthenticated) {
		return false
	}
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
	return true
}
