package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/hevile/prestacao-web/internal/core/ports/services"
	"github.com/hevile/prestacao-web/internal/dto"
	"github.com/hevile/prestacao-web/internal/middleware"
	"github.com/hevile/prestacao-web/internal/session"
)

// msgLoginInvalido is shown for every login failure: wrong credentials and
// unreachable backend render the same message on purpose.
const msgLoginInvalido = "Usuário ou senha inválidos."

// loginHandler handles the login screen and session lifecycle.
type loginHandler struct {
	auth     portssvc.AuthSvc
	users    portssvc.UserReaderSvc
	sessions *session.Manager
}

func newLoginHandler(auth portssvc.AuthSvc, users portssvc.UserReaderSvc, sessions *session.Manager) *loginHandler {
	return &loginHandler{auth: auth, users: users, sessions: sessions}
}

// registerLoginRoutes sets up the public auth routes.
func registerLoginRoutes(r *gin.Engine, sessions *session.Manager, auth portssvc.AuthSvc, users portssvc.UserReaderSvc) {
	h := newLoginHandler(auth, users, sessions)

	// 5 login attempts per minute per IP.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	loginLimiter := limiter.New(memory.NewStore(), rate)

	r.GET("/login", h.showLogin)
	r.POST("/login", middleware.RateLimit(loginLimiter), h.login)
	r.POST("/logout", h.logout)
}

func (h *loginHandler) showLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", dto.LoginPage{})
}

// login exchanges the posted credentials for a backend token, then fetches
// the profile to learn the admin flag and role before issuing the session.
// The landing page depends only on the superuser flag.
func (h *loginHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", dto.LoginPage{Error: msgLoginInvalido})
		return
	}

	token, err := h.auth.ObtainToken(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger.Warn("Login failed", slog.String("username", req.Username), slog.String("error", err.Error()))
		c.HTML(http.StatusUnauthorized, "login.html", dto.LoginPage{Error: msgLoginInvalido})
		return
	}

	// The fresh token is not in a cookie yet, so hand it to the backend
	// client through the context.
	authedCtx := session.WithContext(c.Request.Context(), session.Session{Token: token})
	me, err := h.users.Me(authedCtx)
	if err != nil {
		logger.Error("Failed to fetch profile after login", slog.String("error", err.Error()))
		c.HTML(http.StatusUnauthorized, "login.html", dto.LoginPage{Error: msgLoginInvalido})
		return
	}

	s := session.Session{Token: token, IsAdmin: me.IsSuperuser, Role: me.Tipo()}
	if err := h.sessions.Issue(c.Writer, s); err != nil {
		logger.Error("Failed to issue session cookie", slog.String("error", err.Error()))
		c.HTML(http.StatusInternalServerError, "login.html", dto.LoginPage{Error: msgLoginInvalido})
		return
	}

	logger.Info("Login succeeded", slog.Bool("is_admin", me.IsSuperuser))
	if me.IsSuperuser {
		c.Redirect(http.StatusSeeOther, "/admin/viagens")
		return
	}
	c.Redirect(http.StatusSeeOther, "/despesas")
}

// logout clears the session cookie and returns to the login screen.
func (h *loginHandler) logout(c *gin.Context) {
	h.sessions.Clear(c.Writer)
	c.Redirect(http.StatusSeeOther, "/login")
}
