// Package session keeps the three flags the application persists between
// page loads: the backend API token, the admin flag and the role label.
// They live in a single HMAC-signed cookie; everything else is re-fetched
// from the backend on every render.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hevile/prestacao-web/internal/core/domain"
)

// ErrNoSession is returned by Get when no valid session cookie is present.
var ErrNoSession = errors.New("no session")

// Session holds the authenticated state of a visitor. IsAdmin and Role are
// only meaningful when Token is non-empty.
type Session struct {
	Token   string
	IsAdmin bool
	Role    domain.Role
}

type sessionClaims struct {
	Token   string      `json:"tok"`
	IsAdmin bool        `json:"adm"`
	Role    domain.Role `json:"tipo,omitempty"`
	jwt.RegisteredClaims
}

// Manager signs sessions into a cookie and reads them back. It is injected
// into the route guard and the backend client wiring so tests can substitute
// their own instance.
type Manager struct {
	secret     []byte
	cookieName string
	ttl        time.Duration
	secure     bool
}

// NewManager builds a Manager. secure controls the cookie's Secure flag and
// should be true in production.
func NewManager(secret, cookieName string, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		secret:     []byte(secret),
		cookieName: cookieName,
		ttl:        ttl,
		secure:     secure,
	}
}

// Issue writes s to the response as a signed cookie.
func (m *Manager) Issue(w http.ResponseWriter, s Session) error {
	now := time.Now()
	claims := sessionClaims{
		Token:   s.Token,
		IsAdmin: s.IsAdmin,
		Role:    s.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "prestacao-web",
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Get reads and verifies the session cookie. A missing, expired or tampered
// cookie yields ErrNoSession; an expired backend token inside a valid cookie
// is NOT detected here and only surfaces when a protected call fails.
func (m *Manager) Get(r *http.Request) (Session, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return Session{}, ErrNoSession
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid || claims.Token == "" {
		return Session{}, ErrNoSession
	}

	return Session{Token: claims.Token, IsAdmin: claims.IsAdmin, Role: claims.Role}, nil
}

// Clear expires the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
