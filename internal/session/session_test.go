package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hevile/prestacao-web/internal/core/domain"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager("test-secret", "prestacao_session", ttl, false)
}

func requestWithCookies(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestIssueAndGetRoundTrip(t *testing.T) {
	m := newTestManager(time.Hour)
	rec := httptest.NewRecorder()

	err := m.Issue(rec, Session{Token: "abc123", IsAdmin: true, Role: domain.RoleGestor})
	require.NoError(t, err)

	got, err := m.Get(requestWithCookies(t, rec))
	require.NoError(t, err)
	assert.Equal(t, "abc123", got.Token)
	assert.True(t, got.IsAdmin)
	assert.Equal(t, domain.RoleGestor, got.Role)
}

func TestGetWithoutCookie(t *testing.T) {
	m := newTestManager(time.Hour)
	_, err := m.Get(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestGetRejectsTamperedCookie(t *testing.T) {
	m := newTestManager(time.Hour)
	rec := httptest.NewRecorder()
	require.NoError(t, m.Issue(rec, Session{Token: "abc123"}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	cookie := rec.Result().Cookies()[0]
	cookie.Value += "x"
	req.AddCookie(cookie)

	_, err := m.Get(req)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestGetRejectsForeignSignature(t *testing.T) {
	other := NewManager("another-secret", "prestacao_session", time.Hour, false)
	rec := httptest.NewRecorder()
	require.NoError(t, other.Issue(rec, Session{Token: "abc123"}))

	_, err := newTestManager(time.Hour).Get(requestWithCookies(t, rec))
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestGetRejectsExpiredSession(t *testing.T) {
	m := newTestManager(-time.Minute)
	rec := httptest.NewRecorder()
	require.NoError(t, m.Issue(rec, Session{Token: "abc123"}))

	_, err := m.Get(requestWithCookies(t, rec))
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestClearExpiresCookie(t *testing.T) {
	m := newTestManager(time.Hour)
	rec := httptest.NewRecorder()
	m.Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "prestacao_session", cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}
