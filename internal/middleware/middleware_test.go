package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testKey   = []byte("signing-key")
	testStore = sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
)

func withCookies(r *http.Request, rec *httptest.ResponseRecorder) *http.Request {
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestSignInRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, SignIn(rec, httptest.NewRequest(http.MethodPost, "/", nil), testStore, testKey, "u-123", "a@b.com", "candidate"))

	req := withCookies(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	claims, err := GetUserFromJWT(req, testStore, testKey)
	require.NoError(t, err)
	assert.Equal(t, "u-123", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "candidate", claims.Role)
	assert.True(t, IsSignedOn(req, testStore, testKey))

	_, err = GetUserFromJWT(req, testStore, []byte("other-key"))
	assert.Error(t, err)
	assert.False(t, IsSignedOn(httptest.NewRequest(http.MethodGet, "/", nil), testStore, testKey))
}

func TestPendingRegistration(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, SetPendingRegistration(rec, httptest.NewRequest(http.MethodPost, "/", nil), testStore, "tok"))

	req := withCookies(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	token, ok := GetPendingRegistration(req, testStore)
	assert.True(t, ok)
	assert.Equal(t, "tok", token)

	// signing in consumes the pending registration
	rec2 := httptest.NewRecorder()
	require.NoError(t, SignIn(rec2, req, testStore, testKey, "u-1", "a@b.com", "company"))
	_, ok = GetPendingRegistration(withCookies(httptest.NewRequest(http.MethodGet, "/", nil), rec2), testStore)
	assert.False(t, ok)
}

func TestUserAuthenticatedMiddleware(t *testing.T) {
	called := false
	h := UserAuthenticatedMiddleware(testStore, testKey, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/api/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sessão expirada")
	assert.False(t, called)

	signIn := httptest.NewRecorder()
	require.NoError(t, SignIn(signIn, httptest.NewRequest(http.MethodPost, "/", nil), testStore, testKey, "u-1", "a@b.com", "candidate"))
	rec = httptest.NewRecorder()
	h(rec, withCookies(httptest.NewRequest(http.MethodGet, "/api/me", nil), signIn))
	assert.True(t, called)
}

func TestHeadersMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	HeadersMiddleware(ok, "prod").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "deny", rec.Header().Get("X-Frame-Options"))

	rec = httptest.NewRecorder()
	HeadersMiddleware(ok, "dev").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, rec.Header().Get("X-Frame-Options"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 HeadlessChrome/90")
	rec = httptest.NewRecorder()
	HeadersMiddleware(ok, "prod").ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestHTTPSMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	HTTPSMiddleware(ok, "prod").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://jobmoz.co.mz/rss?x=1", nil))
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "https://jobmoz.co.mz/rss?x=1", rec.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "http://jobmoz.co.mz/rss", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rec = httptest.NewRecorder()
	HTTPSMiddleware(ok, "prod").ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoggingMiddleware(t *testing.T) {
	buf := &bytes.Buffer{}
	h := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}), zerolog.New(buf))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/jobs", nil))
	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"method":"GET"`)
}
