package middleware

import (
	"net/http"
	"strings"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	SessionName     = "____jm"
	sessionJWTKey   = "jwt"
	sessionPending  = "pending"
	jwtIssuer       = "https://jobmoz.co.mz"
	jwtLifetimeDays = 30
)

func HTTPSMiddleware(next http.Handler, env string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if env != "dev" && r.Header.Get("X-Forwarded-Proto") != "https" {
			target := "https://" + r.Host + r.URL.RequestURI()
			http.Redirect(w, r, target, http.StatusMovedPermanently)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func LoggingMiddleware(next http.Handler, logger zerolog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info().
			Str("host", r.Host).
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", rec.status).
			Dur("latency", time.Since(start)).
			Str("x-forwarded-for", r.Header.Get("x-forwarded-for")).
			Msg("req")
	})
}

func HeadersMiddleware(next http.Handler, env string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if env != "dev" {
			// filter out HeadlessChrome user agent
			if strings.Contains(r.Header.Get("User-Agent"), "HeadlessChrome") {
				w.WriteHeader(http.StatusTeapot)
				return
			}
			w.Header().Set("Content-Security-Policy", "upgrade-insecure-requests")
			w.Header().Set("X-Frame-Options", "deny")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			w.Header().Set("Referrer-Policy", "origin")
		}
		next.ServeHTTP(w, r)
	})
}

type UserJWT struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	jwt.StandardClaims
}

// SignIn stores a signed token for the user in the session cookie.
func SignIn(w http.ResponseWriter, r *http.Request, sessionStore sessions.Store, jwtKey []byte, userID, email, role string) error {
	sess, err := sessionStore.Get(r, SessionName)
	if err != nil && sess == nil {
		return errors.Wrap(err, "unable to get session")
	}
	now := time.Now().UTC()
	claims := UserJWT{
		UserID:    userID,
		Email:     email,
		Role:      role,
		CreatedAt: now,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(jwtLifetimeDays * 24 * time.Hour).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    jwtIssuer,
		},
	}
	ss, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtKey)
	if err != nil {
		return errors.Wrap(err, "unable to sign jwt")
	}
	sess.Values[sessionJWTKey] = ss
	delete(sess.Values, sessionPending)
	return errors.Wrap(sess.Save(r, w), "unable to save jwt into session cookie")
}

// SignOut expires the session cookie.
func SignOut(w http.ResponseWriter, r *http.Request, sessionStore sessions.Store) error {
	sess, err := sessionStore.Get(r, SessionName)
	if err != nil && sess == nil {
		return errors.Wrap(err, "unable to get session")
	}
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// SetPendingRegistration remembers which registration awaits a code.
func SetPendingRegistration(w http.ResponseWriter, r *http.Request, sessionStore sessions.Store, token string) error {
	sess, err := sessionStore.Get(r, SessionName)
	if err != nil && sess == nil {
		return errors.Wrap(err, "unable to get session")
	}
	sess.Values[sessionPending] = token
	return sess.Save(r, w)
}

func GetPendingRegistration(r *http.Request, sessionStore sessions.Store) (string, bool) {
	sess, err := sessionStore.Get(r, SessionName)
	if err != nil {
		return "", false
	}
	token, ok := sess.Values[sessionPending].(string)
	return token, ok && token != ""
}

func GetUserFromJWT(r *http.Request, sessionStore sessions.Store, jwtKey []byte) (*UserJWT, error) {
	sess, err := sessionStore.Get(r, SessionName)
	if err != nil {
		return nil, errors.New("could not find cookie")
	}
	tk, ok := sess.Values[sessionJWTKey].(string)
	if !ok {
		return nil, errors.New("could not find jwt in session")
	}
	token, err := jwt.ParseWithClaims(tk, &UserJWT{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return jwtKey, nil
	})
	if err != nil || token == nil || !token.Valid {
		return nil, errors.New("token is invalid or expired")
	}
	claims, ok := token.Claims.(*UserJWT)
	if !ok || claims.UserID == "" {
		return nil, errors.New("could not convert jwt claims to UserJWT")
	}
	return claims, nil
}

func UserAuthenticatedMiddleware(sessionStore sessions.Store, jwtKey []byte, next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := GetUserFromJWT(r, sessionStore, jwtKey); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"Sessão expirada. Inicie sessão novamente."}`))
			return
		}
		next(w, r)
	})
}

func IsSignedOn(r *http.Request, sessionStore sessions.Store, jwtKey []byte) bool {
	_, err := GetUserFromJWT(r, sessionStore, jwtKey)
	return err == nil
}
