package auth

import (
	"net/http"
	"time"

	"github.com/devhub/backend/internal/server/config"
)

// SessionCookieName is the name of the session token cookie.
const SessionCookieName = "token"

// CookieConfig holds the session cookie scope attributes. It is built once
// at process start; the set and clear cookies must carry identical scope
// attributes or browsers will refuse to clear the cookie on logout.
type CookieConfig struct {
	Domain   string
	Path     string
	Secure   bool
	SameSite http.SameSite
	MaxAge   time.Duration
}

// NewCookieConfig derives the cookie attributes from the server config.
// Cross-origin deployments need SameSite=None, which browsers only accept
// together with Secure; local development keeps Lax over plain HTTP.
func NewCookieConfig(cfg *config.Config) CookieConfig {
	sameSite := http.SameSiteLaxMode
	if cfg.CookieSecure {
		sameSite = http.SameSiteNoneMode
	}
	return CookieConfig{
		Domain:   cfg.CookieDomain,
		Path:     "/",
		Secure:   cfg.CookieSecure,
		SameSite: sameSite,
		MaxAge:   cfg.TokenValidityDuration,
	}
}

// SessionCookie builds the http-only cookie carrying the session token.
func (c CookieConfig) SessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Domain:   c.Domain,
		Path:     c.Path,
		MaxAge:   int(c.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	}
}

// ExpiredCookie builds a cookie with matching scope attributes and an
// already-elapsed lifetime, instructing the client to drop the session.
func (c CookieConfig) ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Domain:   c.Domain,
		Path:     c.Path,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	}
}
