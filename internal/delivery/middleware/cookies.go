package middleware

import (
	"net/http"
	"time"

	"perkpass/config"
	"perkpass/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	defaultAccessCookie  = "pp_access"
	defaultRefreshCookie = "pp_refresh"
)

// SessionCookies reads and writes the two cookies that carry a session.
type SessionCookies struct {
	accessName  string
	refreshName string
	domain      string
	secure      bool
}

// NewSessionCookies builds the cookie settings from the session config.
func NewSessionCookies(cfg *config.Config) *SessionCookies {
	cookies := &SessionCookies{
		accessName:  defaultAccessCookie,
		refreshName: defaultRefreshCookie,
	}

	if cfg != nil && cfg.Session != nil {
		if cfg.Session.AccessCookie != "" {
			cookies.accessName = cfg.Session.AccessCookie
		}
		if cfg.Session.RefreshCookie != "" {
			cookies.refreshName = cfg.Session.RefreshCookie
		}
		cookies.domain = cfg.Session.Domain
		cookies.secure = cfg.Session.Secure
	}

	return cookies
}

// Read returns the raw token values carried by the request. Missing cookies read as empty.
func (s *SessionCookies) Read(c echo.Context) *usecase.ResolveSessionInput {
	input := &usecase.ResolveSessionInput{}
	if cookie, err := c.Cookie(s.accessName); err == nil {
		input.AccessToken = cookie.Value
	}
	if cookie, err := c.Cookie(s.refreshName); err == nil {
		input.RefreshToken = cookie.Value
	}

	return input
}

// RefreshToken returns the refresh cookie value, or empty.
func (s *SessionCookies) RefreshToken(c echo.Context) string {
	return s.Read(c).RefreshToken
}

// Write sets both cookies on the response.
func (s *SessionCookies) Write(c echo.Context, tokens *usecase.SessionTokens) {
	if tokens == nil {
		return
	}

	c.SetCookie(s.cookie(s.accessName, tokens.AccessToken, tokens.AccessExpiresAt))
	c.SetCookie(s.cookie(s.refreshName, tokens.RefreshToken, tokens.RefreshExpiresAt))
}

// Clear expires both cookies.
func (s *SessionCookies) Clear(c echo.Context) {
	for _, name := range []string{s.accessName, s.refreshName} {
		cookie := s.cookie(name, "", time.Unix(0, 0))
		cookie.MaxAge = -1
		c.SetCookie(cookie)
	}
}

func (s *SessionCookies) cookie(name, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   s.domain,
		Expires:  expires,
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
