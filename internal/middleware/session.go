package middleware

import (
	"net/http"

	"github.com/AngeloApolinario/philmarresort/internal/config"
	"github.com/AngeloApolinario/philmarresort/internal/models"
	"github.com/AngeloApolinario/philmarresort/internal/session"
	"github.com/AngeloApolinario/philmarresort/internal/store"

	"github.com/gin-gonic/gin"
)

// context keys
const (
	CtxSession = "session"
	CtxUser    = "currentUser"
)

// SessionLoader resolves the session cookie into a live session and stores
// it in the request context. Missing or expired sessions leave a nil entry;
// the guards decide what that means per route.
func SessionLoader(auth *session.Authority, cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(cfg.CookieName)
		s, err := auth.Lookup(token)
		if err != nil {
			// store unavailable: treat as logged out rather than erroring
			// every page
			s = nil
		}
		if s != nil {
			c.Set(CtxSession, s)
		}
		c.Next()
	}
}

// SetSessionCookie binds a session token to the browser.
func SetSessionCookie(c *gin.Context, cfg config.SessionConfig, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, token, cfg.ExpireHours*3600, "/", "", cfg.Secure, true)
}

// ClearSessionCookie removes the session cookie from the browser.
func ClearSessionCookie(c *gin.Context, cfg config.SessionConfig) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.Secure, true)
}

// Current returns the session stored by SessionLoader, or nil.
func Current(c *gin.Context) *models.Session {
	if v, ok := c.Get(CtxSession); ok {
		if s, ok := v.(*models.Session); ok {
			return s
		}
	}
	return nil
}

// CurrentUser returns the user loaded by RequireUser, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(CtxUser); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}

// RequireUser guards routes behind the user scope. The referenced account is
// re-read on every request; if it no longer exists the session is torn down
// and the browser sent back to login.
func RequireUser(auth *session.Authority, users *store.Users, cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := Current(c)
		if !s.HasUser() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		user, err := users.Get(*s.UserID)
		if err != nil {
			// corrupted session: referenced user is gone
			_ = auth.End(s.Token)
			ClearSessionCookie(c, cfg)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(CtxUser, user)
		c.Next()
	}
}

// RequireAdmin guards routes behind the admin scope.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := Current(c)
		if !s.HasAdmin() {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
