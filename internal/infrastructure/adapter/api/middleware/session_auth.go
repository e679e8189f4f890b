package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/dampdigits/stockplay/internal/domain/port/core"
	sessionport "github.com/dampdigits/stockplay/internal/domain/port/session"
)

// usernameKey is the gin context key the resolved username is stored under
const usernameKey = "username"

// SessionAuth middleware resolves the session cookie to a username.
// Requests without a valid session are redirected to the login page.
func SessionAuth(store sessionport.Store, cookieName string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		username, err := store.Resolve(c.Request.Context(), token)
		if err != nil {
			logger.Debug("Session token rejected", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(usernameKey, username)
		c.Next()
	}
}

// CurrentUsername returns the username the session middleware resolved
func CurrentUsername(c *gin.Context) (string, bool) {
	value, exists := c.Get(usernameKey)
	if !exists {
		return "", false
	}
	username, ok := value.(string)
	return username, ok && username != ""
}

// NoCache middleware prevents browsers from caching authenticated pages,
// so portfolio and history are never served stale after logout
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Next()
	}
}
