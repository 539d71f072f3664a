// internal/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/storefront-admin/internal/config"
	"github.com/javajoker/storefront-admin/internal/services"
)

const (
	workspaceKey = "workspace"
	sessionKey   = "session_id"
)

// Session attaches the caller's workspace, starting a session and setting
// the cookie when the request carries no live one.
func Session(store *services.SessionStore, cfg config.SessionConfig) gin.HandlerFunc {
	maxAge := int(cfg.IdleDuration().Seconds())

	return func(c *gin.Context) {
		current, _ := c.Cookie(cfg.CookieName)

		id, ws := store.Get(current)
		if id != current {
			c.SetCookie(cfg.CookieName, id, maxAge, "/", "", cfg.CookieSecure, true)
		}

		c.Set(sessionKey, id)
		c.Set(workspaceKey, ws)
		c.Next()
	}
}

func GetWorkspace(c *gin.Context) (*services.Workspace, bool) {
	if ws, exists := c.Get(workspaceKey); exists {
		if workspace, ok := ws.(*services.Workspace); ok {
			return workspace, true
		}
	}
	return nil, false
}

func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
