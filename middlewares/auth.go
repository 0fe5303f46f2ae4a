package middlewares

import (
	"net/http"
	"strings"

	"github.com/smithbhavsar/ChatpataAI/entity"
	"github.com/smithbhavsar/ChatpataAI/pkg/resp"
	"github.com/smithbhavsar/ChatpataAI/store"

	"github.com/gin-gonic/gin"
)

// Decision is the routing guard's verdict for a requested view.
type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectHome
)

// Authorize gates a view given the restored identity. No identity sends
// the visitor to login; an identity whose role is outside a non-empty
// allow-list goes home. An empty allow-list admits any authenticated role
// (every call site in routes passes an explicit list).
func Authorize(identity *entity.Customer, allowed []entity.Role) Decision {
	if identity == nil {
		return RedirectLogin
	}
	if len(allowed) > 0 && !identity.Role.In(allowed) {
		return RedirectHome
	}
	return Allow
}

// AuthMiddleware restores the session behind the bearer token and applies
// the routing guard. Browser navigations get a 302 to the login page or
// home; JSON clients get the matching status code.
func AuthMiddleware(sessions *store.SessionStore, requiredRoles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)

		identity, err := sessions.Restore(token)
		if err != nil {
			resp.ServerError(c, err)
			c.Abort()
			return
		}

		switch Authorize(identity, requiredRoles) {
		case RedirectLogin:
			deny(c, "/login", http.StatusUnauthorized, "login required")
			return
		case RedirectHome:
			deny(c, "/", http.StatusForbidden, "forbidden")
			return
		}

		c.Set("customerId", identity.ID)
		c.Set("role", identity.Role)
		c.Set("identity", identity)
		c.Set("token", token)
		c.Next()
	}
}

// bearerToken reads the Authorization header, falling back to the token
// query parameter for websocket upgrades (browsers cannot set headers
// there).
func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return c.Query("token")
}

func deny(c *gin.Context, target string, status int, msg string) {
	if wantsJSON(c) {
		c.JSON(status, gin.H{"ok": false, "error": msg, "redirect": target})
		c.Abort()
		return
	}
	c.Redirect(http.StatusFound, target)
	c.Abort()
}

func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json") ||
		c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}
