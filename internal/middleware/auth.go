package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/auth"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// RequireAuth resolves the bearer token to an explicit caller identity. The
// protocol layer never reads session state: handlers pass the resolved id
// into every service call.
func RequireAuth(m *auth.Manager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		claims, err := m.ParseValidate(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		c.Set(ContextUserID, claims.Sub)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

func RequireRole(role string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if c.GetString(ContextRole) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "wrong role for this operation"})
			return
		}

		c.Next()
	}
}
