// Package middleware provides gin middleware for the readiness panel.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placementkit/readiness-panel/web/session"
)

// RequireRole rejects requests whose session account does not carry one of
// the allowed roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool)
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		account := session.GetLoginAccount(c)
		if account == nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if !allowed[account.Role] {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
