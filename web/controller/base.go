// Package controller provides the HTTP request handlers for the readiness
// panel: authentication, student score endpoints and the admin API.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placementkit/readiness-panel/web/session"
)

// BaseController provides common functionality for all controllers, including
// authentication checks.
type BaseController struct{}

// checkLogin is a middleware that verifies the session and rejects
// unauthenticated requests.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		pureJsonMsg(c, http.StatusUnauthorized, false, "login required")
		c.Abort()
	} else {
		c.Next()
	}
}
