package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/knaeeim/Bangla-Drop-Server/internal/server/http/middleware"
)

// CurrentUserEmail extracts the authenticated email from context. Empty on
// unguarded routes.
func CurrentUserEmail(c *gin.Context) string {
	val, ok := c.Get(middleware.EmailContextKey)
	if !ok {
		return ""
	}
	email, _ := val.(string)
	return email
}
