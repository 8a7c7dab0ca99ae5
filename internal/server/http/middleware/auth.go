package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/knaeeim/Bangla-Drop-Server/internal/adapter/fireauth"
)

// EmailContextKey is a gin context key for the authenticated user email.
const EmailContextKey = "userEmail"

// AuthRequired verifies the bearer token before the handler runs. A missing
// or empty token short-circuits with 401 before any verifier call; a token
// the verifier rejects yields 403.
func AuthRequired(verifier fireauth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			return
		}

		token := extractToken(header)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
			return
		}

		c.Set(EmailContextKey, identity.Email)
		c.Next()
	}
}

func extractToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
