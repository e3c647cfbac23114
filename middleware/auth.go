package middleware

import (
	"net/http"
	"strings"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// EmailContextKey is the gin context key carrying the authenticated email.
const EmailContextKey = "email"

// JWTAuthMiddleware guards routes with a bearer token. A missing token is
// Unauthorized; a token that fails verification is Forbidden.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}

		c.Set(EmailContextKey, email)
		c.Next()
	}
}

// AuthedEmail returns the authenticated email set by JWTAuthMiddleware.
func AuthedEmail(c *gin.Context) string {
	return c.GetString(EmailContextKey)
}
