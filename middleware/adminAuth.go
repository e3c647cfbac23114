package middleware

import (
	"net/http"

	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminAuthMiddleware requires the authenticated account to hold the admin
// role. Must run after JWTAuthMiddleware.
func AdminAuthMiddleware(userSvc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := AuthedEmail(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		isAdmin, err := userSvc.IsAdmin(email)
		if err != nil {
			utils.GetLogger().Error("admin check failed", zap.String("email", email), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}

		c.Next()
	}
}
