package middlewares

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"velomart-backend/helpers"
	"velomart-backend/models"
	"velomart-backend/store"
)

// UserIDKey is the gin context key under which RequireSignIn stores the
// authenticated user's id.
const UserIDKey = "userID"

// RequireSignIn verifies the Authorization token and stashes the user id
// in the request context. Clients may send the token bare or with a
// "Bearer " prefix.
func RequireSignIn(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized",
			})
			return
		}

		userID, err := helpers.ParseToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized",
			})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// RequireAdmin loads the signed-in user and requires the admin role.
// Must run after RequireSignIn.
func RequireAdmin(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		user, err := users.GetByID(ctx, c.GetString(UserIDKey))
		if err != nil || user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "UnAuthorized Access",
			})
			return
		}
		c.Next()
	}
}
