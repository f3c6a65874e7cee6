package middleware

import (
	"context"
	"strings"

	userRepo "github.com/itssanjain-collab/surgery-hub-connect/database/repository/user"
	"github.com/itssanjain-collab/surgery-hub-connect/utils"

	"github.com/gin-gonic/gin"
)

// OptionalAuthMiddleware attaches the user id when a valid bearer token is
// present and lets the request through anonymously otherwise. Used where an
// endpoint serves both signed-in and anonymous callers.
func OptionalAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.Next()
			return
		}

		computedHash := utils.HashToken(tokenString)
		ctx := context.Background()

		if authCache := utils.GetAuthCacheClient(); authCache != nil {
			cachedHash, err := authCache.Get(ctx, utils.AuthCachePrefix+userID).Result()
			if err == nil && cachedHash == computedHash {
				c.Set("userID", userID)
				c.Next()
				return
			}
		}

		if usr, err := repo.GetByID(userID); err == nil && usr != nil && usr.TokenHash == computedHash {
			c.Set("userID", userID)
		}
		c.Next()
	}
}
