package middlewares

import (
	"net/http"
	"strings"

	"github.com/abeercodezyra-ops/Nutrivision-AI/config"
	"github.com/abeercodezyra-ops/Nutrivision-AI/models"
	"github.com/abeercodezyra-ops/Nutrivision-AI/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates a bearer token and sets "userID" (uint) and
// "email" in the context. Tokens without a userId claim are resolved by
// email; unknown emails get a user row auto-provisioned so first-time
// callers from the identity service can log meals immediately.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		userID, email, ok := resolveIdentity(claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token carries no usable identity"})
			return
		}

		c.Set("userID", userID)
		c.Set("email", email)
		c.Next()
	}
}

// OptionalAuthMiddleware sets the same keys when a valid token is present
// but never rejects the request. Anonymous callers proceed with userID 0.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			if claims, err := utils.ParseToken(strings.TrimPrefix(authHeader, "Bearer ")); err == nil {
				if userID, email, ok := resolveIdentity(claims); ok {
					c.Set("userID", userID)
					c.Set("email", email)
				}
			}
		}
		c.Next()
	}
}

func resolveIdentity(claims jwt.MapClaims) (uint, string, bool) {
	email, _ := claims["email"].(string)

	if v, ok := claims["userId"]; ok {
		if id, ok := v.(float64); ok && id > 0 {
			return uint(id), email, true
		}
	}

	if email == "" {
		return 0, "", false
	}

	var user models.User
	if err := config.DB.Where(models.User{Email: email}).FirstOrCreate(&user).Error; err != nil {
		return 0, "", false
	}
	return user.ID, email, true
}
