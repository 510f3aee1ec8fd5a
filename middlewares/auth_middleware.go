// middlewares/auth_middleware.go
package middlewares

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/AlexHerbertGit/Kobra-Kai-Web-Application/config"
	"github.com/AlexHerbertGit/Kobra-Kai-Web-Application/models"
	"github.com/AlexHerbertGit/Kobra-Kai-Web-Application/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware resolves the bearer token to an account and stores
// userID and role in the request context. Any resolution failure is a 401;
// role checks are RequireRole's job and yield 403.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		secret := []byte(os.Getenv("JWT_SECRET"))
		if len(secret) == 0 {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured: JWT_SECRET not set"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}

		var user models.User
		if sub, _ := claims["sub"].(string); sub != "" {
			id, convErr := strconv.ParseUint(sub, 10, 64)
			if convErr != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid subject claim"})
				return
			}
			if err := config.DB.First(&user, uint(id)).Error; err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
				return
			}
		} else {
			// older tokens carry only the email claim
			email, _ := claims["email"].(string)
			if email == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "subject claim missing"})
				return
			}
			if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
				return
			}
		}

		c.Set("userID", user.ID)
		c.Set("role", user.Role)
		c.Set("email", user.Email)

		c.Next()
	}
}

// RequireRole gates a route to the given roles. Must run after
// AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	}
}

// CurrentIdentity pulls the resolved actor out of the request context.
func CurrentIdentity(c *gin.Context) services.Identity {
	return services.Identity{
		UserID: c.GetUint("userID"),
		Role:   c.GetString("role"),
	}
}
