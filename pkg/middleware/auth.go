package middleware

import (
	"strings"

	"life-sim-game/backend/pkg/errors"
	"life-sim-game/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// SessionAuth validates the save-code session token and stores the
// claims on the request context for downstream handlers.
func SessionAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Error(errors.NewUnauthorizedError("AUTH_REQUIRED", "Session token required"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			c.Error(errors.NewUnauthorizedError("INVALID_AUTH_HEADER", "Authorization header must use the Bearer scheme"))
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.Error(errors.NewUnauthorizedError("INVALID_TOKEN", "Session token is invalid or expired"))
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Set("saveCode", claims.SaveCode)
		c.Set("saveCodeId", claims.SaveCodeID)

		c.Next()
	}
}

// OptionalSessionAuth resolves claims when a token is present but lets
// anonymous requests through. Handlers can check "saveCode" to scope
// responses to a save slot.
func OptionalSessionAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if claims, err := jwtService.ValidateToken(tokenString); err == nil {
			c.Set("claims", claims)
			c.Set("saveCode", claims.SaveCode)
			c.Set("saveCodeId", claims.SaveCodeID)
		}

		c.Next()
	}
}
