package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/projectify-app/projectify-backend/internal/auth"
	"github.com/projectify-app/projectify-backend/internal/auth/service"
)

// RequireAuth validates the bearer credential and stores the resolved user
// in the context. Missing or invalid tokens abort with 401.
func RequireAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No token provided"})
			c.Abort()
			return
		}

		user, err := authService.Resolve(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(auth.CtxUser, user)
		c.Next()
	}
}

// OptionalAuth resolves the caller when a valid credential is present and
// stays silent otherwise. Used where anonymous access is allowed but the
// response depends on who is asking.
func OptionalAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token != "" {
			if user, err := authService.Resolve(c.Request.Context(), token); err == nil {
				c.Set(auth.CtxUser, user)
			}
		}
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
