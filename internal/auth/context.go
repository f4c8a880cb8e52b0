package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/projectify-app/projectify-backend/internal/auth/domain"
)

const CtxUser = "current_user"

// CurrentUser extracts the resolved caller from the Gin context.
// Returns nil for anonymous requests. Set by the auth middleware.
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(CtxUser)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}
