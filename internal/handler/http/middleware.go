package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/desparches/backend/internal/domain/contract"
	"github.com/desparches/backend/internal/domain/entity"
)

const currentUserKey = "currentUser"

// RequireAuth resolves the session user and aborts with 401 when no session
// is active. The resolved user is stored on the gin context.
func RequireAuth(users contract.IUserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := users.CurrentUser(c.Request.Context())
		if !ok {
			ErrorHandler(c, http.StatusUnauthorized, "Not authenticated")
			c.Abort()
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireRole additionally checks the rank-floor authorization: the session
// user's rank must reach the rank of at least one allowed role.
func RequireRole(users contract.IUserRepository, allowed ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := users.CurrentUser(c.Request.Context())
		if !ok {
			ErrorHandler(c, http.StatusUnauthorized, "Not authenticated")
			c.Abort()
			return
		}
		if !users.Authorize(user.Role, allowed...) {
			ErrorHandler(c, http.StatusForbidden, "Insufficient role")
			c.Abort()
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

// UserFromContext returns the session user placed by RequireAuth/RequireRole,
// or nil when the route runs without those middlewares.
func UserFromContext(c *gin.Context) *entity.User {
	if v, ok := c.Get(currentUserKey); ok {
		if u, ok := v.(*entity.User); ok {
			return u
		}
	}
	return nil
}
