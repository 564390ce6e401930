package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/wevomedia/wevo_media_app/internal/core/domain"
)

// sessionUserKey is the key under which the auth middleware stores the session
// user in the request context.
const sessionUserKey = contextKey("sessionUser")

// AuthUser is the session identity rebuilt from token claims.
type AuthUser struct {
	TaxID string
	Name  string
	Email string
	Role  domain.UserRole
}

// IsAdmin reports whether the session user holds the admin role.
func (u AuthUser) IsAdmin() bool {
	return u.Role == domain.RoleAdmin
}

// GetAuthUserFromContext retrieves the session user set by the auth
// middleware. The boolean is false for unauthenticated requests.
func GetAuthUserFromContext(c *gin.Context) (AuthUser, bool) {
	val := c.Request.Context().Value(sessionUserKey)
	if val == nil {
		return AuthUser{}, false
	}
	user, ok := val.(AuthUser)
	return user, ok
}
