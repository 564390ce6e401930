package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthDecision is a typed capability-check outcome so handlers can
// distinguish "who are you" from "you may not".
type AuthDecision int

const (
	AuthAllowed AuthDecision = iota
	AuthDeniedUnauthenticated
	AuthDeniedForbidden
)

// CheckUser decides whether the request carries any authenticated session.
func CheckUser(c *gin.Context) (AuthUser, AuthDecision) {
	user, ok := GetAuthUserFromContext(c)
	if !ok {
		return AuthUser{}, AuthDeniedUnauthenticated
	}
	return user, AuthAllowed
}

// CheckAdmin decides whether the request carries an admin session.
func CheckAdmin(c *gin.Context) (AuthUser, AuthDecision) {
	user, decision := CheckUser(c)
	if decision != AuthAllowed {
		return AuthUser{}, decision
	}
	if !user.IsAdmin() {
		return AuthUser{}, AuthDeniedForbidden
	}
	return user, AuthAllowed
}

// RequireUser aborts the request unless a session user is present, and
// returns that user. Call at the top of a handler.
func RequireUser(c *gin.Context) (AuthUser, bool) {
	user, decision := CheckUser(c)
	if decision != AuthAllowed {
		abortForDecision(c, decision)
		return AuthUser{}, false
	}
	return user, true
}

// RequireAdmin aborts the request unless an admin session is present.
func RequireAdmin(c *gin.Context) (AuthUser, bool) {
	user, decision := CheckAdmin(c)
	if decision != AuthAllowed {
		abortForDecision(c, decision)
		return AuthUser{}, false
	}
	return user, true
}

func abortForDecision(c *gin.Context, decision AuthDecision) {
	switch decision {
	case AuthDeniedUnauthenticated:
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case AuthDeniedForbidden:
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin privileges required"})
	}
}
