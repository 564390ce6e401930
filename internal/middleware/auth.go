package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/wevomedia/wevo_media_app/internal/core/domain"
	"github.com/wevomedia/wevo_media_app/internal/utils"
)

// AuthMiddleware validates the session token and stores the session user in
// the request context. The token is read from the session cookie set at login,
// or from a Bearer header for non-browser clients.
func AuthMiddleware(jwtSecret string, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString := sessionTokenFromRequest(c, cookieName)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		claims, err := utils.ParseSessionToken(tokenString, jwtSecret)
		if err != nil {
			logger.Warn("Invalid session token", "error", err)
			msg := "invalid session"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "session has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}
		if claims.Subject == "" {
			logger.Error("Tax id (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session claims"})
			return
		}

		user := AuthUser{
			TaxID: claims.Subject,
			Name:  claims.Name,
			Email: claims.Email,
			Role:  domain.UserRole(claims.Role),
		}

		ctx := context.WithValue(c.Request.Context(), sessionUserKey, user)
		enrichedLogger := logger.With(slog.String("user_tax_id", user.TaxID))
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func sessionTokenFromRequest(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
