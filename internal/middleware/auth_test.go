package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/wevomedia/wevo_media_app/internal/utils"
)

const (
	testJWTSecret  = "test-secret"
	testCookieName = "wevo_session"
)

func newAuthTestRouter() *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware(testJWTSecret, testCookieName))
	r.GET("/whoami", func(c *gin.Context) {
		user, ok := GetAuthUserFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no session user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"taxID": user.TaxID, "role": string(user.Role)})
	})
	return r
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	r := newAuthTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidCookie(t *testing.T) {
	token, err := utils.GenerateSessionToken("11122233344", "Ana Souza", "ana@wevo.media", "admin", testJWTSecret, time.Hour, "wevo-media-app")
	assert.NoError(t, err)

	r := newAuthTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "11122233344")
	assert.Contains(t, w.Body.String(), "admin")
}

func TestAuthMiddleware_ValidBearerHeader(t *testing.T) {
	token, err := utils.GenerateSessionToken("11122233344", "Ana Souza", "ana@wevo.media", "normal", testJWTSecret, time.Hour, "wevo-media-app")
	assert.NoError(t, err)

	r := newAuthTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	token, err := utils.GenerateSessionToken("11122233344", "Ana Souza", "ana@wevo.media", "normal", testJWTSecret, -time.Minute, "wevo-media-app")
	assert.NoError(t, err)

	r := newAuthTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "session has expired")
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	token, err := utils.GenerateSessionToken("11122233344", "Ana Souza", "ana@wevo.media", "normal", "another-secret", time.Hour, "wevo-media-app")
	assert.NoError(t, err)

	r := newAuthTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid session")
}
