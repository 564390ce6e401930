package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/wevomedia/wevo_media_app/internal/core/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContextWithUser(t *testing.T, user *AuthUser) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if user != nil {
		ctx := context.WithValue(c.Request.Context(), sessionUserKey, *user)
		c.Request = c.Request.WithContext(ctx)
	}
	return c, w
}

func TestCheckUser_NoSession(t *testing.T) {
	c, _ := testContextWithUser(t, nil)

	_, decision := CheckUser(c)

	assert.Equal(t, AuthDeniedUnauthenticated, decision)
}

func TestCheckUser_WithSession(t *testing.T) {
	c, _ := testContextWithUser(t, &AuthUser{TaxID: "11122233344", Role: domain.RoleNormal})

	user, decision := CheckUser(c)

	assert.Equal(t, AuthAllowed, decision)
	assert.Equal(t, "11122233344", user.TaxID)
}

func TestCheckAdmin_NormalUserForbidden(t *testing.T) {
	c, _ := testContextWithUser(t, &AuthUser{TaxID: "11122233344", Role: domain.RoleNormal})

	_, decision := CheckAdmin(c)

	assert.Equal(t, AuthDeniedForbidden, decision)
}

func TestCheckAdmin_AdminAllowed(t *testing.T) {
	c, _ := testContextWithUser(t, &AuthUser{TaxID: "11122233344", Role: domain.RoleAdmin})

	user, decision := CheckAdmin(c)

	assert.Equal(t, AuthAllowed, decision)
	assert.True(t, user.IsAdmin())
}

func TestCheckAdmin_NoSessionIsUnauthenticatedNotForbidden(t *testing.T) {
	c, _ := testContextWithUser(t, nil)

	_, decision := CheckAdmin(c)

	assert.Equal(t, AuthDeniedUnauthenticated, decision)
}

func TestRequireUser_AbortsWith401(t *testing.T) {
	c, w := testContextWithUser(t, nil)

	_, ok := RequireUser(c)

	assert.False(t, ok)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_AbortsWith403ForNormalUser(t *testing.T) {
	c, w := testContextWithUser(t, &AuthUser{TaxID: "11122233344", Role: domain.RoleNormal})

	_, ok := RequireAdmin(c)

	assert.False(t, ok)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_PassesThroughAdmin(t *testing.T) {
	c, w := testContextWithUser(t, &AuthUser{TaxID: "11122233344", Role: domain.RoleAdmin})

	user, ok := RequireAdmin(c)

	assert.True(t, ok)
	assert.False(t, c.IsAborted())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "11122233344", user.TaxID)
}
