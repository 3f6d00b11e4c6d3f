package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasraugi/presentes-api/internal/auth"
	"github.com/lucasraugi/presentes-api/internal/logger"
)

func setupGuardedRouter(t *testing.T) (*gin.Engine, *auth.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Initialize("error")

	manager, err := auth.NewManager("segredo", "test-session-secret", time.Hour)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/protected", RequireAdmin(manager), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router, manager
}

func request(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAdminAcceptsValidToken(t *testing.T) {
	router, manager := setupGuardedRouter(t)

	token, err := manager.Login("segredo")
	require.NoError(t, err)

	w := request(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestRequireAdminRejectsMissingHeader(t *testing.T) {
	router, _ := setupGuardedRouter(t)

	w := request(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminRejectsMalformedHeader(t *testing.T) {
	router, manager := setupGuardedRouter(t)

	token, err := manager.Login("segredo")
	require.NoError(t, err)

	// Raw token without the Bearer scheme.
	w := request(router, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminRejectsGarbageToken(t *testing.T) {
	router, _ := setupGuardedRouter(t)

	w := request(router, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
