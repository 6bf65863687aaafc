package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"life-sim-game/backend/pkg/errors"
	"life-sim-game/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := jwt.NewService("test-secret", time.Hour)

	router := gin.New()
	router.Use(errors.ErrorHandler())
	router.GET("/protected", SessionAuth(jwtService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"save_code": c.GetString("saveCode")})
	})
	return router, jwtService
}

func doAuthRequest(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSessionAuthAcceptsValidToken(t *testing.T) {
	router, jwtService := newAuthRouter(t)

	token, err := jwtService.GenerateToken(5, "1234")
	require.NoError(t, err)

	w := doAuthRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "1234")
}

func TestSessionAuthRejectsMissingHeader(t *testing.T) {
	router, _ := newAuthRouter(t)

	w := doAuthRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuthRejectsNonBearerScheme(t *testing.T) {
	router, jwtService := newAuthRouter(t)

	token, err := jwtService.GenerateToken(5, "1234")
	require.NoError(t, err)

	w := doAuthRequest(router, "Token "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuthRejectsInvalidToken(t *testing.T) {
	router, _ := newAuthRouter(t)

	w := doAuthRequest(router, "Bearer bogus")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
