package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"life-sim-game/backend/pkg/errors"
	"life-sim-game/backend/pkg/jwt"
	"life-sim-game/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// newLimitedRouter mirrors the production middleware order: session claims
// are resolved before the limiter so the save-code key is populated. The
// near-zero refill rate with a burst of one makes every second request on
// the same key fail.
func newLimitedRouter(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := jwt.NewService("test-secret", time.Hour)

	opts := DefaultRateLimiterOptions()
	opts.Limit = rate.Limit(0.001)
	opts.Burst = 1
	limiter := NewRateLimiter(logger.New(logger.Config{Level: "error"}), opts)

	router := gin.New()
	router.Use(errors.ErrorHandler())
	router.Use(OptionalSessionAuth(jwtService))
	router.Use(limiter.Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, jwtService
}

func doLimitedRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiterGivesEachSaveCodeItsOwnBudget(t *testing.T) {
	router, jwtService := newLimitedRouter(t)

	tokenA, err := jwtService.GenerateToken(1, "1111")
	require.NoError(t, err)
	tokenB, err := jwtService.GenerateToken(2, "2222")
	require.NoError(t, err)

	// Two save codes from the same client IP must not share a bucket.
	assert.Equal(t, http.StatusOK, doLimitedRequest(router, tokenA).Code)
	assert.Equal(t, http.StatusOK, doLimitedRequest(router, tokenB).Code)

	w := doLimitedRequest(router, tokenA)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "RATE_LIMIT_EXCEEDED")
}

func TestRateLimiterFallsBackToClientIP(t *testing.T) {
	router, _ := newLimitedRouter(t)

	assert.Equal(t, http.StatusOK, doLimitedRequest(router, "").Code)

	w := doLimitedRequest(router, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "RATE_LIMIT_EXCEEDED")
}
