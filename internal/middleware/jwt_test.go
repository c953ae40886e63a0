package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGenerateAndValidateToken(t *testing.T) {
	tokenStr, err := GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	token, err := ValidateToken(tokenStr)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["user_id"])
}

func authedEngine() (*gin.Engine, *float64) {
	seen := new(float64)
	r := gin.New()
	r.GET("/protected", RequireAuth(), func(c *gin.Context) {
		*seen = c.MustGet("user_id").(float64)
		c.Status(http.StatusOK)
	})
	r.GET("/open", OptionalAuth(), func(c *gin.Context) {
		if v, ok := c.Get("user_id"); ok {
			*seen = v.(float64)
		}
		c.Status(http.StatusOK)
	})
	return r, seen
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	r, _ := authedEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestRequireAuth_MalformedToken(t *testing.T) {
	r, _ := authedEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	r, seen := authedEngine()

	tokenStr, err := GenerateToken(7)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(7), *seen)
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	r, seen := authedEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), *seen)
}

func TestOptionalAuth_ValidTokenRecognized(t *testing.T) {
	r, seen := authedEngine()

	tokenStr, err := GenerateToken(9)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(9), *seen)
}

func TestOptionalAuth_GarbageTokenIgnored(t *testing.T) {
	r, seen := authedEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), *seen)
}
