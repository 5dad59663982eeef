package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/Haseebinvader/SalaryManagement/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	require.NoError(t, err)
	return signed
}

func guardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", middleware.AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"adminId": c.GetString("admin_id")})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	validClaims := jwt.MapClaims{
		"admin_id": "admin-1",
		"email":    "admin@example.com",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}

	t.Run("missing token", func(t *testing.T) {
		r := guardedRouter()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token not found")
	})

	t.Run("bearer header", func(t *testing.T) {
		r := guardedRouter()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "admin-1")
	})

	t.Run("access_token cookie", func(t *testing.T) {
		r := guardedRouter()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: signToken(t, validClaims)})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		r := guardedRouter()
		expired := jwt.MapClaims{
			"admin_id": "admin-1",
			"exp":      time.Now().Add(-time.Hour).Unix(),
		}
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, expired))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token has expired")
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims)
		signed, err := token.SignedString([]byte("other-secret"))
		require.NoError(t, err)

		r := guardedRouter()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token without admin_id", func(t *testing.T) {
		r := guardedRouter()
		anon := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, anon))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Admin ID not found")
	})
}
