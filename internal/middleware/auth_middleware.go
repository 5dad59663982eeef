package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	autherrors "github.com/Haseebinvader/SalaryManagement/internal/auth/errors"
	"github.com/Haseebinvader/SalaryManagement/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware guards every branch and employee endpoint. The session
// token is accepted from the Authorization header or the access_token
// cookie the login handler sets.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		adminID, ok := claims["admin_id"].(string)
		if !ok || adminID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Admin ID not found in token", nil)
			c.Abort()
			return
		}

		email, _ := claims["email"].(string)

		c.Set("admin_id", adminID)
		c.Set("email", email)

		c.Next()
	}
}
