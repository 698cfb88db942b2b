package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vpprealtech/server/internal/models"
)

const contextUserKey = "authUser"

// Authenticate verifies the bearer token and stores the caller identity
// on the request context. Missing, malformed, expired and unknown-subject
// tokens all halt the request with 401; expired tokens get their own
// message so clients can prompt a re-login.
func (m *Manager) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Access denied. No token provided.",
			})
			return
		}

		user, err := m.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			msg := "Invalid token."
			if errors.Is(err, ErrTokenExpired) {
				msg = "Token expired. Please login again."
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   msg,
			})
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// AdminOnly rejects authenticated non-admin callers with 403. Must run
// after Authenticate.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Access denied. Admin privileges required.",
			})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the identity set by Authenticate.
func CurrentUser(c *gin.Context) (models.AuthUser, bool) {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return models.AuthUser{}, false
	}
	user, ok := v.(models.AuthUser)
	return user, ok
}
