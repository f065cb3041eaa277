package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/recipebox/recipebox/internal/database"
)

// UserKey is the gin context key under which the authenticated user is stored.
const UserKey = "user"

// RequireAuth resolves the bearer token from the Authorization header and
// loads the matching user into the request context. Requests with a
// missing, malformed or expired token are rejected with 401, as are
// tokens of deleted or deactivated accounts.
func (m *Manager) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := m.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		user, err := m.db.GetUserByID(c.Request.Context(), userID)
		if err != nil || !user.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

// RequireStaff rejects requests from non-staff users. Must run after RequireAuth.
func (m *Manager) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := c.MustGet(UserKey).(*database.User)
		if !ok || !user.IsStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by RequireAuth.
func CurrentUser(c *gin.Context) *database.User {
	return c.MustGet(UserKey).(*database.User)
}
