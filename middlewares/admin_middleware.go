package middlewares

import (
	"net/http"

	"github.com/arysespajayadii/dsc-backend-repo/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys set by the admin login handler.
const (
	SessionAdminID       = "admin_id"
	SessionAdminUsername = "admin_username"
	SessionAdminRole     = "admin_role"
)

// AdminRequired guards the admin console routes behind the session cookie.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		adminID := session.Get(SessionAdminID)
		if adminID == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin login required"})
			return
		}

		c.Set("adminID", adminID)
		if username, ok := session.Get(SessionAdminUsername).(string); ok {
			c.Set("adminUsername", username)
		}
		if role, ok := session.Get(SessionAdminRole).(string); ok {
			c.Set("adminRole", role)
		}
		c.Next()
	}
}

// SuperadminRequired layers on top of AdminRequired for the account
// management and password reset routes.
func SuperadminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("adminRole") != models.AdminRoleSuperadmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "superadmin role required"})
			return
		}
		c.Next()
	}
}
