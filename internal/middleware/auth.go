package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/collabhub/internal/constants"
	"github.com/yukikurage/collabhub/internal/models"
)

// Identity is the logged-in user as recorded in the session.
type Identity struct {
	UserID   uint64
	Name     string
	UserType models.UserType
}

// RequireSession redirects to the login chooser when no user is logged in
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := toUint64(session.Get(constants.SessionKeyUserID))
		if !ok {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		name, _ := session.Get(constants.SessionKeyUserName).(string)
		userType, _ := session.Get(constants.SessionKeyUserType).(string)

		// Store identity in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyIdentity, Identity{
			UserID:   userID,
			Name:     name,
			UserType: models.UserType(userType),
		})
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	return toUint64(userID)
}

// CurrentIdentity retrieves the identity set by RequireSession
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, exists := c.Get(constants.ContextKeyIdentity)
	if !exists {
		return Identity{}, false
	}
	identity, ok := v.(Identity)
	return identity, ok
}

func toUint64(v interface{}) (uint64, bool) {
	switch v := v.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
