package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/webgroup16/contacts_app/internal/core/domain"
)

// currentUserKey is the gin-context key the auth middleware stores the
// resolved user under.
const currentUserKey = "currentUser"

// GetCurrentUser retrieves the authenticated user placed in the context by
// the auth middleware. The bool reports whether one was found.
func GetCurrentUser(c *gin.Context) (*domain.User, bool) {
	val, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*domain.User)
	if !ok {
		return nil, false
	}
	return user, true
}
