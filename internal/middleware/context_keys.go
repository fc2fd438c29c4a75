package middleware

import "github.com/gin-gonic/gin"

// Keys used to store the authenticated caller in the request context.
const (
	userIDKey   = contextKey("userID")
	usernameKey = contextKey("username")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetUsernameFromContext retrieves the authenticated username from the request context.
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	username, ok := c.Request.Context().Value(usernameKey).(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}
