package middleware

import "github.com/gin-gonic/gin"

const (
	userIDKey    = contextKey("userID")
	userEmailKey = contextKey("userEmail")
)

// GetUserIDFromContext retrieves the authenticated user ID placed in the
// request context by AuthMiddleware.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetUserEmailFromContext retrieves the authenticated user's email.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	email, ok := c.Request.Context().Value(userEmailKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}
