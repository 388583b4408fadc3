package middleware

import "github.com/gin-gonic/gin"

// callerIDKey is the key used to store the authenticated caller's id.
const callerIDKey = contextKey("callerID")

// GetCallerIDFromContext retrieves the authenticated caller id from the Gin context.
// It returns the caller id and a boolean indicating if it was found.
func GetCallerIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(callerIDKey)); exists {
		callerID, ok := v.(string)
		return callerID, ok
	}
	if v, ok := c.Request.Context().Value(callerIDKey).(string); ok {
		return v, true
	}
	return "", false
}
