package middleware

import "github.com/gin-gonic/gin"

// clientIDKey is the key used to store the authenticated client's ID in the Gin context.
// Using a custom type prevents collisions.
const clientIDKey = contextKey("clientID")

// GetClientIDFromContext retrieves the authenticated client ID from the Gin context.
// It returns the client ID and a boolean indicating if it was found.
func GetClientIDFromContext(c *gin.Context) (string, bool) {
	clientIDVal, exists := c.Get(string(clientIDKey))
	if !exists {
		// check in the request context as well
		if v, ok := c.Request.Context().Value(clientIDKey).(string); ok {
			return v, true
		}
		return "", false
	}

	clientID, ok := clientIDVal.(string)
	return clientID, ok
}
