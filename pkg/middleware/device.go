package middleware

import (
	"github.com/gin-gonic/gin"
)

// DeviceMiddleware stashes the caller's device token in the request context so
// rate limiting can key on it instead of the client IP. The token is taken as-is;
// it identifies a browser, not a person.
func DeviceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := c.GetHeader("X-Device-ID")
		if deviceID == "" {
			deviceID = c.Query("device_id")
		}
		if deviceID != "" {
			c.Set("device_id", deviceID)
		}
		c.Next()
	}
}
