package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// deviceIDKey is the key used to store the calling device's ID in the Gin
// context.
const deviceIDKey = contextKey("deviceID")

// deviceIDHeader names the header the mobile client sends its install ID in.
const deviceIDHeader = "X-Device-ID"

// defaultDeviceID namespaces requests that arrive without a device header.
const defaultDeviceID = "default"

// DeviceIDMiddleware resolves the caller's device ID from the request header
// and stores it in the Gin context. Per-device state (selection history) is
// namespaced by this value.
func DeviceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := strings.TrimSpace(c.GetHeader(deviceIDHeader))
		if deviceID == "" {
			deviceID = defaultDeviceID
		}
		c.Set(string(deviceIDKey), deviceID)
		c.Next()
	}
}

// GetDeviceIDFromContext retrieves the device ID from the Gin context,
// falling back to the default namespace when the middleware did not run.
func GetDeviceIDFromContext(c *gin.Context) string {
	deviceIDVal, exists := c.Get(string(deviceIDKey))
	if !exists {
		return defaultDeviceID
	}

	deviceID, ok := deviceIDVal.(string)
	if !ok || deviceID == "" {
		return defaultDeviceID
	}
	return deviceID
}
