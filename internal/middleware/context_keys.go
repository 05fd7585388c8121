package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const userIDKey = contextKey("userID")

// UserIDHeader names the caller for audit fields. It is not authenticated.
const UserIDHeader = "X-User-ID"

// DefaultUserID is recorded when a request carries no UserIDHeader.
const DefaultUserID = "system"

// AuditUser stores the caller named in UserIDHeader for use in audit fields.
func AuditUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			userID = DefaultUserID
		}
		c.Set(string(userIDKey), userID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), userIDKey, userID))
		c.Next()
	}
}

// GetUserIDFromContext retrieves the audit user ID from the Gin context.
// It returns DefaultUserID when none was set.
func GetUserIDFromContext(c *gin.Context) string {
	if v, exists := c.Get(string(userIDKey)); exists {
		if userID, ok := v.(string); ok && userID != "" {
			return userID
		}
	}
	if userID, ok := c.Request.Context().Value(userIDKey).(string); ok && userID != "" {
		return userID
	}
	return DefaultUserID
}
