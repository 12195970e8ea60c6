package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

type ctxKey string

const userIDKey ctxKey = "user_id"

// DefaultUserID is assumed when no identity header is present.
const DefaultUserID = "recruiter"

// Auth is a stub: it trusts the X-User-Id header and defaults to a demo
// recruiter. Real authentication lives outside this service.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-Id")
		if userID == "" {
			userID = DefaultUserID
		}

		c.Set(string(userIDKey), userID)

		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// UserIDFromContext fetches the user ID from a context populated by Auth.
func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(userIDKey).(string); ok {
		return v
	}
	return ""
}
