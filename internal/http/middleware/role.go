package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireRoles only lets through users whose token role is in allowedRoles.
// It must run after RequireAuth.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		user, ok := GetAuthUser(c)
		if !ok || user.Role == "" {
			abortAuth(c, http.StatusUnauthorized, "no role on request")
			return
		}
		if _, ok := allowed[strings.ToLower(strings.TrimSpace(user.Role))]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":      "role not allowed",
				"code":       "forbidden",
				"message":    "role not allowed",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}
