package utils

import "github.com/gin-gonic/gin"

// CurrentUserID reads the authenticated account id the auth middlewares put
// on the context. JWT numeric claims can surface as float64 after JSON
// decoding, so every numeric shape is coerced; an unauthenticated context
// yields 0.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

// CurrentRole reads the role claim; empty when unauthenticated.
func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
