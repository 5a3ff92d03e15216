package utils

import "github.com/gin-gonic/gin"

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	if id, ok := v.(uint); ok {
		return id
	}
	return 0
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// CurrentTenantID is set by the tenant middleware from X-Tenant-ID.
func CurrentTenantID(c *gin.Context) uint {
	v, _ := c.Get("tenantId")
	if id, ok := v.(uint); ok {
		return id
	}
	return 0
}
