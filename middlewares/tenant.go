package middlewares

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restoflow/entity"
	"restoflow/utils"
)

// TenantMiddleware scopes a request to one restaurant. Every
// tenant-scoped route requires an X-Tenant-ID header; non-super-admin
// callers may only name their own restaurant, so no tenant can read
// another tenant's data.
func TenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-Tenant-ID")
		if raw == "" {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "missing X-Tenant-ID header"})
			c.Abort()
			return
		}
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid X-Tenant-ID header"})
			c.Abort()
			return
		}
		tenantID := uint(id)

		if utils.CurrentRole(c) != entity.RoleSuperAdmin {
			v, _ := c.Get("userRestaurantId")
			own, _ := v.(uint)
			if own != tenantID {
				c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "tenant mismatch"})
				c.Abort()
				return
			}
		}

		c.Set("tenantId", tenantID)
		c.Next()
	}
}
