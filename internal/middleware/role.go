package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opos-parking/internal/user/model"
	appErrors "opos-parking/pkg/errors"
	"opos-parking/pkg/utils"
)

// RoleMiddleware rejects authenticated users whose role is outside the
// allow-list. Must run after AuthMiddleware, which stores the role.
func RoleMiddleware(allowedRoles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := CurrentRole(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusForbidden, appErrors.ErrInsufficientPermissions.Error())
			c.Abort()
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, appErrors.ErrInsufficientPermissions.Error())
		c.Abort()
	}
}

func OdogwuOnly() gin.HandlerFunc {
	return RoleMiddleware(model.RoleOdogwu)
}

// VendorOrOdogwu gates the endpoints that create or remove listings.
func VendorOrOdogwu() gin.HandlerFunc {
	return RoleMiddleware(model.RoleVendor, model.RoleOdogwu)
}
