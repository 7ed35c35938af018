package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"opos-parking/internal/user/model"
)

func newRoleRouter(role model.Role, guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		user := &model.User{ID: uuid.New(), Role: role}
		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextRoleKey, string(user.Role))
	})
	router.Use(guard)
	router.GET("/guarded", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func getGuarded(router *gin.Engine) int {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder.Code
}

func TestRoleMiddlewareAllows(t *testing.T) {
	assert.Equal(t, http.StatusOK, getGuarded(newRoleRouter(model.RoleVendor, VendorOrOdogwu())))
	assert.Equal(t, http.StatusOK, getGuarded(newRoleRouter(model.RoleOdogwu, VendorOrOdogwu())))
	assert.Equal(t, http.StatusOK, getGuarded(newRoleRouter(model.RoleOdogwu, OdogwuOnly())))
}

func TestRoleMiddlewareRejects(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, getGuarded(newRoleRouter(model.RoleCustomer, VendorOrOdogwu())))
	assert.Equal(t, http.StatusForbidden, getGuarded(newRoleRouter(model.RoleVendor, OdogwuOnly())))
	assert.Equal(t, http.StatusForbidden, getGuarded(newRoleRouter(model.RoleCustomer, OdogwuOnly())))
}

func TestRoleMiddlewareWithoutUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(OdogwuOnly())
	router.GET("/guarded", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusForbidden, getGuarded(router))
}
