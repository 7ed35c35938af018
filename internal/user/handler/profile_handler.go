package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"opos-parking/internal/middleware"
	"opos-parking/internal/user/model"
	appErrors "opos-parking/pkg/errors"
	"opos-parking/pkg/utils"
)

func (h *UserHandler) RegisterProfileRoutes(router *gin.RouterGroup) {
	router.GET("/me", h.GetMe)
	router.PATCH("/users/update", h.UpdateMe)
	router.DELETE("/users/delete", h.DeleteMe)
}

func (h *UserHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.GET("/users", h.ListUsers)
	router.GET("/users/:id", h.GetUser)
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, appErrors.ErrUnauthorized.Error())
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"user": user})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"user": user})
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.ListResponse(c, http.StatusOK, len(users), gin.H{"users": users})
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, appErrors.ErrUnauthorized.Error())
		return
	}

	// Catch password fields early and point the caller at the password route.
	var probe map[string]interface{}
	if err := c.ShouldBindBodyWithJSON(&probe); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if _, hasPassword := probe["password"]; hasPassword {
		utils.ErrorResponse(c, http.StatusBadRequest, appErrors.ErrPasswordRoute.Error())
		return
	}
	if _, hasConfirm := probe["passwordConfirm"]; hasConfirm {
		utils.ErrorResponse(c, http.StatusBadRequest, appErrors.ErrPasswordRoute.Error())
		return
	}

	var request model.UpdateMeRequest
	if err := c.ShouldBindBodyWithJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if request.Name != nil {
		sanitized := utils.SanitizeString(*request.Name)
		request.Name = &sanitized
	}

	user, err := h.service.UpdateMe(c.Request.Context(), userID, &request)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"user": user})
}

func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, appErrors.ErrUnauthorized.Error())
		return
	}

	if err := h.service.DeleteMe(c.Request.Context(), userID); err != nil {
		h.respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
