package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"opos-parking/internal/config"
	"opos-parking/internal/logger"
	"opos-parking/internal/middleware"
	"opos-parking/internal/user/model"
	"opos-parking/internal/user/service"
	appErrors "opos-parking/pkg/errors"
	"opos-parking/pkg/utils"
)

const sessionCookieName = "jwt"

type UserHandler struct {
	service *service.UserService
	cfg     *config.Config
}

func NewHandler(service *service.UserService, cfg *config.Config) *UserHandler {
	return &UserHandler{service: service, cfg: cfg}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("/signup", h.Signup)
		users.POST("/login", h.Login)
		users.POST("/google-login", h.GoogleLogin)
		users.POST("/forgot-password", h.ForgotPassword)
		users.PATCH("/reset-password/:token", h.ResetPassword)
	}
}

func (h *UserHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.PATCH("/users/update-password", h.UpdatePassword)
	router.POST("/users/logout", h.Logout)
	router.POST("/refresh-token", h.RefreshToken)
}

func (h *UserHandler) Signup(c *gin.Context) {
	var request model.SignupRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Email = utils.SanitizeEmail(request.Email)
	request.Name = utils.SanitizeString(request.Name)

	authResponse, err := h.service.Signup(c.Request.Context(), &request)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	h.sendToken(c, http.StatusCreated, authResponse)
}

func (h *UserHandler) Login(c *gin.Context) {
	var request model.LoginRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Email = utils.SanitizeEmail(request.Email)

	authResponse, err := h.service.Login(c.Request.Context(), &request)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	h.sendToken(c, http.StatusOK, authResponse)
}

func (h *UserHandler) GoogleLogin(c *gin.Context) {
	var request model.GoogleLoginRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	authResponse, err := h.service.GoogleLogin(c.Request.Context(), &request)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	h.sendToken(c, http.StatusCreated, authResponse)
}

func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var request model.ForgotPasswordRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Email = utils.SanitizeEmail(request.Email)

	if err := h.service.ForgotPassword(c.Request.Context(), &request); err != nil {
		h.respondWithError(c, err)
		return
	}

	// The raw token only travels by email, never in the response body.
	utils.SuccessResponse(c, http.StatusOK, "Token sent to email", nil)
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	var request model.ResetPasswordRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	authResponse, err := h.service.ResetPassword(c.Request.Context(), c.Param("token"), &request)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	h.sendToken(c, http.StatusOK, authResponse)
}

func (h *UserHandler) UpdatePassword(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, appErrors.ErrUnauthorized.Error())
		return
	}

	var request model.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	authResponse, err := h.service.UpdatePassword(c.Request.Context(), userID, &request)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	h.sendToken(c, http.StatusOK, authResponse)
}

func (h *UserHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	utils.SuccessResponse(c, http.StatusOK, "", nil)
}

// RefreshToken clears the session cookie exactly like Logout. Token rotation
// was never implemented upstream; the route is kept for client compatibility.
func (h *UserHandler) RefreshToken(c *gin.Context) {
	h.clearSessionCookie(c)
	utils.SuccessResponse(c, http.StatusOK, "", nil)
}

// sendToken writes the session cookie and the token-bearing response body.
func (h *UserHandler) sendToken(c *gin.Context, status int, auth *model.AuthResponse) {
	maxAge := h.cfg.JWT.CookieExpiryDays * 24 * 60 * 60
	c.SetCookie(sessionCookieName, auth.Token, maxAge, "/", "", h.cfg.Server.IsProduction(), true)

	utils.SuccessResponse(c, status, "", auth)
}

func (h *UserHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", h.cfg.Server.IsProduction(), true)
}

func (h *UserHandler) respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, appErrors.ErrUserAlreadyExists):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, appErrors.ErrInvalidCredentials),
		errors.Is(err, appErrors.ErrInvalidToken),
		errors.Is(err, appErrors.ErrPasswordChanged),
		errors.Is(err, appErrors.ErrTokenUserGone),
		errors.Is(err, appErrors.ErrUnauthorized):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, appErrors.ErrInsufficientPermissions):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, appErrors.ErrUserNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, appErrors.ErrResetToken),
		errors.Is(err, appErrors.ErrGoogleLoginFail),
		errors.Is(err, appErrors.ErrInvalidUserRole),
		errors.Is(err, appErrors.ErrPasswordRoute):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, appErrors.ErrEmailSendFailed):
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
	default:
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
			return
		}

		logger.Error("Internal server error",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)

		// Internal detail only leaves the process in development.
		if h.cfg.Server.IsProduction() {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Oops something just went very wrong")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}
