package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"opos-parking/internal/config"
	"opos-parking/internal/location/model"
	"opos-parking/internal/location/service"
	"opos-parking/internal/logger"
	"opos-parking/internal/middleware"
	appErrors "opos-parking/pkg/errors"
	"opos-parking/pkg/utils"
)

type LocationHandler struct {
	service *service.LocationService
	cfg     *config.Config
}

func NewHandler(service *service.LocationService, cfg *config.Config) *LocationHandler {
	return &LocationHandler{service: service, cfg: cfg}
}

// RegisterRoutes wires the public read endpoints. Gin's router rejects a
// static segment next to a path param, so the multi-segment GET routes
// (/distance/:latlng, /:id/zones, /:distance/center/:latlng) are dispatched
// from shared param routes to keep the public URLs unchanged.
func (h *LocationHandler) RegisterRoutes(router *gin.RouterGroup) {
	locations := router.Group("/locations")
	{
		locations.GET("", h.ListLocations)
		locations.GET("/:id", h.GetLocation)
		locations.GET("/:id/:sub", h.dispatchTwoSegments)
		locations.GET("/:id/:sub/:latlng", h.dispatchThreeSegments)
	}

	router.GET("/zones/:id", h.GetZone)
}

// dispatchTwoSegments serves GET /locations/distance/:latlng and
// GET /locations/:id/zones.
func (h *LocationHandler) dispatchTwoSegments(c *gin.Context) {
	first, second := c.Param("id"), c.Param("sub")

	switch {
	case first == "distance":
		h.Distances(c, second)
	case second == "zones":
		h.ListZones(c, first)
	default:
		utils.ErrorResponse(c, http.StatusNotFound, fmt.Sprintf("endpoint %s does not exist", c.Request.URL.Path))
	}
}

// dispatchThreeSegments serves GET /locations/:distance/center/:latlng.
func (h *LocationHandler) dispatchThreeSegments(c *gin.Context) {
	if c.Param("sub") != "center" {
		utils.ErrorResponse(c, http.StatusNotFound, fmt.Sprintf("endpoint %s does not exist", c.Request.URL.Path))
		return
	}

	h.Within(c, c.Param("id"), c.Param("latlng"))
}

// RegisterVendorRoutes wires the write endpoints. The caller applies auth and
// role middleware to the group.
func (h *LocationHandler) RegisterVendorRoutes(router *gin.RouterGroup) {
	router.POST("/locations", h.CreateLocation)
	router.DELETE("/locations/:id", h.DeleteLocation)

	zones := router.Group("/zones")
	{
		zones.POST("", h.CreateZone)
		zones.PATCH("/:id", h.UpdateZone)
		zones.DELETE("/:id", h.DeleteZone)
	}
}

func (h *LocationHandler) ListLocations(c *gin.Context) {
	locations, err := h.service.ListLocations(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.ListResponse(c, http.StatusOK, len(locations), gin.H{"locations": locations})
}

func (h *LocationHandler) GetLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid location id")
		return
	}

	location, err := h.service.GetLocation(c.Request.Context(), id)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"location": location})
}

func (h *LocationHandler) CreateLocation(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, appErrors.ErrUnauthorized.Error())
		return
	}

	var request model.CreateLocationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Name = utils.SanitizeString(request.Name)
	request.Address = utils.SanitizeString(request.Address)
	request.PhoneNumber = utils.SanitizePhone(request.PhoneNumber)

	// The acting user owns the listing regardless of what the body claims.
	location, err := h.service.CreateLocation(c.Request.Context(), user.ID, &request)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "", gin.H{"location": location})
}

func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, appErrors.ErrUnauthorized.Error())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid location id")
		return
	}

	if err := h.service.DeleteLocation(c.Request.Context(), user, id); err != nil {
		h.respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Within returns the locations inside the radius (miles) around the latlng
// center.
func (h *LocationHandler) Within(c *gin.Context, distance, latlng string) {
	locations, err := h.service.Within(c.Request.Context(), distance, latlng)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.ListResponse(c, http.StatusOK, len(locations), gin.H{"locations": locations})
}

func (h *LocationHandler) Distances(c *gin.Context, latlng string) {
	distances, err := h.service.Distances(c.Request.Context(), latlng)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.ListResponse(c, http.StatusOK, len(distances), gin.H{"distances": distances})
}

func (h *LocationHandler) CreateZone(c *gin.Context) {
	var request model.CreateZoneRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Name = utils.SanitizeString(request.Name)

	zone, err := h.service.CreateZone(c.Request.Context(), &request)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "", gin.H{"zone": zone})
}

func (h *LocationHandler) GetZone(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid zone id")
		return
	}

	zone, err := h.service.GetZone(c.Request.Context(), id)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"zone": zone})
}

func (h *LocationHandler) ListZones(c *gin.Context, idParam string) {
	locationID, err := uuid.Parse(idParam)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid location id")
		return
	}

	zones, err := h.service.ListZones(c.Request.Context(), locationID)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.ListResponse(c, http.StatusOK, len(zones), gin.H{"zones": zones})
}

func (h *LocationHandler) UpdateZone(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid zone id")
		return
	}

	var request model.UpdateZoneRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	zone, err := h.service.UpdateZone(c.Request.Context(), id, &request)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"zone": zone})
}

func (h *LocationHandler) DeleteZone(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid zone id")
		return
	}

	if err := h.service.DeleteZone(c.Request.Context(), id); err != nil {
		h.respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *LocationHandler) respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, appErrors.ErrLocationNotFound),
		errors.Is(err, appErrors.ErrZoneNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, appErrors.ErrInvalidLatLng),
		errors.Is(err, appErrors.ErrInvalidInput):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, appErrors.ErrInsufficientPermissions):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, appErrors.ErrUnauthorized):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
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

		if h.cfg.Server.IsProduction() {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Oops something just went very wrong")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}
