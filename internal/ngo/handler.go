package ngo

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	apiErrors "github.com/sevasetu/sevasetu-backend/internal/errors"
	"github.com/sevasetu/sevasetu-backend/internal/utils"
	"github.com/sirupsen/logrus"
)

// Handler handles HTTP requests for organization lookups.
type Handler struct {
	service *Service
	logger  *logrus.Logger
}

// NewHandler creates a new Handler.
func NewHandler(service *Service, logger *logrus.Logger) *Handler {
	return &Handler{service, logger}
}

// RegisterRoutes registers the organization lookup routes.
func RegisterRoutes(handler *Handler, routerGroup *gin.RouterGroup) {
	routerGroup.GET("/nearest", handler.Nearest)
	routerGroup.GET("/organizations", handler.ByCity)
	routerGroup.GET("/organizations_all", handler.All)
	routerGroup.GET("/cities", handler.Cities)
}

// Nearest handles GET /nearest?lat=&lng=
func (h *Handler) Nearest(c *gin.Context) {
	res, err := h.service.Nearest(c.Query("lat"), c.Query("lng"))
	if err != nil {
		if apiErr, ok := apiErrors.AsAPIError(err); ok {
			utils.RespondError(c, apiErr.Status, apiErr.Message)
			return
		}
		h.logger.Error("Nearest error: ", err)
		utils.RespondError(c, http.StatusInternalServerError, apiErrors.ErrInternalServer.Message)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ByCity handles GET /organizations?city=
func (h *Handler) ByCity(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, apiErrors.ErrMissingCity.Message)
		return
	}
	orgs, err := h.service.ByCity(city)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, UnknownCityResponse{
			Error:       fmt.Sprintf("Unknown city: %s", city),
			KnownCities: h.service.Cities(),
		})
		return
	}
	c.JSON(http.StatusOK, CityOrganizations{City: city, Organizations: orgs})
}

// All handles GET /organizations_all
func (h *Handler) All(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.All())
}

// Cities handles GET /cities
func (h *Handler) Cities(c *gin.Context) {
	c.JSON(http.StatusOK, CitiesResponse{Cities: h.service.Cities()})
}
