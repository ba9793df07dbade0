package donation

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apiErrors "github.com/sevasetu/sevasetu-backend/internal/errors"
	"github.com/sevasetu/sevasetu-backend/internal/utils"
	"github.com/sirupsen/logrus"
)

// Handler handles HTTP requests for donation requests.
type Handler struct {
	service *Service
	logger  *logrus.Logger
}

// NewHandler creates a new Handler.
func NewHandler(service *Service, logger *logrus.Logger) *Handler {
	return &Handler{service, logger}
}

// RegisterRoutes registers the donation request routes.
func RegisterRoutes(handler *Handler, routerGroup *gin.RouterGroup) {
	routerGroup.GET("/donation_requests", handler.List)
	routerGroup.POST("/donation_request", handler.Submit)
	routerGroup.PATCH("/donation_requests/:request_id/status", handler.UpdateStatus)
}

// List handles GET /donation_requests?organization_id=
func (h *Handler) List(c *gin.Context) {
	requests := h.service.List(c.Query("organization_id"))
	c.JSON(http.StatusOK, ListResponse{Requests: requests})
}

// Submit handles POST /donation_request
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, apiErrors.ErrInvalidBody.Message)
		return
	}
	requestID, err := h.service.Submit(req)
	if err != nil {
		h.respondError(c, err, "Submit")
		return
	}
	c.JSON(http.StatusOK, SubmitResponse{
		Success:   true,
		RequestID: requestID,
		Message:   "Donation request submitted successfully.",
	})
}

// UpdateStatus handles PATCH /donation_requests/:request_id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req StatusUpdateRequest
	// An absent or empty body means the default transition target.
	_ = c.ShouldBindJSON(&req)

	updated, status, err := h.service.Transition(c.Param("request_id"), req.Status)
	if err != nil {
		h.respondError(c, err, "UpdateStatus")
		return
	}
	c.JSON(http.StatusOK, StatusUpdateResponse{Success: true, Updated: updated, Status: status})
}

// respondError maps service errors onto HTTP statuses, keeping storage
// details out of responses.
func (h *Handler) respondError(c *gin.Context, err error, op string) {
	apiErr, ok := apiErrors.AsAPIError(err)
	if !ok {
		h.logger.Errorf("%s error: %v", op, err)
		utils.RespondError(c, http.StatusInternalServerError, apiErrors.ErrInternalServer.Message)
		return
	}
	if apiErr.Status >= http.StatusInternalServerError {
		h.logger.Errorf("%s error: %v", op, err)
	}
	utils.RespondError(c, apiErr.Status, apiErr.Message)
}
