package catalog

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	apiErrors "github.com/sevasetu/sevasetu-backend/internal/errors"
	"github.com/sevasetu/sevasetu-backend/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Service serves the items catalog file as-is. The catalog is externally
// managed content, read per request so edits show up without a restart.
type Service struct {
	fs   afero.Fs
	path string
}

// NewService creates a new Service reading the catalog from path on fsys.
func NewService(fsys afero.Fs, path string) *Service {
	return &Service{fs: fsys, path: path}
}

// Load reads and validates the catalog file.
// Fails with ErrCatalogNotFound when the file is missing and ErrCorruptCatalog
// when its content is not valid JSON.
func (s *Service) Load() (json.RawMessage, error) {
	raw, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apiErrors.ErrCatalogNotFound
		}
		return nil, apiErrors.ErrCorruptCatalog
	}
	if !json.Valid(raw) {
		return nil, apiErrors.ErrCorruptCatalog
	}
	return raw, nil
}

// Handler handles HTTP requests for the items catalog.
type Handler struct {
	service *Service
	logger  *logrus.Logger
}

// NewHandler creates a new Handler.
func NewHandler(service *Service, logger *logrus.Logger) *Handler {
	return &Handler{service, logger}
}

// RegisterRoutes registers the items catalog route.
func RegisterRoutes(handler *Handler, routerGroup *gin.RouterGroup) {
	routerGroup.GET("/items_catalog", handler.Get)
}

// Get handles GET /items_catalog
func (h *Handler) Get(c *gin.Context) {
	raw, err := h.service.Load()
	if err != nil {
		if apiErr, ok := apiErrors.AsAPIError(err); ok {
			utils.RespondError(c, apiErr.Status, apiErr.Message)
			return
		}
		h.logger.Error("catalog load error: ", err)
		utils.RespondError(c, http.StatusInternalServerError, apiErrors.ErrInternalServer.Message)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}
