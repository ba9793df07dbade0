package server

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sevasetu/sevasetu-backend/internal/catalog"
	"github.com/sevasetu/sevasetu-backend/internal/config"
	"github.com/sevasetu/sevasetu-backend/internal/donation"
	"github.com/sevasetu/sevasetu-backend/internal/ngo"
	"github.com/sirupsen/logrus"
)

// Server represents the HTTP server for the SevaSetu backend API.
type Server struct {
	cfg    *config.Config
	log    *logrus.Logger
	engine *gin.Engine
}

// New creates a new Server instance with the given config and logger.
// The static frontend is served separately, so cross-origin calls are allowed.
func New(cfg *config.Config, log *logrus.Logger) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.Default())
	gin.SetMode(gin.ReleaseMode)

	return &Server{
		cfg:    cfg,
		log:    log,
		engine: engine,
	}
}

// SetupRoutes registers all API routes for the server.
// This function centralizes route registration for maintainability.
func (s *Server) SetupRoutes(ngoHandler *ngo.Handler,
	donationHandler *donation.Handler,
	catalogHandler *catalog.Handler) {
	api := s.engine.Group("/api")

	ngo.RegisterRoutes(ngoHandler, api)
	donation.RegisterRoutes(donationHandler, api)
	catalog.RegisterRoutes(catalogHandler, api)
}

// routes registers health check and other non-API routes.
func (s *Server) routes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "SevaSetu backend is healthy",
		})
	})
}

// Start runs the HTTP server on the configured port.
func (s *Server) Start() error {
	s.routes()
	addr := fmt.Sprintf(":%s", s.cfg.Port)
	s.log.Infof("starting server on %s", addr)
	return s.engine.Run(addr)
}
