// Package api exposes the offer engine over HTTP with gin. Callers are
// identified by the X-Owner-ID header; all offer routes are scoped to
// that owner.
package api

import (
	"log"
	"net/http"

	"offerforge/adapters/export"
	"offerforge/app"
	"offerforge/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ownerHeader = "X-Owner-ID"

// Server wires the HTTP surface to the application services
type Server struct {
	router      *gin.Engine
	offers      *app.OfferService
	optimizer   *app.OptimizeService
	performance *app.PerformanceService
	exporter    *export.Exporter
}

// NewServer creates the HTTP server around the application services
func NewServer(offers *app.OfferService, optimizer *app.OptimizeService, performance *app.PerformanceService, exporter *export.Exporter) *Server {
	s := &Server{
		router:      gin.Default(),
		offers:      offers,
		optimizer:   optimizer,
		performance: performance,
		exporter:    exporter,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	api.Use(requireOwner())
	{
		api.POST("/offers", s.handleGenerate)
		api.GET("/offers", s.handleList)
		api.GET("/offers/:id", s.handleGet)
		api.DELETE("/offers/:id", s.handleDelete)
		api.POST("/offers/:id/optimize", s.handleOptimize)
		api.POST("/offers/:id/performance", s.handleRecordPerformance)
		api.GET("/offers/:id/performance", s.handlePerformanceReport)
		api.GET("/offers/:id/export", s.handleExport)
	}
}

// Run starts the HTTP server on the given port
func (s *Server) Run(port string) error {
	log.Printf("[Server] Listening on :%s", port)
	return s.router.Run(":" + port)
}

// Router exposes the gin engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requireOwner parses the owner header and stores the id on the context
func requireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(ownerHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": ownerHeader + " header is required",
			})
			return
		}
		owner, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": ownerHeader + " must be a valid UUID",
			})
			return
		}
		c.Set("owner_id", owner)
		c.Next()
	}
}

func ownerID(c *gin.Context) uuid.UUID {
	return c.MustGet("owner_id").(uuid.UUID)
}

// respondError maps tagged application errors onto HTTP statuses
func respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)

	switch code {
	case errors.CodeValidation:
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": errors.FieldErrors(err),
		})
	case errors.CodeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.CodeGenerationTransport:
		c.JSON(http.StatusBadGateway, gin.H{"error": "generation service unavailable"})
	default:
		log.Printf("[Server] Internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
