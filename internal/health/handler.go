// Package health provides the liveness banner and the database-backed
// health check endpoint.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pokewiki/pokewiki/internal/database/database"
)

// Banner is served on the root route so a browser hit confirms the
// backend is up.
const Banner = "PokéWiki Backend is running!"

// Handler handles liveness and health check requests.
type Handler struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new health handler instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
	}
}

// Response represents the health check response.
type Response struct {
	Status string `json:"status"`
}

// RegisterRoutes registers the public liveness and health routes.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Live)
	r.GET("/health", h.Check)
}

// Live handles GET / requests.
func (h *Handler) Live(c *gin.Context) {
	c.String(http.StatusOK, Banner)
}

// Check handles GET /health requests with a database ping.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.logger.Warnw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, Response{Status: "unavailable"})
		return
	}

	c.JSON(http.StatusOK, Response{Status: "ok"})
}
