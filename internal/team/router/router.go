// Package router provides team module route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pokewiki/pokewiki/internal/middleware"
	"github.com/pokewiki/pokewiki/internal/team/handler"
	"github.com/pokewiki/pokewiki/internal/team/repository"
	"github.com/pokewiki/pokewiki/internal/team/service"
)

// RegisterRoutes wires the team module layers and registers its routes.
// Every route sits behind the credential-verifier middleware.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, cat service.Catalog, jwtSecret string, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, cat, logger)
	h := handler.New(svc, logger)

	teams := r.Group("/api/teams", middleware.Auth(jwtSecret))
	teams.GET("", h.List)
	teams.POST("", h.Create)
	teams.DELETE("/:id", h.Delete)
	teams.PUT("/:id", h.ReplaceMembers)
}
