// Package router provides team module route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pitchside/league/internal/team/handler"
	"github.com/pitchside/league/internal/team/repository"
	"github.com/pitchside/league/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.POST("/teams", h.CreateTeam)
	r.GET("/teams", h.ListTeams)
	r.GET("/teams/:teamId", h.GetTeam)
}
