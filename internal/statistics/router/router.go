// Package router provides statistics module route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pitchside/league/internal/statistics/handler"
	"github.com/pitchside/league/internal/statistics/repository"
	"github.com/pitchside/league/internal/statistics/service"
)

// RegisterRoutes registers statistics module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/statistics/teams", h.GetTeamStatistics)
}
