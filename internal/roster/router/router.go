// Package router provides roster module route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pitchside/league/internal/notification"
	"github.com/pitchside/league/internal/roster/handler"
	"github.com/pitchside/league/internal/roster/repository"
	"github.com/pitchside/league/internal/roster/service"
)

// RegisterRoutes registers roster module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, dispatcher *notification.Dispatcher) {
	repo := repository.New(db)
	svc := service.New(repo, db, logger, dispatcher)
	h := handler.New(svc, logger)

	r.POST("/teams/:teamId/players", h.AddPlayer)
	r.GET("/teams/:teamId/players", h.GetRoster)
	r.PATCH("/teams/:teamId/players/:playerId", h.UpdateRole)
	r.DELETE("/teams/:teamId/players/:playerId", h.RemovePlayer)
}
