// Package router provides joinrequest module route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pitchside/league/internal/joinrequest/handler"
	"github.com/pitchside/league/internal/joinrequest/repository"
	"github.com/pitchside/league/internal/joinrequest/service"
	"github.com/pitchside/league/internal/notification"
	rosterRepository "github.com/pitchside/league/internal/roster/repository"
)

// RegisterRoutes registers joinrequest module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, dispatcher *notification.Dispatcher) {
	repo := repository.New(db)
	rosterRepo := rosterRepository.New(db)
	svc := service.New(repo, rosterRepo, db, logger, dispatcher)
	h := handler.New(svc, logger)

	r.POST("/teams/:teamId/join", h.SubmitRequest)
	r.PATCH("/teams/:teamId/requests/:requestId", h.ResolveRequest)
	r.GET("/teams/:teamId/requests", h.ListRequests)
}
