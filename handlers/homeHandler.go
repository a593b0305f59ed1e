package handlers

import (
	"net/http"

	"ClinicAdmin/database"
	"ClinicAdmin/middlewares"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type HomeHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewHomeHandler(db *gorm.DB, log *zap.Logger) *HomeHandler {
	return &HomeHandler{db: db, log: log}
}

func (h *HomeHandler) Home(c *gin.Context) {
	render(c, http.StatusOK, "home.html", "Clinic Admin", nil)
}

// Health reports liveness together with database reachability.
func (h *HomeHandler) Health(c *gin.Context) {
	if err := database.Ping(c.Request.Context(), h.db); err != nil {
		h.log.Warn("health check failed", zap.Error(err))
		middlewares.RespondJSON(c, gin.H{"status": "unavailable", "database": err.Error()}, http.StatusServiceUnavailable)
		return
	}
	middlewares.RespondJSON(c, gin.H{"status": "ok", "database": "ok"}, http.StatusOK)
}
