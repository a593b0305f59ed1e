package handlers

import (
	"net/http"

	"ClinicAdmin/middlewares"
	"ClinicAdmin/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	service *services.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service *services.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{service: service, log: log}
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, h.log, http.StatusInternalServerError, "Failed to load dashboard", err)
		return
	}
	render(c, http.StatusOK, "dashboard.html", "Dashboard", gin.H{"Stats": stats})
}
