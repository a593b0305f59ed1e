package controllers

import (
	"net/http"

	"ClinicAdmin/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRootRoute registers the home page and the operational endpoints.
func SetupRootRoute(router *gin.Engine, home *handlers.HomeHandler, metrics http.Handler) {
	router.GET("/", home.Home)
	router.GET("/health", home.Health)
	router.GET("/metrics", gin.WrapH(metrics))
}
