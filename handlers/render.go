package handlers

import (
	"net/http"
	"strconv"

	"ClinicAdmin/middlewares"
	"ClinicAdmin/repositories"
	"ClinicAdmin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// render executes a page template with the page title added to data.
func render(c *gin.Context, status int, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	c.HTML(status, name, data)
}

// pathID parses a numeric path parameter and answers 400 when it is not one.
func pathID(c *gin.Context, log *zap.Logger, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		middlewares.HttpError(c, log, http.StatusBadRequest, "Invalid "+param, err)
		return 0, false
	}
	return id, true
}

// failureStatus maps a write error to the status of the re-rendered page.
func failureStatus(err error) int {
	switch {
	case utils.IsValidationError(err):
		return http.StatusBadRequest
	case repositories.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}
