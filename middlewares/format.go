package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RespondJSON writes a JSON response to the client.
func RespondJSON(c *gin.Context, data any, status int) {
	c.JSON(status, data)
}

// HttpError logs an error and renders the error page.
func HttpError(c *gin.Context, log *zap.Logger, status int, message string, err error) {
	log.Error(message,
		zap.Int("status", status),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.HTML(status, "error.html", gin.H{
		"Title":   http.StatusText(status),
		"Message": message,
	})
}
