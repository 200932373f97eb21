package middleware

import (
	"net/http"
	"strings"

	"gameblob/apperr"
	"gameblob/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorBoundary intercepts errors the handlers attached to the context and
// renders the uniform error view. Handlers signal failures with
// c.Error(apperr.*); raw error detail reaches the logs only.
func ErrorBoundary() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := http.StatusInternalServerError
		message := "Something Went Wrong Internally"
		if e, ok := apperr.As(err); ok {
			status = e.Status()
			message = e.PublicMessage()
		}

		utils.Log.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": status,
			"error":  err.Error(),
		}).Error("Request error")

		if c.Writer.Written() {
			return
		}
		if wantsJSON(c) {
			c.JSON(status, gin.H{"error": message})
			return
		}
		c.HTML(status, "error.tmpl", gin.H{
			"statusCode": status,
			"message":    message,
		})
	}
}

// wantsJSON distinguishes API callers from browser navigation: the admin
// group is JSON-only, everything else follows the Accept header.
func wantsJSON(c *gin.Context) bool {
	if strings.HasPrefix(c.Request.URL.Path, "/admin") {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}

// NotFoundHandler renders the 404 view for unmatched routes.
func NotFoundHandler(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error.tmpl", gin.H{
		"statusCode": http.StatusNotFound,
		"message":    "Page Not Found",
	})
}
