package middleware

import (
	"time"

	"gameblob/models"
	"gameblob/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs all incoming HTTP requests
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		duration := time.Since(startTime)
		statusCode := c.Writer.Status()

		logLevel := logrus.InfoLevel
		if statusCode >= 500 {
			logLevel = logrus.ErrorLevel
		} else if statusCode >= 400 {
			logLevel = logrus.WarnLevel
		}

		fields := logrus.Fields{
			"method":        c.Request.Method,
			"path":          c.Request.URL.Path,
			"status":        statusCode,
			"duration_ms":   duration.Milliseconds(),
			"ip":            c.ClientIP(),
			"response_size": c.Writer.Size(),
		}

		if user, exists := c.Get("user"); exists {
			if u, ok := user.(models.User); ok {
				fields["user_id"] = u.ID
			}
		}

		utils.Log.WithFields(fields).Log(logLevel, "HTTP Request")
	}
}
