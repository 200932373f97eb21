package handlers

import (
	"net/http"

	"gameblob/cache"
	"gameblob/db"

	"github.com/gin-gonic/gin"
)

// Healthz reports whether the database and cache are reachable.
func Healthz(c *gin.Context) {
	dbOK := false
	if db.DB != nil {
		if sqlDB, err := db.DB.DB(); err == nil && sqlDB.Ping() == nil {
			dbOK = true
		}
	}

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"database": dbOK,
		"redis":    cache.IsRedisAvailable(),
	})
}
