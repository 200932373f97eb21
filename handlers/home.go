package handlers

import (
	"net/http"

	"gameblob/apperr"
	"gameblob/cache"
	"gameblob/db"
	"gameblob/models"
	"gameblob/utils"

	"github.com/gin-gonic/gin"
)

// Index renders the landing page
func Index(c *gin.Context) {
	render(c, http.StatusOK, "index.tmpl", nil)
}

// Home renders the catalog listing, the page the session return path
// defaults to.
func Home(c *gin.Context) {
	var games []models.Game
	if cached, err := cache.GetGames(); err == nil {
		games = cached
	} else {
		if err := db.DB.Find(&games).Error; err != nil {
			c.Error(apperr.Wrap(apperr.KindInternal, "catalog lookup failed", err))
			c.Abort()
			return
		}
		if cache.IsRedisAvailable() {
			if err := cache.SetGames(games); err != nil {
				utils.Log.Debug("failed to cache catalog listing: ", err)
			}
		}
	}

	render(c, http.StatusOK, "home.tmpl", gin.H{
		"games": games,
	})
}
