package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gameblob/apperr"
	"gameblob/cache"
	"gameblob/db"
	"gameblob/middleware"
	"gameblob/models"
	"gameblob/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GameDetail renders a game page with its comments. The page is also the
// entry point of the comment and purchase flows: it records the return path,
// stashes the game id in the session, and signs a game token the rendered
// forms carry back.
func GameDetail(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("gameid"), 10, 64)
	if err != nil {
		c.Error(apperr.Wrap(apperr.KindNotFound, "malformed game id "+c.Param("gameid"), err))
		c.Abort()
		return
	}
	gameID := uint(id64)

	var game *models.Game
	if cached, cacheErr := cache.GetGame(gameID); cacheErr == nil {
		game = cached
	} else {
		var g models.Game
		if err := db.DB.First(&g, gameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.Error(apperr.NotFound("game " + c.Param("gameid") + " does not exist"))
			} else {
				c.Error(apperr.Wrap(apperr.KindInternal, "game lookup failed", err))
			}
			c.Abort()
			return
		}
		game = &g
		if cache.IsRedisAvailable() {
			if err := cache.SetGame(game); err != nil {
				utils.Log.Debug("failed to cache game: ", err)
			}
		}
	}

	var comments []models.Comment
	if err := db.DB.Preload("User").Preload("Game").
		Where("game_id = ?", gameID).Find(&comments).Error; err != nil {
		c.Error(apperr.Wrap(apperr.KindInternal, "comment lookup failed", err))
		c.Abort()
		return
	}

	count, cacheErr := cache.GetCommentCount(gameID)
	if cacheErr != nil {
		db.DB.Model(&models.Comment{}).Where("game_id = ?", gameID).Count(&count)
		if cache.IsRedisAvailable() {
			cache.SetCommentCount(gameID, count)
		}
	}

	s := sessions.Default(c)
	s.Set(middleware.KeyReturn, c.Request.URL.RequestURI())
	s.Set(middleware.KeyGameID, gameID)
	if err := s.Save(); err != nil {
		utils.Log.Warn("failed to save session: ", err)
	}

	gameToken, err := utils.SignGameToken(gameID, TokenSecret)
	if err != nil {
		c.Error(apperr.Wrap(apperr.KindInternal, "failed to sign game token", err))
		c.Abort()
		return
	}

	render(c, http.StatusOK, "game.tmpl", gin.H{
		"game":      game,
		"comments":  comments,
		"count":     count,
		"gameToken": gameToken,
		"rzpKey":    Gateway.KeyID(),
	})
}

// resolveGameID finds the game the submission refers to: the signed form
// token wins, the session stash is the fallback for forms rendered before a
// deploy that did not carry the token.
func resolveGameID(c *gin.Context, formToken string) (uint, bool) {
	if formToken != "" {
		if gid, err := utils.ParseGameToken(formToken, TokenSecret); err == nil {
			return gid, true
		}
		utils.Log.Warn("rejected invalid game token")
	}
	s := sessions.Default(c)
	if gid, ok := s.Get(middleware.KeyGameID).(uint); ok && gid != 0 {
		return gid, true
	}
	return 0, false
}
