package handlers

import (
	"net/http"

	"gameblob/apperr"
	"gameblob/cache"
	"gameblob/db"
	"gameblob/middleware"
	"gameblob/models"
	"gameblob/utils"

	"github.com/gin-gonic/gin"
)

// CreateComment persists a comment for the game the submitted form refers to
// and bounces back to the page the visitor came from.
func CreateComment(c *gin.Context) {
	var input models.CommentInput
	if err := c.ShouldBind(&input); err != nil {
		middleware.Flash(c, middleware.FlashError, "Invalid comment form")
		c.Redirect(http.StatusFound, middleware.ReturnPath(c))
		return
	}
	if err := utils.ValidateStruct(&input); err != nil {
		middleware.Flash(c, middleware.FlashError, utils.ValidationMessage(err))
		c.Redirect(http.StatusFound, middleware.ReturnPath(c))
		return
	}

	gameID, ok := resolveGameID(c, input.GameToken)
	if !ok {
		c.Error(apperr.Validation("comment submitted without a game reference"))
		c.Abort()
		return
	}

	user := currentUser(c)
	comment := models.Comment{
		Body:   input.Body,
		UserID: user.ID,
		GameID: gameID,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		c.Error(apperr.Wrap(apperr.KindInternal, "failed to create comment", err))
		c.Abort()
		return
	}

	// drop the cached count before the redirect lands back on the game page
	if cache.IsRedisAvailable() {
		if err := cache.InvalidateCommentCount(gameID); err != nil {
			utils.Log.Warn("failed to invalidate comment count: ", err)
		}
	}

	c.Redirect(http.StatusFound, middleware.ReturnPath(c))
}
