package handlers

import (
	"net/http"

	"gameblob/apperr"
	"gameblob/db"
	"gameblob/middleware"
	"gameblob/models"

	"github.com/gin-gonic/gin"
)

// Profile renders the signed-in user's purchases and their three most recent
// comments. The :user path segment is cosmetic; the data always belongs to
// the session's user.
func Profile(c *gin.Context) {
	middleware.RememberReturn(c)
	user := currentUser(c)

	var purchases []models.Purchase
	if err := db.DB.Preload("Game").
		Where("user_id = ?", user.ID).Find(&purchases).Error; err != nil {
		c.Error(apperr.Wrap(apperr.KindInternal, "purchase lookup failed", err))
		c.Abort()
		return
	}

	var comments []models.Comment
	if err := db.DB.Preload("Game").Preload("User").
		Where("user_id = ?", user.ID).
		Order("id DESC").Limit(3).Find(&comments).Error; err != nil {
		c.Error(apperr.Wrap(apperr.KindInternal, "comment lookup failed", err))
		c.Abort()
		return
	}

	render(c, http.StatusOK, "profile.tmpl", gin.H{
		"uname":     user.Username,
		"purchased": purchases,
		"comments":  comments,
	})
}
