package handlers

import (
	"net/http"

	"gameblob/db"
	"gameblob/middleware"
	"gameblob/models"
	"gameblob/utils"

	"github.com/gin-gonic/gin"
)

// AddFeedback persists an anonymous feedback submission. The external
// contract is "always redirects to /"; a submission that fails validation
// flashes the problem and creates no record.
func AddFeedback(c *gin.Context) {
	var input models.FeedbackInput
	if err := c.ShouldBind(&input); err != nil {
		middleware.Flash(c, middleware.FlashError, "Invalid feedback form")
		c.Redirect(http.StatusFound, "/")
		return
	}
	if err := utils.ValidateStruct(&input); err != nil {
		middleware.Flash(c, middleware.FlashError, utils.ValidationMessage(err))
		c.Redirect(http.StatusFound, "/")
		return
	}

	fb := models.Feedback{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}
	if err := db.DB.Create(&fb).Error; err != nil {
		utils.Log.Error("failed to store feedback: ", err)
		middleware.Flash(c, middleware.FlashError, "Could not store your feedback, try again")
		c.Redirect(http.StatusFound, "/")
		return
	}

	middleware.Flash(c, middleware.FlashSuccess, "Thanks for the feedback!")
	c.Redirect(http.StatusFound, "/")
}
