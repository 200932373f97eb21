package handlers

import (
	"gameblob/payment"

	"github.com/gin-gonic/gin"
)

// Wired up in main before the router starts serving.
var (
	Gateway     *payment.Client
	TokenSecret string
)

// render merges the session-derived context (current user, flash messages)
// into every HTML response.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if user, ok := c.Get("user"); ok {
		data["loggedInUser"] = user
	}
	if success, ok := c.Get("flashSuccess"); ok {
		data["success"] = success
	}
	if flashErr, ok := c.Get("flashError"); ok {
		data["error"] = flashErr
	}
	c.HTML(status, name, data)
}
