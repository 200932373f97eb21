package handlers

import (
	"net/http"

	"gameblob/db"
	"gameblob/middleware"
	"gameblob/models"
	"gameblob/monitoring"
	"gameblob/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.tmpl", nil)
}

func Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		middleware.Flash(c, middleware.FlashError, "Invalid login form")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	if err := utils.ValidateStruct(&input); err != nil {
		middleware.Flash(c, middleware.FlashError, utils.ValidationMessage(err))
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var user models.User
	if err := db.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		monitoring.AuthenticationAttempts.WithLabelValues("failure").Inc()
		middleware.Flash(c, middleware.FlashError, "Invalid username or password")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		monitoring.AuthenticationAttempts.WithLabelValues("failure").Inc()
		middleware.Flash(c, middleware.FlashError, "Invalid username or password")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	s := sessions.Default(c)
	s.Set(middleware.KeyUserID, user.ID)
	if err := s.Save(); err != nil {
		utils.Log.Error("failed to save session after login: ", err)
	}

	monitoring.AuthenticationAttempts.WithLabelValues("success").Inc()
	middleware.Flash(c, middleware.FlashSuccess, "Welcome back, "+user.Username+"!")
	c.Redirect(http.StatusFound, middleware.ReturnPath(c))
}

func ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.tmpl", nil)
}

func Register(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		middleware.Flash(c, middleware.FlashError, "Invalid registration form")
		c.Redirect(http.StatusFound, "/register")
		return
	}
	if err := utils.ValidateStruct(&input); err != nil {
		middleware.Flash(c, middleware.FlashError, utils.ValidationMessage(err))
		c.Redirect(http.StatusFound, "/register")
		return
	}

	var existing models.User
	if err := db.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		middleware.Flash(c, middleware.FlashError, "Username already taken")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Log.Error("failed to hash password: ", err)
		middleware.Flash(c, middleware.FlashError, "Registration failed, try again")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	user := models.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         "user",
	}
	if err := db.DB.Create(&user).Error; err != nil {
		utils.Log.Error("failed to create user: ", err)
		middleware.Flash(c, middleware.FlashError, "Registration failed, try again")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	s := sessions.Default(c)
	s.Set(middleware.KeyUserID, user.ID)
	if err := s.Save(); err != nil {
		utils.Log.Error("failed to save session after register: ", err)
	}

	middleware.Flash(c, middleware.FlashSuccess, "Welcome to GameBlob, "+user.Username+"!")
	c.Redirect(http.StatusFound, "/home")
}

func Logout(c *gin.Context) {
	s := sessions.Default(c)
	s.Delete(middleware.KeyUserID)
	s.Delete(middleware.KeyGameID)
	if err := s.Save(); err != nil {
		utils.Log.Error("failed to save session after logout: ", err)
	}
	c.Redirect(http.StatusFound, "/")
}

// currentUser pulls the user the session middleware resolved. Only call it
// behind LoginRequired.
func currentUser(c *gin.Context) models.User {
	return c.MustGet("user").(models.User)
}
