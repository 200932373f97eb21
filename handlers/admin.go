package handlers

import (
	"net/http"

	"gameblob/cache"
	"gameblob/db"
	"gameblob/models"
	"gameblob/utils"

	"github.com/gin-gonic/gin"
)

// The admin group is a JSON API consumed by the back-office tooling rather
// than the server-rendered storefront.

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user.Role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admins only"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func CreateGame(c *gin.Context) {
	var input models.GameInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ValidationMessage(err)})
		return
	}

	game := models.Game{
		Name:        input.Name,
		Description: input.Description,
		PricePaise:  input.PricePaise,
		Image:       input.Image,
		Developer:   input.Developer,
	}
	if err := db.DB.Create(&game).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	go func(gid uint) {
		if cache.IsRedisAvailable() {
			cache.InvalidateGame(gid)
		}
	}(game.ID)

	c.JSON(http.StatusOK, game)
}

func UpdateGame(c *gin.Context) {
	id := c.Param("id")
	var game models.Game
	if err := db.DB.First(&game, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	var input models.GameInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ValidationMessage(err)})
		return
	}

	game.Name = input.Name
	game.Description = input.Description
	game.PricePaise = input.PricePaise
	game.Image = input.Image
	game.Developer = input.Developer
	if err := db.DB.Save(&game).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update game"})
		return
	}

	go func(gid uint) {
		if cache.IsRedisAvailable() {
			cache.InvalidateGame(gid)
		}
	}(game.ID)

	c.JSON(http.StatusOK, game)
}

func DeleteGame(c *gin.Context) {
	id := c.Param("id")
	var game models.Game
	if err := db.DB.First(&game, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	if err := db.DB.Delete(&game).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
		return
	}

	go func(gid uint) {
		if cache.IsRedisAvailable() {
			cache.InvalidateGame(gid)
		}
	}(game.ID)

	c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
}

func ListFeedback(c *gin.Context) {
	var feedback []models.Feedback
	if err := db.DB.Order("id DESC").Find(&feedback).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedback"})
		return
	}
	c.JSON(http.StatusOK, feedback)
}

// GetDashboardStats reports storefront counters for the back office.
func GetDashboardStats(c *gin.Context) {
	var totalUsers, totalGames, totalComments, totalPurchases, totalFeedback int64

	db.DB.Model(&models.User{}).Count(&totalUsers)
	db.DB.Model(&models.Game{}).Count(&totalGames)
	db.DB.Model(&models.Comment{}).Count(&totalComments)
	db.DB.Model(&models.Purchase{}).Count(&totalPurchases)
	db.DB.Model(&models.Feedback{}).Count(&totalFeedback)

	// flat catalog price, so revenue is a straight multiple
	revenuePaise := totalPurchases * purchaseAmountPaise

	c.JSON(http.StatusOK, gin.H{
		"statistics": gin.H{
			"total_users":     totalUsers,
			"total_games":     totalGames,
			"total_comments":  totalComments,
			"total_purchases": totalPurchases,
			"total_feedback":  totalFeedback,
			"revenue_paise":   revenuePaise,
		},
	})
}
