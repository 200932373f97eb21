package handlers

import (
	"errors"
	"net/http"

	"gameblob/apperr"
	"gameblob/db"
	"gameblob/middleware"
	"gameblob/models"
	"gameblob/monitoring"
	"gameblob/payment"
	"gameblob/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Every title sells for a flat 499 INR, expressed in paise for the gateway.
const purchaseAmountPaise = 49900

// CreateOrder asks the gateway for a payment order and hands the checkout
// widget what it needs. Gateway failures surface as an explicit 502 instead
// of being swallowed.
func CreateOrder(c *gin.Context) {
	gameID, ok := resolveGameID(c, c.PostForm("game_token"))
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no game selected"})
		return
	}

	order, err := Gateway.CreateOrder(c.Request.Context(), payment.OrderRequest{
		AmountPaise: purchaseAmountPaise,
		Currency:    "INR",
		Receipt:     uuid.NewString(),
		Capture:     true,
	})
	if err != nil {
		utils.Log.Error("order creation failed: ", err)
		monitoring.PaymentOrdersTotal.WithLabelValues("failed").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment gateway unavailable"})
		return
	}

	monitoring.PaymentOrdersTotal.WithLabelValues("created").Inc()
	c.JSON(http.StatusOK, gin.H{
		"amount":   order.AmountPaise,
		"currency": order.Currency,
		"id":       order.ID,
		"gid":      gameID,
	})
}

// PaymentSuccessInput - callback payload the checkout widget posts back
type PaymentSuccessInput struct {
	OrderID   string `form:"razorpay_order_id" validate:"required"`
	PaymentID string `form:"razorpay_payment_id" validate:"required"`
	Signature string `form:"razorpay_signature" validate:"required"`
	GameToken string `form:"game_token"`
}

// PaymentSuccess reconciles a checkout success callback into a purchase
// record and the buyer's owned list. Unlike the behavior this replaces, the
// gateway signature is verified before anything is written, and a duplicate
// callback for the same (user, game) pair records nothing new.
func PaymentSuccess(c *gin.Context) {
	var input PaymentSuccessInput
	if err := c.ShouldBind(&input); err != nil {
		c.Error(apperr.Wrap(apperr.KindBadRequest, "invalid payment callback", err))
		c.Abort()
		return
	}
	if err := utils.ValidateStruct(&input); err != nil {
		c.Error(apperr.Wrap(apperr.KindBadRequest, "incomplete payment callback", err))
		c.Abort()
		return
	}

	if !Gateway.VerifySignature(input.OrderID, input.PaymentID, input.Signature) {
		c.Error(apperr.New(apperr.KindBadRequest, "payment signature verification failed"))
		c.Abort()
		return
	}

	gameID, ok := resolveGameID(c, input.GameToken)
	if !ok {
		c.Error(apperr.Validation("payment callback without a game reference"))
		c.Abort()
		return
	}

	var game models.Game
	if err := db.DB.First(&game, gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Error(apperr.NotFound("purchased game no longer exists"))
		} else {
			c.Error(apperr.Wrap(apperr.KindInternal, "game lookup failed", err))
		}
		c.Abort()
		return
	}

	user := currentUser(c)

	var existing models.Purchase
	err := db.DB.Where("user_id = ? AND game_id = ?", user.ID, gameID).First(&existing).Error
	if err == nil {
		middleware.Flash(c, middleware.FlashSuccess, "You already own "+game.Name)
		c.Redirect(http.StatusFound, middleware.ReturnPath(c))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.Error(apperr.Wrap(apperr.KindInternal, "purchase lookup failed", err))
		c.Abort()
		return
	}

	purchaseRec := models.Purchase{
		UserID:    user.ID,
		GameID:    gameID,
		OrderID:   input.OrderID,
		PaymentID: input.PaymentID,
	}
	if err := db.DB.Create(&purchaseRec).Error; err != nil {
		c.Error(apperr.Wrap(apperr.KindInternal, "failed to record purchase", err))
		c.Abort()
		return
	}

	if err := db.DB.Model(&user).Association("OwnedGames").Append(&game); err != nil {
		c.Error(apperr.Wrap(apperr.KindInternal, "failed to update owned games", err))
		c.Abort()
		return
	}

	monitoring.PurchasesTotal.Inc()
	middleware.Flash(c, middleware.FlashSuccess, game.Name+" is now in your library!")
	c.Redirect(http.StatusFound, middleware.ReturnPath(c))
}
