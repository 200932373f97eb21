package routes

import (
	"gameblob/handlers"
	"gameblob/middleware"
	"gameblob/monitoring"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ----------------------
	// Public storefront
	// ----------------------
	r.GET("/", handlers.Index)
	r.GET("/home", handlers.Home)
	r.GET("/game/:gameid", handlers.GameDetail)
	r.POST("/addFeedback", handlers.AddFeedback)

	// ----------------------
	// Auth pages
	// ----------------------
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/register", handlers.ShowRegister)
	r.POST("/register", handlers.Register)
	r.POST("/logout", handlers.Logout)

	// ----------------------
	// Authenticated storefront
	// ----------------------
	authed := r.Group("/").Use(middleware.LoginRequired())
	{
		authed.POST("/comments", handlers.CreateComment)
		authed.GET("/user/:user", handlers.Profile)
		authed.POST("/razorpay", handlers.CreateOrder)
		authed.POST("/razorpay/success", handlers.PaymentSuccess)
	}

	// ----------------------
	// Back-office API
	// ----------------------
	admin := r.Group("/admin").Use(middleware.LoginRequired(), handlers.RequireAdmin())
	{
		admin.GET("/stats", handlers.GetDashboardStats)
		admin.GET("/feedback", handlers.ListFeedback)
		admin.POST("/games", handlers.CreateGame)
		admin.PUT("/games/:id", handlers.UpdateGame)
		admin.DELETE("/games/:id", handlers.DeleteGame)
	}

	// ----------------------
	// Operational endpoints
	// ----------------------
	r.GET("/healthz", handlers.Healthz)
	r.GET("/metrics", monitoring.PrometheusHandler())

	// Unmatched routes fall through to the generic 404 view
	r.NoRoute(middleware.NotFoundHandler)
}
