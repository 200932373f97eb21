package main

import (
	"log"
	"os"

	"gameblob/cache"
	"gameblob/db"
	"gameblob/handlers"
	"gameblob/middleware"
	"gameblob/monitoring"
	"gameblob/payment"
	"gameblob/routes"
	"gameblob/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found")
		}
	}

	utils.InitLogger()

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "gameblobisawesome"
		utils.Log.Warn("SESSION_SECRET not set, using the development default")
	}

	db.InitDB()

	if err := cache.InitRedis(); err != nil {
		utils.Log.Warn("Redis unavailable, running without cache: ", err)
	}

	monitoring.InitMetrics()

	handlers.Gateway = payment.NewClient(
		os.Getenv("RAZORPAY_KEY_ID"),
		os.Getenv("RAZORPAY_KEY_SECRET"),
	)
	handlers.TokenSecret = secret

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeaders())
	r.Use(monitoring.PrometheusMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}))

	r.Use(middleware.Session(middleware.NewSessionStore(secret)))
	r.Use(middleware.CurrentUser())
	r.Use(middleware.ErrorBoundary())

	r.LoadHTMLGlob("views/*.tmpl")
	r.Static("/assets", "./views/assets")

	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	utils.Log.Info("GameBlob servers have started on http://localhost:" + port + " !!")
	if err := r.Run(":" + port); err != nil {
		utils.Log.Fatal("Failed to start server: ", err)
	}
}
