package main

import (
	"os"
	"time"

	"academy-app/config"
	"academy-app/database"
	"academy-app/internal/api/email"
	routes "academy-app/internal/app/http"
	"academy-app/internal/infra/razorpay"
	"academy-app/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	logger.Init(os.Getenv("APP_ENV"))
	defer logger.Sync()

	database.InitDB()
	razorpay.Init()
	email.Init()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("CORS_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(logger.RequestLogger())

	routes.RegisterRoutes(r)

	r.Run(":" + config.PORT)
}
