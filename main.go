package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ChatAT/controllers"
	"github.com/ChatAT/initializers"
	"github.com/ChatAT/middlewares"
	"github.com/ChatAT/services"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectDB()
	services.InitEmailService()
}

func main() {
	router := gin.Default()

	// public form endpoints
	router.POST("/prayer-request", controllers.SubmitPrayerRequest)
	router.POST("/contact", controllers.SubmitContact)

	router.GET("/health", controllers.HealthCheck)

	router.POST("/admin/login", controllers.AdminLogin)

	// admin listing routes
	auth := router.Group("/")
	auth.Use(middlewares.CheckAuth)
	auth.Use(middlewares.CheckAdmin)
	{
		auth.GET("/prayer-requests", controllers.GetPrayerRequests)
		auth.GET("/contact-submissions", controllers.GetContactSubmissions)
	}

	if err := router.Run(); err != nil {
		log.Fatal(err)
	}
}
