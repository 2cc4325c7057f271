package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/yojanasetu/portal-go/internal/api/middleware"
	"github.com/yojanasetu/portal-go/internal/api/routes"
	"github.com/yojanasetu/portal-go/internal/config"
	"github.com/yojanasetu/portal-go/internal/config/db"
	"github.com/yojanasetu/portal-go/internal/domain/application"
	"github.com/yojanasetu/portal-go/internal/domain/notification"
	"github.com/yojanasetu/portal-go/internal/domain/scheme"
	"github.com/yojanasetu/portal-go/internal/domain/user"
	"github.com/yojanasetu/portal-go/internal/storage"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Initialize document storage
	storage.InitMinio()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&scheme.Scheme{},
		&scheme.SavedScheme{},
		&application.Application{},
		&notification.Notification{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
