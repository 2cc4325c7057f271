package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yojanasetu/portal-go/internal/api/handlers"
	"github.com/yojanasetu/portal-go/internal/api/middleware"
	"github.com/yojanasetu/portal-go/internal/repository"
	"github.com/yojanasetu/portal-go/internal/services"
	"github.com/yojanasetu/portal-go/pkg/types"
)

func RegisterRoutes(r *gin.Engine) {
	repos_instance := repository.New()
	services_instance := services.New(repos_instance)
	handlers_instance := handlers.New(services_instance, r)

	// --- Public routes ---
	r.POST("/register", handlers_instance.User.Register)
	r.POST("/login", handlers_instance.User.Login)
	r.POST("/logout", handlers_instance.User.Logout)
	r.GET("/schemes", handlers_instance.Scheme.ListSchemes)
	r.GET("/schemes/:id", handlers_instance.Scheme.GetScheme)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/notifications", handlers.StreamNotifications(services_instance.Notification))

		profile := auth.Group("/profile")
		{
			profile.GET("", handlers_instance.User.GetProfile)
			profile.PUT("", handlers_instance.User.UpdateProfile)
			profile.PUT("/password", handlers_instance.User.ChangePassword)
		}

		auth.GET("/schemes-eligible", handlers_instance.Scheme.EligibleSchemes)

		saved := auth.Group("/saved-schemes")
		{
			saved.GET("", handlers_instance.Scheme.ListSavedSchemes)
			saved.POST("", handlers_instance.Scheme.SaveScheme)
			saved.DELETE("/:id", handlers_instance.Scheme.UnsaveScheme)
		}

		applications := auth.Group("/applications")
		applications.Use(middleware.RequireRole(types.RoleCitizen))
		{
			applications.POST("", handlers_instance.Application.Submit)
			applications.GET("/my", handlers_instance.Application.MyApplications)
		}

		notifications := auth.Group("/notifications")
		{
			notifications.GET("", handlers_instance.Notification.List)
			notifications.PUT("/:id/read", handlers_instance.Notification.MarkRead)
		}

		coordinator := auth.Group("/coordinator")
		coordinator.Use(middleware.RequireRole(types.RoleCoordinator))
		{
			coordinator.GET("/schemes", handlers_instance.Coordinator.MySchemes)
			coordinator.GET("/dashboard", handlers_instance.Coordinator.Dashboard)
			coordinator.GET("/applications", handlers_instance.Coordinator.ListApplications)
			coordinator.GET("/applications/:id", handlers_instance.Coordinator.GetApplication)
			coordinator.GET("/applications/:id/documents", handlers_instance.Coordinator.DownloadDocument)
			coordinator.PUT("/applications/:id/review", handlers_instance.Coordinator.Review)
		}

		admin := auth.Group("/admin")
		admin.Use(middleware.RequireRole(types.RoleAdmin))
		{
			admin.GET("/stats", handlers_instance.Admin.Stats)
			admin.GET("/users", handlers_instance.Admin.ListUsers)
			admin.GET("/coordinators", handlers_instance.Admin.ListCoordinators)
			admin.PUT("/users/:id/role", handlers_instance.Admin.UpdateUserRole)

			admin.POST("/schemes", handlers_instance.Scheme.CreateScheme)
			admin.PUT("/schemes/:id", handlers_instance.Scheme.UpdateScheme)
			admin.DELETE("/schemes/:id", handlers_instance.Scheme.DeleteScheme)
		}
	}
}
