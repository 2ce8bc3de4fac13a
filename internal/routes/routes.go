package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campusvoice/backend/internal/controllers"
	"github.com/campusvoice/backend/internal/middleware"
	"github.com/campusvoice/backend/internal/services"
	"github.com/campusvoice/backend/internal/storage"
)

// SetupRoutes wires the store, services and controllers and registers all
// application routes.
func SetupRoutes(r *gin.Engine, database *gorm.DB) {
	store := storage.NewGormStore(database)

	complaintService := services.NewComplaintService(store)
	analyticsService := services.NewAnalyticsService(store)

	authController := controllers.NewAuthController(store)
	userController := controllers.NewUserController(store)
	complaintController := controllers.NewComplaintController(complaintService)
	adminController := controllers.NewAdminController(store, analyticsService)
	categoryController := controllers.NewCategoryController(store)
	contactController := controllers.NewContactController(store)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
		}

		// Anyone may send a contact message; reading them is admin only.
		api.POST("/contact", contactController.Create)

		api.GET("/categories", categoryController.List)

		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			users := protected.Group("/users")
			{
				users.GET("/me", userController.GetProfile)
				users.PUT("/me", userController.UpdateProfile)
			}

			complaints := protected.Group("/complaints")
			{
				complaints.POST("", complaintController.Create)
				complaints.GET("", complaintController.List)
				complaints.GET("/mine", complaintController.ListMine)
				complaints.GET("/:id", complaintController.Get)
				complaints.PUT("/:id", complaintController.Update)
				complaints.POST("/:id/vote", complaintController.Vote)
			}

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				admin.PUT("/complaints/:id/status", complaintController.UpdateStatus)
				admin.GET("/analytics", adminController.GetAnalytics)
				admin.GET("/users", adminController.ListUsers)
				admin.PUT("/users/:id/role", adminController.UpdateUserRole)
				admin.PUT("/users/:id/active", adminController.SetUserActive)
				admin.POST("/categories", categoryController.Create)
				admin.PUT("/categories/:id", categoryController.Rename)
				admin.DELETE("/categories/:id", categoryController.Delete)
				admin.GET("/contacts", contactController.List)
			}
		}
	}
}
