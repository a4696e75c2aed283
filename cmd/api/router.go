package api

import (
	"net/http"

	"mocni-backend/internal/auth/delivery"
	authUsecase "mocni-backend/internal/auth/usecase"
	healthDelivery "mocni-backend/internal/health/delivery"
	healthUsecase "mocni-backend/internal/health/usecase"
	notifDelivery "mocni-backend/internal/notification/delivery"
	notifUsecase "mocni-backend/internal/notification/usecase"
	"mocni-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, medicationUc healthUsecase.MedicationUsecase, notificationUc notifUsecase.NotificationUsecase, cfg *config.Config) {
	authHandler := delivery.NewAuthHandler(authUc)
	medicationHandler := healthDelivery.NewMedicationHandler(medicationUc)
	notificationHandler := notifDelivery.NewNotificationHandler(notificationUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "mocni60plus"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", delivery.AuthMiddleware(authUc), authHandler.Me)
		}

		// FCM routes (protected)
		fcm := api.Group("/fcm")
		fcm.Use(delivery.AuthMiddleware(authUc))
		{
			fcm.POST("/register", authHandler.RegisterFCMToken)
			fcm.DELETE("/:token", authHandler.UnregisterFCMToken)
		}

		// Medication routes (protected) - health UI backend
		medications := api.Group("/medications")
		medications.Use(delivery.AuthMiddleware(authUc))
		{
			medications.GET("", medicationHandler.GetMedications)
			medications.POST("", medicationHandler.CreateMedication)
			medications.GET("/:id", medicationHandler.GetMedicationByID)
			medications.PUT("/:id", medicationHandler.UpdateMedication)
			medications.DELETE("/:id", medicationHandler.DeleteMedication)
		}

		// Notification feed routes (protected)
		notifications := api.Group("/notifications")
		notifications.Use(delivery.AuthMiddleware(authUc))
		{
			notifications.GET("", notificationHandler.GetNotifications)
			notifications.POST("", notificationHandler.AddNotification)
			notifications.PATCH("/:id/read", notificationHandler.MarkAsRead)
			notifications.POST("/read-all", notificationHandler.MarkAllAsRead)
			notifications.DELETE("/:id", notificationHandler.RemoveNotification)
		}
	}
}
