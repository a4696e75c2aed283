package main

import (
	"log"

	api "mocni-backend/cmd/api"
	authdomain "mocni-backend/internal/auth/domain"
	authRepo "mocni-backend/internal/auth/repository"
	authUsecase "mocni-backend/internal/auth/usecase"
	healthdomain "mocni-backend/internal/health/domain"
	healthRepo "mocni-backend/internal/health/repository"
	"mocni-backend/internal/health/scheduler"
	healthUsecase "mocni-backend/internal/health/usecase"
	notifdomain "mocni-backend/internal/notification/domain"
	notifRepo "mocni-backend/internal/notification/repository"
	notifUsecase "mocni-backend/internal/notification/usecase"
	"mocni-backend/pkg/config"
	"mocni-backend/pkg/database"
	"mocni-backend/pkg/fcm"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}, &authdomain.FCMToken{}, &healthdomain.Medication{}, &notifdomain.Notification{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	fcmTokenRepo := authRepo.NewFCMTokenRepository(db)
	medicationRepo := healthRepo.NewGormMedicationRepository(db)
	notificationRepo := notifRepo.NewGormNotificationRepository(db)

	// Initialize FCM client (optional, the API works without it but the
	// reminder scheduler stays disabled)
	var fcmClient *fcm.Client
	if cfg.FirebaseCredentials != "" {
		fcmClient, err = fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client (push notifications disabled): %v", err)
		}
	} else {
		log.Println("[WARN] No Firebase credentials configured, FCM disabled")
	}

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, fcmTokenRepo, cfg)
	medicationUsecaseInstance := healthUsecase.NewMedicationUsecase(medicationRepo)
	notificationUsecaseInstance := notifUsecase.NewNotificationUsecase(notificationRepo)

	// Start the medication reminder scheduler
	var sender scheduler.PushSender
	if fcmClient != nil {
		sender = fcmClient
	}
	reminderScheduler, err := scheduler.NewMedicationReminderScheduler(medicationRepo, userRepo, fcmTokenRepo, sender)
	if err != nil {
		log.Fatal("Failed to initialize reminder scheduler:", err)
	}
	reminderScheduler.Start()
	defer reminderScheduler.Stop()

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, medicationUsecaseInstance, notificationUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
