package api

import (
	authUsecase "mocni-backend/internal/auth/usecase"
	healthUsecase "mocni-backend/internal/health/usecase"
	notifUsecase "mocni-backend/internal/notification/usecase"
	"mocni-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase         authUsecase.AuthUsecase
	medicationUsecase   healthUsecase.MedicationUsecase
	notificationUsecase notifUsecase.NotificationUsecase
	config              *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, medicationUc healthUsecase.MedicationUsecase, notificationUc notifUsecase.NotificationUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:         authUc,
		medicationUsecase:   medicationUc,
		notificationUsecase: notificationUc,
		config:              cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.medicationUsecase, h.notificationUsecase, h.config)

	return r.Run(addr)
}
