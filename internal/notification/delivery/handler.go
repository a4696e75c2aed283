package delivery

import (
	"net/http"

	"mocni-backend/internal/notification/domain"
	"mocni-backend/internal/notification/usecase"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles notification feed HTTP requests
type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
	}
}

// AddNotificationRequest represents the request body for adding a feed entry
type AddNotificationRequest struct {
	Type    string `json:"type"`
	Title   string `json:"title" binding:"required"`
	Message string `json:"message"`
	Link    string `json:"link"`
}

// GetNotifications returns the authenticated user's feed with unread count
// GET /api/notifications
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userID := c.GetString("userID")

	notifications, unread, err := h.notificationUsecase.GetUserNotifications(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// AddNotification appends an entry to the authenticated user's feed
// POST /api/notifications
func (h *NotificationHandler) AddNotification(c *gin.Context) {
	userID := c.GetString("userID")

	var req AddNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notification, err := h.notificationUsecase.AddNotification(userID, domain.NotificationType(req.Type), req.Title, req.Message, req.Link)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, notification)
}

// MarkAsRead marks one entry as read
// PATCH /api/notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	userID := c.GetString("userID")
	notificationID := c.Param("id")

	if err := h.notificationUsecase.MarkAsRead(userID, notificationID); err != nil {
		if err.Error() == "notification not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		if err.Error() == "unauthorized" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "marked as read"})
}

// MarkAllAsRead marks every entry of the authenticated user as read
// POST /api/notifications/read-all
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.notificationUsecase.MarkAllAsRead(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "all marked as read"})
}

// RemoveNotification deletes a feed entry
// DELETE /api/notifications/:id
func (h *NotificationHandler) RemoveNotification(c *gin.Context) {
	userID := c.GetString("userID")
	notificationID := c.Param("id")

	if err := h.notificationUsecase.RemoveNotification(userID, notificationID); err != nil {
		if err.Error() == "notification not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		if err.Error() == "unauthorized" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notification removed"})
}
