package usecase

import "mocni-backend/internal/notification/domain"

// NotificationUsecase defines the interface for notification feed business logic
type NotificationUsecase interface {
	// AddNotification appends an entry to a user's feed
	AddNotification(userID string, notifType domain.NotificationType, title, message, link string) (*domain.Notification, error)

	// GetUserNotifications returns a user's feed with its unread count
	GetUserNotifications(userID string) ([]*domain.Notification, int64, error)

	// MarkAsRead marks one entry as read (with ownership check)
	MarkAsRead(userID, notificationID string) error

	// MarkAllAsRead marks every entry of a user as read
	MarkAllAsRead(userID string) error

	// RemoveNotification deletes an entry (with ownership check)
	RemoveNotification(userID, notificationID string) error
}
