package repository

import "mocni-backend/internal/notification/domain"

// NotificationRepository defines the interface for notification feed data access
type NotificationRepository interface {
	// Create appends a new entry to a user's feed
	Create(notification *domain.Notification) error

	// FindByID finds a single entry by ID
	FindByID(id string) (*domain.Notification, error)

	// FindByUserID returns a user's feed, newest first
	FindByUserID(userID string) ([]*domain.Notification, error)

	// CountUnread returns the number of unread entries for a user
	CountUnread(userID string) (int64, error)

	// MarkRead marks one entry as read
	MarkRead(id string) error

	// MarkAllRead marks every unread entry of a user as read
	MarkAllRead(userID string) error

	// Delete removes an entry
	Delete(id string) error
}
