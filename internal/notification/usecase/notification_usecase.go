package usecase

import (
	"errors"

	"mocni-backend/internal/notification/domain"
	"mocni-backend/internal/notification/repository"
)

// notificationUsecase implements NotificationUsecase interface
type notificationUsecase struct {
	notifRepo repository.NotificationRepository
}

// NewNotificationUsecase creates a new instance of notificationUsecase
func NewNotificationUsecase(notifRepo repository.NotificationRepository) NotificationUsecase {
	return &notificationUsecase{
		notifRepo: notifRepo,
	}
}

func (u *notificationUsecase) AddNotification(userID string, notifType domain.NotificationType, title, message, link string) (*domain.Notification, error) {
	switch notifType {
	case domain.TypeJob, domain.TypeTravel, domain.TypeCommunity, domain.TypeSystem:
	default:
		notifType = domain.TypeSystem
	}

	notification := &domain.Notification{
		UserID:  userID,
		Type:    notifType,
		Title:   title,
		Message: message,
		Link:    link,
	}

	if err := u.notifRepo.Create(notification); err != nil {
		return nil, err
	}

	return notification, nil
}

func (u *notificationUsecase) GetUserNotifications(userID string) ([]*domain.Notification, int64, error) {
	notifications, err := u.notifRepo.FindByUserID(userID)
	if err != nil {
		return nil, 0, err
	}

	unread, err := u.notifRepo.CountUnread(userID)
	if err != nil {
		return nil, 0, err
	}

	return notifications, unread, nil
}

func (u *notificationUsecase) MarkAsRead(userID, notificationID string) error {
	if err := u.checkOwnership(userID, notificationID); err != nil {
		return err
	}
	return u.notifRepo.MarkRead(notificationID)
}

func (u *notificationUsecase) MarkAllAsRead(userID string) error {
	return u.notifRepo.MarkAllRead(userID)
}

func (u *notificationUsecase) RemoveNotification(userID, notificationID string) error {
	if err := u.checkOwnership(userID, notificationID); err != nil {
		return err
	}
	return u.notifRepo.Delete(notificationID)
}

func (u *notificationUsecase) checkOwnership(userID, notificationID string) error {
	notification, err := u.notifRepo.FindByID(notificationID)
	if err != nil {
		return err
	}
	if notification == nil {
		return errors.New("notification not found")
	}
	if notification.UserID != userID {
		return errors.New("unauthorized")
	}
	return nil
}
