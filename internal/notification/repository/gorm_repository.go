package repository

import (
	"errors"
	"time"

	"mocni-backend/internal/notification/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormNotificationRepository implements NotificationRepository using GORM
type gormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM-based NotificationRepository
func NewGormNotificationRepository(db *gorm.DB) NotificationRepository {
	return &gormNotificationRepository{db: db}
}

func (r *gormNotificationRepository) Create(notification *domain.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	notification.CreatedAt = time.Now()
	return r.db.Create(notification).Error
}

func (r *gormNotificationRepository) FindByID(id string) (*domain.Notification, error) {
	var notification domain.Notification
	err := r.db.Where("id = ?", id).First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

func (r *gormNotificationRepository) FindByUserID(userID string) ([]*domain.Notification, error) {
	var notifications []*domain.Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

func (r *gormNotificationRepository) CountUnread(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).Count(&count).Error
	return count, err
}

func (r *gormNotificationRepository) MarkRead(id string) error {
	return r.db.Model(&domain.Notification{}).
		Where("id = ?", id).Update("read", true).Error
}

func (r *gormNotificationRepository) MarkAllRead(userID string) error {
	return r.db.Model(&domain.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).Update("read", true).Error
}

func (r *gormNotificationRepository) Delete(id string) error {
	return r.db.Delete(&domain.Notification{}, "id = ?", id).Error
}
