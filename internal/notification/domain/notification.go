package domain

import "time"

// NotificationType categorizes feed entries for the bell icon in the PWA
type NotificationType string

const (
	TypeJob       NotificationType = "job"
	TypeTravel    NotificationType = "travel"
	TypeCommunity NotificationType = "community"
	TypeSystem    NotificationType = "system"
)

// Notification is one entry in a user's in-app notification feed
type Notification struct {
	ID        string           `json:"id" gorm:"primaryKey"`
	UserID    string           `json:"user_id" gorm:"index;not null"`
	Type      NotificationType `json:"type" gorm:"default:system"`
	Title     string           `json:"title" gorm:"not null"`
	Message   string           `json:"message"`
	Link      string           `json:"link,omitempty"` // in-app route, e.g. "/gigs"
	Read      bool             `json:"read" gorm:"default:false"`
	CreatedAt time.Time        `json:"created_at"`
}
