package domain

import "time"

// Role distinguishes the two community account types plus admins
type Role string

const (
	RoleSenior  Role = "senior"
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// VerificationStatus tracks how far a user got through identity verification
type VerificationStatus string

const (
	VerificationUnverified     VerificationStatus = "unverified"
	VerificationPhoneVerified  VerificationStatus = "phone_verified"
	VerificationBankIDVerified VerificationStatus = "bank_id_verified"
	VerificationTrustedPartner VerificationStatus = "trusted_partner"
)

type User struct {
	ID                 string             `json:"id" gorm:"primaryKey"`
	Email              string             `json:"email" gorm:"uniqueIndex;not null"`
	Password           string             `json:"-"` // Never return password in JSON
	Name               string             `json:"name"`
	AvatarURL          string             `json:"avatar_url,omitempty"`
	Role               Role               `json:"role" gorm:"default:senior"`
	District           string             `json:"district,omitempty"` // e.g. "Poznań - Jeżyce"
	VerificationStatus VerificationStatus `json:"verification_status" gorm:"default:unverified"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type RefreshToken struct {
	Token     string    `json:"token" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index"`
	ExpiresAt time.Time `json:"expires_at"`
}
