package domain

import "time"

// EveryDay is the sentinel the health UI writes when a medication is taken daily
const EveryDay = "Codziennie"

// Medication represents one scheduled medication entry owned by a user
type Medication struct {
	ID     string `json:"id" gorm:"primaryKey"`
	UserID string `json:"user_id" gorm:"index;not null"`
	Name   string `json:"name" gorm:"not null"`
	Dosage string `json:"dosage"` // e.g. "1 tabletka"

	// Time is the zero-padded 24-hour "HH:MM" reminder time, local to
	// Europe/Warsaw. The reminder scheduler matches on string equality, so
	// the index on this column is what makes the cross-user due query cheap.
	Time string `json:"time" gorm:"index;not null"`

	// Days lists weekday labels, or [EveryDay]. It is shown in the health UI
	// but reminder delivery currently matches on Time alone.
	Days []string `json:"days" gorm:"serializer:json"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
