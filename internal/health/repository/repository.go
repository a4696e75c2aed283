package repository

import "mocni-backend/internal/health/domain"

// MedicationRepository defines the interface for medication data access
type MedicationRepository interface {
	// Create creates a new medication entry
	Create(med *domain.Medication) error

	// FindByID finds a medication by its ID
	FindByID(id string) (*domain.Medication, error)

	// FindByUserID finds all medications for a user
	FindByUserID(userID string) ([]*domain.Medication, error)

	// Update updates an existing medication
	Update(med *domain.Medication) error

	// Delete deletes a medication by ID
	Delete(id string) error

	// FindDueAt returns every medication, across all users, whose reminder
	// time equals the given "HH:MM" string
	FindDueAt(timeStr string) ([]*domain.Medication, error)
}
