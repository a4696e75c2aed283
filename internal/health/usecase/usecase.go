package usecase

import "mocni-backend/internal/health/domain"

// MedicationUsecase defines the interface for medication business logic
type MedicationUsecase interface {
	// CreateMedication creates a new medication entry for a user
	CreateMedication(userID, name, dosage, timeStr string, days []string) (*domain.Medication, error)

	// GetMedicationByID retrieves a medication by ID (with ownership check)
	GetMedicationByID(userID, medID string) (*domain.Medication, error)

	// GetUserMedications retrieves all medications for a user
	GetUserMedications(userID string) ([]*domain.Medication, error)

	// UpdateMedication updates an existing medication
	UpdateMedication(userID, medID string, updates MedicationUpdateRequest) (*domain.Medication, error)

	// DeleteMedication deletes a medication
	DeleteMedication(userID, medID string) error
}

// MedicationUpdateRequest represents the fields that can be updated
type MedicationUpdateRequest struct {
	Name   *string   `json:"name,omitempty"`
	Dosage *string   `json:"dosage,omitempty"`
	Time   *string   `json:"time,omitempty"`
	Days   *[]string `json:"days,omitempty"`
}
