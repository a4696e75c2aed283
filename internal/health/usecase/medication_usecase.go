package usecase

import (
	"errors"
	"regexp"

	"mocni-backend/internal/health/domain"
	"mocni-backend/internal/health/repository"
)

// timePattern enforces the zero-padded 24-hour "HH:MM" format the reminder
// scheduler matches on. A medication written in any other shape would never
// fire, so the format is rejected at creation time.
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// medicationUsecase implements MedicationUsecase interface
type medicationUsecase struct {
	medRepo repository.MedicationRepository
}

// NewMedicationUsecase creates a new instance of medicationUsecase
func NewMedicationUsecase(medRepo repository.MedicationRepository) MedicationUsecase {
	return &medicationUsecase{
		medRepo: medRepo,
	}
}

func (u *medicationUsecase) CreateMedication(userID, name, dosage, timeStr string, days []string) (*domain.Medication, error) {
	if !timePattern.MatchString(timeStr) {
		return nil, errors.New("time must be in HH:MM 24-hour format")
	}

	if len(days) == 0 {
		days = []string{domain.EveryDay}
	}

	med := &domain.Medication{
		UserID: userID,
		Name:   name,
		Dosage: dosage,
		Time:   timeStr,
		Days:   days,
	}

	if err := u.medRepo.Create(med); err != nil {
		return nil, err
	}

	return med, nil
}

func (u *medicationUsecase) GetMedicationByID(userID, medID string) (*domain.Medication, error) {
	med, err := u.medRepo.FindByID(medID)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, errors.New("medication not found")
	}
	if med.UserID != userID {
		return nil, errors.New("unauthorized")
	}
	return med, nil
}

func (u *medicationUsecase) GetUserMedications(userID string) ([]*domain.Medication, error) {
	return u.medRepo.FindByUserID(userID)
}

func (u *medicationUsecase) UpdateMedication(userID, medID string, updates MedicationUpdateRequest) (*domain.Medication, error) {
	med, err := u.GetMedicationByID(userID, medID)
	if err != nil {
		return nil, err
	}

	if updates.Name != nil {
		med.Name = *updates.Name
	}
	if updates.Dosage != nil {
		med.Dosage = *updates.Dosage
	}
	if updates.Time != nil {
		if !timePattern.MatchString(*updates.Time) {
			return nil, errors.New("time must be in HH:MM 24-hour format")
		}
		med.Time = *updates.Time
	}
	if updates.Days != nil {
		days := *updates.Days
		if len(days) == 0 {
			days = []string{domain.EveryDay}
		}
		med.Days = days
	}

	if err := u.medRepo.Update(med); err != nil {
		return nil, err
	}

	return med, nil
}

func (u *medicationUsecase) DeleteMedication(userID, medID string) error {
	if _, err := u.GetMedicationByID(userID, medID); err != nil {
		return err
	}
	return u.medRepo.Delete(medID)
}
