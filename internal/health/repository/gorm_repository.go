package repository

import (
	"errors"
	"time"

	"mocni-backend/internal/health/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormMedicationRepository implements MedicationRepository using GORM
type gormMedicationRepository struct {
	db *gorm.DB
}

// NewGormMedicationRepository creates a new GORM-based MedicationRepository
func NewGormMedicationRepository(db *gorm.DB) MedicationRepository {
	return &gormMedicationRepository{db: db}
}

func (r *gormMedicationRepository) Create(med *domain.Medication) error {
	if med.ID == "" {
		med.ID = uuid.New().String()
	}
	med.CreatedAt = time.Now()
	med.UpdatedAt = time.Now()
	return r.db.Create(med).Error
}

func (r *gormMedicationRepository) FindByID(id string) (*domain.Medication, error) {
	var med domain.Medication
	err := r.db.Where("id = ?", id).First(&med).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &med, nil
}

func (r *gormMedicationRepository) FindByUserID(userID string) ([]*domain.Medication, error) {
	var meds []*domain.Medication
	err := r.db.Where("user_id = ?", userID).
		Order("time ASC, created_at ASC").Find(&meds).Error
	return meds, err
}

func (r *gormMedicationRepository) Update(med *domain.Medication) error {
	med.UpdatedAt = time.Now()
	return r.db.Save(med).Error
}

func (r *gormMedicationRepository) Delete(id string) error {
	return r.db.Delete(&domain.Medication{}, "id = ?", id).Error
}

func (r *gormMedicationRepository) FindDueAt(timeStr string) ([]*domain.Medication, error) {
	var meds []*domain.Medication
	err := r.db.Where("time = ?", timeStr).Find(&meds).Error
	return meds, err
}
