package usecase

import (
	"testing"

	"mocni-backend/internal/health/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMedicationRepo struct {
	byID map[string]*domain.Medication
}

func newFakeMedicationRepo() *fakeMedicationRepo {
	return &fakeMedicationRepo{byID: make(map[string]*domain.Medication)}
}

func (r *fakeMedicationRepo) Create(med *domain.Medication) error {
	if med.ID == "" {
		med.ID = "med-" + med.Name
	}
	r.byID[med.ID] = med
	return nil
}

func (r *fakeMedicationRepo) FindByID(id string) (*domain.Medication, error) {
	return r.byID[id], nil
}

func (r *fakeMedicationRepo) FindByUserID(userID string) ([]*domain.Medication, error) {
	var meds []*domain.Medication
	for _, m := range r.byID {
		if m.UserID == userID {
			meds = append(meds, m)
		}
	}
	return meds, nil
}

func (r *fakeMedicationRepo) Update(med *domain.Medication) error {
	r.byID[med.ID] = med
	return nil
}

func (r *fakeMedicationRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeMedicationRepo) FindDueAt(timeStr string) ([]*domain.Medication, error) {
	var meds []*domain.Medication
	for _, m := range r.byID {
		if m.Time == timeStr {
			meds = append(meds, m)
		}
	}
	return meds, nil
}

func TestCreateMedicationValidatesTimeFormat(t *testing.T) {
	uc := NewMedicationUsecase(newFakeMedicationRepo())

	invalid := []string{"8:00", "08:0", "24:00", "08:60", "0800", "08.00", "", "  :  "}
	for _, timeStr := range invalid {
		_, err := uc.CreateMedication("user-1", "Aspiryna", "1 tabletka", timeStr, nil)
		assert.Error(t, err, "time %q should be rejected", timeStr)
	}

	valid := []string{"00:00", "08:00", "09:05", "23:59"}
	for _, timeStr := range valid {
		med, err := uc.CreateMedication("user-1", "Aspiryna", "1 tabletka", timeStr, nil)
		require.NoError(t, err, "time %q should be accepted", timeStr)
		assert.Equal(t, timeStr, med.Time)
	}
}

func TestCreateMedicationDefaultsToEveryDay(t *testing.T) {
	uc := NewMedicationUsecase(newFakeMedicationRepo())

	med, err := uc.CreateMedication("user-1", "Aspiryna", "1 tabletka", "08:00", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.EveryDay}, med.Days)

	med, err = uc.CreateMedication("user-1", "Metformina", "500 mg", "12:00", []string{"Poniedziałek", "Środa"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Poniedziałek", "Środa"}, med.Days)
}

func TestUpdateMedicationChecksOwnership(t *testing.T) {
	repo := newFakeMedicationRepo()
	uc := NewMedicationUsecase(repo)

	med, err := uc.CreateMedication("user-1", "Aspiryna", "1 tabletka", "08:00", nil)
	require.NoError(t, err)

	newName := "Aspiryna Forte"
	_, err = uc.UpdateMedication("user-2", med.ID, MedicationUpdateRequest{Name: &newName})
	assert.EqualError(t, err, "unauthorized")

	updated, err := uc.UpdateMedication("user-1", med.ID, MedicationUpdateRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Aspiryna Forte", updated.Name)
}

func TestUpdateMedicationRejectsBadTime(t *testing.T) {
	uc := NewMedicationUsecase(newFakeMedicationRepo())

	med, err := uc.CreateMedication("user-1", "Aspiryna", "1 tabletka", "08:00", nil)
	require.NoError(t, err)

	bad := "25:00"
	_, err = uc.UpdateMedication("user-1", med.ID, MedicationUpdateRequest{Time: &bad})
	assert.Error(t, err)

	// The stored entry is untouched
	stored, err := uc.GetMedicationByID("user-1", med.ID)
	require.NoError(t, err)
	assert.Equal(t, "08:00", stored.Time)
}

func TestDeleteMedication(t *testing.T) {
	repo := newFakeMedicationRepo()
	uc := NewMedicationUsecase(repo)

	med, err := uc.CreateMedication("user-1", "Aspiryna", "1 tabletka", "08:00", nil)
	require.NoError(t, err)

	assert.EqualError(t, uc.DeleteMedication("user-2", med.ID), "unauthorized")
	require.NoError(t, uc.DeleteMedication("user-1", med.ID))

	_, err = uc.GetMedicationByID("user-1", med.ID)
	assert.EqualError(t, err, "medication not found")
}
