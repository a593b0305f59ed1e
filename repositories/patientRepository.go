package repositories

import (
	"context"
	"fmt"

	"ClinicAdmin/locks"
	"ClinicAdmin/models"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db    *gorm.DB
	locks *locks.Manager
}

func NewPatientRepository(db *gorm.DB, locks *locks.Manager) *PatientRepository {
	return &PatientRepository{db: db, locks: locks}
}

// List returns every patient ordered by id.
func (r *PatientRepository) List(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	if err := r.db.WithContext(ctx).Order("patient_id").Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

// Create assigns the next patient id and inserts the patient.
func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	return r.locks.WithLock(ctx, locks.Key("patient"), func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			id, err := nextID(tx, "patient", "patient_id", patientIDFloor)
			if err != nil {
				return err
			}
			patient.ID = id
			if err := tx.Create(patient).Error; err != nil {
				return fmt.Errorf("failed to create patient: %w", translateError(err))
			}
			return nil
		})
	})
}

// Delete removes a patient. Patients that still have appointments are
// rejected by the foreign key.
func (r *PatientRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("patient_id = ?", id).Delete(&models.Patient{}).Error; err != nil {
			return fmt.Errorf("failed to delete patient %d: %w", id, translateError(err))
		}
		return nil
	})
}
