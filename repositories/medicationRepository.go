package repositories

import (
	"context"
	"fmt"

	"ClinicAdmin/locks"
	"ClinicAdmin/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MedicationRepository struct {
	db    *gorm.DB
	locks *locks.Manager
}

func NewMedicationRepository(db *gorm.DB, locks *locks.Manager) *MedicationRepository {
	return &MedicationRepository{db: db, locks: locks}
}

// List returns one row per medication variant, ordered by medication name.
// Medications without variants appear once with empty form and strength.
func (r *MedicationRepository) List(ctx context.Context) ([]models.MedicationRow, error) {
	var rows []models.MedicationRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT m.med_id, m.med_name, mf.form_name, mv.strength, m.notes
		FROM medication m
		LEFT JOIN medication_variant mv ON mv.med_id = m.med_id
		LEFT JOIN medication_form mf ON mf.form_id = mv.form_id
		ORDER BY m.med_name, m.med_id`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	return rows, nil
}

// Create inserts the medication, resolves the form by name (creating it when
// missing) and inserts one variant, all in a single transaction.
func (r *MedicationRepository) Create(ctx context.Context, med *models.Medication, formName, strength string) error {
	return r.locks.WithLock(ctx, locks.Key("medication"), func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			medID, err := nextID(tx, "medication", "med_id", medicationIDFloor)
			if err != nil {
				return err
			}
			med.ID = medID
			if err := tx.Create(med).Error; err != nil {
				return fmt.Errorf("failed to create medication: %w", translateError(err))
			}

			form, err := r.formByName(tx, formName)
			if err != nil {
				return err
			}

			variantID, err := nextID(tx, "medication_variant", "variant_id", variantIDFloor)
			if err != nil {
				return err
			}
			variant := models.MedicationVariant{
				ID:           variantID,
				MedicationID: med.ID,
				FormID:       form.ID,
				Strength:     strength,
			}
			if err := tx.Omit(clause.Associations).Create(&variant).Error; err != nil {
				return fmt.Errorf("failed to create medication variant: %w", translateError(err))
			}
			return nil
		})
	})
}

func (r *MedicationRepository) formByName(tx *gorm.DB, name string) (*models.MedicationForm, error) {
	var forms []models.MedicationForm
	if err := tx.Where("form_name = ?", name).Order("form_id").Limit(1).Find(&forms).Error; err != nil {
		return nil, fmt.Errorf("failed to look up medication form: %w", err)
	}
	if len(forms) > 0 {
		return &forms[0], nil
	}

	form := models.MedicationForm{Name: name}
	if err := tx.Create(&form).Error; err != nil {
		return nil, fmt.Errorf("failed to create medication form: %w", translateError(err))
	}
	return &form, nil
}

// Info returns the medication name and the strength of its first variant.
func (r *MedicationRepository) Info(ctx context.Context, medID int64) (*models.MedicationInfo, error) {
	var info models.MedicationInfo
	res := r.db.WithContext(ctx).Raw(`
		SELECT m.med_name, mv.strength
		FROM medication m
		LEFT JOIN medication_variant mv ON mv.med_id = m.med_id
		WHERE m.med_id = ?
		ORDER BY mv.variant_id
		LIMIT 1`, medID).Scan(&info)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to load medication %d: %w", medID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &info, nil
}

// Prescribe records a prescription of the medication's first variant for an
// appointment. An appointment holds at most one prescription.
func (r *MedicationRepository) Prescribe(ctx context.Context, medID int64, rx *models.Prescription) error {
	return r.locks.WithLock(ctx, locks.Key("prescription", rx.AppointmentID), func() error {
		return r.locks.WithLock(ctx, locks.Key("prescription"), func() error {
			return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				var variantIDs []int64
				err := tx.Model(&models.MedicationVariant{}).
					Where("med_id = ?", medID).
					Order("variant_id").
					Limit(1).
					Pluck("variant_id", &variantIDs).Error
				if err != nil {
					return fmt.Errorf("failed to resolve variant of medication %d: %w", medID, err)
				}
				if len(variantIDs) == 0 {
					return fmt.Errorf("medication %d has no variant: %w", medID, ErrNotFound)
				}

				var existing int64
				if err := tx.Model(&models.Prescription{}).Where("appt_id = ?", rx.AppointmentID).Count(&existing).Error; err != nil {
					return fmt.Errorf("failed to check prescriptions of appointment %d: %w", rx.AppointmentID, err)
				}
				if existing > 0 {
					return ErrAlreadyAssigned
				}

				id, err := nextID(tx, "prescription", "rx_id", prescriptionIDFloor)
				if err != nil {
					return err
				}
				rx.ID = id
				rx.VariantID = variantIDs[0]
				if err := tx.Omit(clause.Associations).Create(rx).Error; err != nil {
					return fmt.Errorf("failed to create prescription: %w", translateError(err))
				}
				return nil
			})
		})
	})
}

// Delete removes a medication with its variants and every prescription of
// those variants.
func (r *MedicationRepository) Delete(ctx context.Context, medID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		variants := tx.Model(&models.MedicationVariant{}).Select("variant_id").Where("med_id = ?", medID)
		if err := tx.Where("variant_id IN (?)", variants).Delete(&models.Prescription{}).Error; err != nil {
			return fmt.Errorf("failed to delete prescriptions of medication %d: %w", medID, translateError(err))
		}
		if err := tx.Where("med_id = ?", medID).Delete(&models.MedicationVariant{}).Error; err != nil {
			return fmt.Errorf("failed to delete variants of medication %d: %w", medID, translateError(err))
		}
		if err := tx.Where("med_id = ?", medID).Delete(&models.Medication{}).Error; err != nil {
			return fmt.Errorf("failed to delete medication %d: %w", medID, translateError(err))
		}
		return nil
	})
}
