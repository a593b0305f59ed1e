package repositories

import (
	"context"
	"fmt"

	"ClinicAdmin/locks"
	"ClinicAdmin/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const appointmentRowSelect = `
SELECT a.appt_id, p.full_name AS patient_name, d.full_name AS doctor_name,
       a.starts_at, a.ends_at, a.status, a.reason
FROM appointment a
JOIN patient p ON p.patient_id = a.patient_id
JOIN doctor d ON d.doctor_id = a.doctor_id`

const candidateSelect = `
SELECT a.appt_id, p.full_name AS patient_name, d.full_name AS doctor_name, a.starts_at
FROM appointment a
JOIN patient p ON p.patient_id = a.patient_id
JOIN doctor d ON d.doctor_id = a.doctor_id`

type AppointmentRepository struct {
	db    *gorm.DB
	locks *locks.Manager
}

func NewAppointmentRepository(db *gorm.DB, locks *locks.Manager) *AppointmentRepository {
	return &AppointmentRepository{db: db, locks: locks}
}

// List returns all appointments with patient and doctor names, newest first.
func (r *AppointmentRepository) List(ctx context.Context) ([]models.AppointmentRow, error) {
	var rows []models.AppointmentRow
	err := r.db.WithContext(ctx).Raw(appointmentRowSelect + " ORDER BY a.starts_at DESC").Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return rows, nil
}

// Create assigns the next appointment id and inserts the appointment. The
// double-booking trigger may reject it with a *ConstraintError.
func (r *AppointmentRepository) Create(ctx context.Context, appt *models.Appointment) error {
	if appt.Status == "" {
		appt.Status = models.AppointmentScheduled
	}
	return r.locks.WithLock(ctx, locks.Key("appointment"), func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			id, err := nextID(tx, "appointment", "appt_id", appointmentIDFloor)
			if err != nil {
				return err
			}
			appt.ID = id
			if err := tx.Omit(clause.Associations).Create(appt).Error; err != nil {
				return fmt.Errorf("failed to create appointment: %w", translateError(err))
			}
			return nil
		})
	})
}

// Delete removes an appointment together with its bills, prescription and
// room assignment.
func (r *AppointmentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			name  string
			model any
		}{
			{"billing", &models.Billing{}},
			{"prescription", &models.Prescription{}},
			{"appointment_room", &models.AppointmentRoom{}},
			{"appointment", &models.Appointment{}},
		}
		for _, step := range steps {
			if err := tx.Where("appt_id = ?", id).Delete(step.model).Error; err != nil {
				return fmt.Errorf("failed to delete %s rows of appointment %d: %w", step.name, id, translateError(err))
			}
		}
		return nil
	})
}

// WithoutBill lists appointments that have not been billed yet.
func (r *AppointmentRepository) WithoutBill(ctx context.Context) ([]models.CandidateAppointment, error) {
	return r.candidates(ctx, "billing")
}

// WithoutPrescription lists appointments that have no prescription yet.
func (r *AppointmentRepository) WithoutPrescription(ctx context.Context) ([]models.CandidateAppointment, error) {
	return r.candidates(ctx, "prescription")
}

// WithoutRoom lists appointments that have no room yet.
func (r *AppointmentRepository) WithoutRoom(ctx context.Context) ([]models.CandidateAppointment, error) {
	return r.candidates(ctx, "appointment_room")
}

func (r *AppointmentRepository) candidates(ctx context.Context, table string) ([]models.CandidateAppointment, error) {
	var rows []models.CandidateAppointment
	query := candidateSelect + fmt.Sprintf(" WHERE a.appt_id NOT IN (SELECT appt_id FROM %s) ORDER BY a.starts_at DESC", table)
	if err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list appointments without %s: %w", table, err)
	}
	return rows, nil
}
