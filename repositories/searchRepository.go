package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ClinicAdmin/models"

	"gorm.io/gorm"
)

type SearchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) *SearchRepository {
	return &SearchRepository{db: db}
}

func containsPattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}

// Patients finds patients whose name contains term, ignoring case.
func (r *SearchRepository) Patients(ctx context.Context, term string) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.WithContext(ctx).
		Where("LOWER(full_name) LIKE ?", containsPattern(term)).
		Order("full_name").
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search patients: %w", err)
	}
	return patients, nil
}

// AppointmentsByDoctor finds appointments whose doctor name contains name.
func (r *SearchRepository) AppointmentsByDoctor(ctx context.Context, name string) ([]models.AppointmentRow, error) {
	var rows []models.AppointmentRow
	err := r.db.WithContext(ctx).Raw(appointmentRowSelect+`
		WHERE LOWER(d.full_name) LIKE ?
		ORDER BY a.starts_at DESC`, containsPattern(name)).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search appointments by doctor: %w", err)
	}
	return rows, nil
}

// AppointmentsBetween finds appointments starting in [from, to).
func (r *SearchRepository) AppointmentsBetween(ctx context.Context, from, to time.Time) ([]models.AppointmentRow, error) {
	var rows []models.AppointmentRow
	err := r.db.WithContext(ctx).Raw(appointmentRowSelect+`
		WHERE a.starts_at >= ? AND a.starts_at < ?
		ORDER BY a.starts_at DESC`, from, to).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search appointments by date: %w", err)
	}
	return rows, nil
}
