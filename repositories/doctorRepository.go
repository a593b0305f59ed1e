package repositories

import (
	"context"
	"fmt"

	"ClinicAdmin/models"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// List returns the doctor directory ordered by name.
func (r *DoctorRepository) List(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := r.db.WithContext(ctx).Order("full_name").Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}
