package repositories

import (
	"context"
	"fmt"
	"time"

	"ClinicAdmin/models"

	"gorm.io/gorm"
)

const upcomingLimit = 20

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Stats gathers the dashboard figures. dayStart and dayEnd bound "today";
// upcoming appointments run from dayStart up to horizon.
func (r *DashboardRepository) Stats(ctx context.Context, dayStart, dayEnd, horizon time.Time) (*models.DashboardStats, error) {
	db := r.db.WithContext(ctx)
	stats := &models.DashboardStats{}

	counts := []struct {
		name  string
		query *gorm.DB
		dest  *int64
	}{
		{"patients", db.Model(&models.Patient{}), &stats.TotalPatients},
		{"appointments", db.Model(&models.Appointment{}), &stats.TotalAppointments},
		{"today's appointments", db.Model(&models.Appointment{}).Where("starts_at >= ? AND starts_at < ?", dayStart, dayEnd), &stats.TodayAppointments},
		{"scheduled appointments", db.Model(&models.Appointment{}).Where("status = ?", models.AppointmentScheduled), &stats.ScheduledCount},
		{"completed appointments", db.Model(&models.Appointment{}).Where("status = ?", models.AppointmentCompleted), &stats.CompletedCount},
		{"medications", db.Model(&models.Medication{}), &stats.TotalMedications},
		{"doctors", db.Model(&models.Doctor{}), &stats.TotalDoctors},
		{"rooms", db.Model(&models.ClinicRoom{}), &stats.TotalRooms},
		{"unpaid bills", db.Model(&models.Billing{}).Where("payment_status = ?", models.PaymentUnpaid), &stats.UnpaidBills},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.name, err)
		}
	}

	err := db.Raw(`
		SELECT COUNT(*) FROM clinic_room r
		WHERE r.room_id NOT IN (
			SELECT DISTINCT ar.room_id
			FROM appointment_room ar
			JOIN appointment a ON a.appt_id = ar.appt_id
			WHERE a.starts_at >= ? AND a.starts_at < ?
		)`, dayStart, dayEnd).Scan(&stats.AvailableRooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count available rooms: %w", err)
	}

	err = db.Raw(`
		SELECT a.starts_at, p.full_name AS patient_name, d.full_name AS doctor_name, a.reason, a.status
		FROM appointment a
		JOIN patient p ON p.patient_id = a.patient_id
		JOIN doctor d ON d.doctor_id = a.doctor_id
		WHERE a.starts_at >= ? AND a.starts_at < ?
		ORDER BY a.starts_at ASC
		LIMIT ?`, dayStart, horizon, upcomingLimit).Scan(&stats.UpcomingAppointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming appointments: %w", err)
	}
	return stats, nil
}
