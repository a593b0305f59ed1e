package database

import (
	"time"

	"ClinicAdmin/config"
	"ClinicAdmin/models"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const doubleBookingMessage = "Doctor already has an appointment in this time slot"

// Models lists the schema in foreign-key order.
func Models() []any {
	return []any{
		&models.Patient{},
		&models.Doctor{},
		&models.Appointment{},
		&models.Billing{},
		&models.Medication{},
		&models.MedicationForm{},
		&models.MedicationVariant{},
		&models.Prescription{},
		&models.ClinicRoom{},
		&models.AppointmentRoom{},
	}
}

// Migrate creates the tables and the double-booking trigger.
func Migrate(db *gorm.DB, driver string, log *zap.Logger) error {
	log.Info("running database migrations")
	start := time.Now()

	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "auto-migrating models")
	}

	for _, stmt := range triggerStatements(driver) {
		if err := db.Exec(stmt).Error; err != nil {
			return errors.Wrap(err, "creating double-booking trigger")
		}
	}

	log.Info("migrations completed", zap.Duration("duration", time.Since(start)))
	return nil
}

func triggerStatements(driver string) []string {
	switch driver {
	case config.DriverMySQL:
		return []string{
			`DROP TRIGGER IF EXISTS trg_appointment_no_double_booking`,
			`CREATE TRIGGER trg_appointment_no_double_booking
BEFORE INSERT ON appointment
FOR EACH ROW
BEGIN
	IF EXISTS (
		SELECT 1 FROM appointment a
		WHERE a.doctor_id = NEW.doctor_id
		  AND a.starts_at < NEW.ends_at
		  AND NEW.starts_at < a.ends_at
	) THEN
		SIGNAL SQLSTATE '45000' SET MESSAGE_TEXT = '` + doubleBookingMessage + `';
	END IF;
END`,
		}
	case config.DriverPostgres:
		return []string{
			`CREATE OR REPLACE FUNCTION appointment_no_double_booking() RETURNS trigger AS $$
BEGIN
	IF EXISTS (
		SELECT 1 FROM appointment a
		WHERE a.doctor_id = NEW.doctor_id
		  AND a.starts_at < NEW.ends_at
		  AND NEW.starts_at < a.ends_at
	) THEN
		RAISE EXCEPTION '` + doubleBookingMessage + `';
	END IF;
	RETURN NEW;
END;
$$ LANGUAGE plpgsql`,
			`DROP TRIGGER IF EXISTS trg_appointment_no_double_booking ON appointment`,
			`CREATE TRIGGER trg_appointment_no_double_booking
BEFORE INSERT ON appointment
FOR EACH ROW EXECUTE FUNCTION appointment_no_double_booking()`,
		}
	default:
		return nil
	}
}
