// Package testutil provides an in-memory clinic database and fixtures for tests.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"ClinicAdmin/database"
	"ClinicAdmin/locks"
	"ClinicAdmin/models"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

const doubleBookingTrigger = `
CREATE TRIGGER trg_appointment_no_double_booking
BEFORE INSERT ON appointment
WHEN EXISTS (
	SELECT 1 FROM appointment a
	WHERE a.doctor_id = NEW.doctor_id
	  AND a.starts_at < NEW.ends_at
	  AND NEW.starts_at < a.ends_at
)
BEGIN
	SELECT RAISE(ABORT, 'Doctor already has an appointment in this time slot');
END`

var dbSeq atomic.Int64

// NewDB opens a private in-memory SQLite database with foreign keys enforced,
// the clinic schema and a double-booking trigger.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", name, dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// a single connection keeps the in-memory database alive and shared
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db, "sqlite", zap.NewNop()); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := db.Exec(doubleBookingTrigger).Error; err != nil {
		t.Fatalf("failed to create trigger: %v", err)
	}
	return db
}

// NewLocks returns a lock manager backed by an in-process locker.
func NewLocks() *locks.Manager {
	return locks.NewManager(locks.NewMemoryLocker(), zap.NewNop())
}

// At returns a UTC timestamp on 2026-03-<day> at hour:00.
func At(day, hour int) time.Time {
	return time.Date(2026, time.March, day, hour, 0, 0, 0, time.UTC)
}

func create(t testing.TB, db *gorm.DB, value any) {
	t.Helper()
	if err := db.Omit(clause.Associations).Create(value).Error; err != nil {
		t.Fatalf("failed to insert fixture %T: %v", value, err)
	}
}

func AddDoctor(t testing.TB, db *gorm.DB, id int64, name string) models.Doctor {
	d := models.Doctor{ID: id, FullName: name, Email: strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@clinic.test"}
	create(t, db, &d)
	return d
}

func AddPatient(t testing.TB, db *gorm.DB, id int64, name string) models.Patient {
	p := models.Patient{ID: id, FullName: name, Email: "patient@example.com", Phone: "555-0100", Address: "1 Main St"}
	create(t, db, &p)
	return p
}

// AddAppointment inserts a one-hour scheduled appointment.
func AddAppointment(t testing.TB, db *gorm.DB, id, patientID, doctorID int64, start time.Time) models.Appointment {
	a := models.Appointment{
		ID:        id,
		PatientID: patientID,
		DoctorID:  doctorID,
		StartsAt:  start,
		EndsAt:    start.Add(time.Hour),
		Status:    models.AppointmentScheduled,
		Reason:    "checkup",
	}
	create(t, db, &a)
	return a
}

func AddBill(t testing.TB, db *gorm.DB, id, apptID int64, amount float64, status string) models.Billing {
	b := models.Billing{
		ID:            id,
		AppointmentID: apptID,
		Amount:        amount,
		PaymentStatus: status,
		PaymentMethod: "card",
		BillingDate:   At(1, 0),
	}
	create(t, db, &b)
	return b
}

func AddRoom(t testing.TB, db *gorm.DB, id int64, name string) models.ClinicRoom {
	r := models.ClinicRoom{ID: id, Name: name, Type: "exam"}
	create(t, db, &r)
	return r
}

func AssignRoom(t testing.TB, db *gorm.DB, roomID, apptID int64) {
	create(t, db, &models.AppointmentRoom{AppointmentID: apptID, RoomID: roomID})
}

// AddMedication inserts a medication with a single tablet variant.
func AddMedication(t testing.TB, db *gorm.DB, id int64, name, strength string) models.MedicationVariant {
	create(t, db, &models.Medication{ID: id, Name: name})
	form := models.MedicationForm{Name: "tablet"}
	if err := db.Where("form_name = ?", form.Name).FirstOrCreate(&form).Error; err != nil {
		t.Fatalf("failed to insert medication form: %v", err)
	}
	v := models.MedicationVariant{ID: id, MedicationID: id, FormID: form.ID, Strength: strength}
	create(t, db, &v)
	return v
}

func AddPrescription(t testing.TB, db *gorm.DB, id, apptID, variantID int64) {
	create(t, db, &models.Prescription{ID: id, AppointmentID: apptID, VariantID: variantID, Dosage: "1 tablet", Quantity: 10})
}

// Count returns the number of rows in table.
func Count(t testing.TB, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	if err := db.Table(table).Count(&n).Error; err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return n
}
