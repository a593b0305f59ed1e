package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"ClinicAdmin/metrics"
	"ClinicAdmin/models"
	"ClinicAdmin/repositories"
	"ClinicAdmin/testutil"
	"ClinicAdmin/utils"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"gorm.io/gorm"
)

type fixture struct {
	db      *gorm.DB
	metrics *metrics.Collector
	loc     *time.Location
	now     Clock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	// 23:30 UTC on March 9th is already March 10th at UTC+2
	now := time.Date(2026, 3, 9, 23, 30, 0, 0, time.UTC)
	f := &fixture{
		db:      testutil.NewDB(t),
		metrics: metrics.NewCollector("clinic"),
		loc:     time.FixedZone("clinic", 2*3600),
		now:     func() time.Time { return now },
	}
	testutil.AddDoctor(t, f.db, 1, "Dr. Smith")
	testutil.AddPatient(t, f.db, 1, "Jane Doe")
	return f
}

func (f *fixture) appointments() *AppointmentService {
	locks := testutil.NewLocks()
	return NewAppointmentService(
		repositories.NewAppointmentRepository(f.db, locks),
		repositories.NewPatientRepository(f.db, locks),
		repositories.NewDoctorRepository(f.db),
		f.metrics,
		f.loc,
	)
}

func TestAppointmentService_Create(t *testing.T) {
	f := newFixture(t)
	svc := f.appointments()
	ctx := context.Background()

	appt, err := svc.Create(ctx, models.AppointmentInput{PatientID: 1, DoctorID: 1, StartsAt: "2026-03-10T09:00", EndsAt: "2026-03-10T09:30", Reason: " cleaning "})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if appt.ID != 101 || appt.Reason != "cleaning" || appt.Status != models.AppointmentScheduled {
		t.Errorf("unexpected appointment %+v", appt)
	}
	if !appt.StartsAt.Equal(time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)) {
		t.Errorf("form time not read in clinic zone: %s", appt.StartsAt)
	}
	if got := promtest.ToFloat64(f.metrics.AppointmentsCreatedTotal); got != 1 {
		t.Errorf("expected 1 appointment created, got %v", got)
	}

	_, err = svc.Create(ctx, models.AppointmentInput{PatientID: 1, DoctorID: 1, StartsAt: "2026-03-10T09:15", EndsAt: "2026-03-10T10:00"})
	if err == nil {
		t.Fatal("expected double booking to be rejected")
	}
	if utils.IsValidationError(err) {
		t.Errorf("double booking is not a validation error: %v", err)
	}

	patients, doctors, err := svc.FormOptions(ctx)
	if err != nil || len(patients) != 1 || len(doctors) != 1 {
		t.Errorf("unexpected form options %v %v (%v)", patients, doctors, err)
	}
}

func TestAppointmentService_CreateInvalid(t *testing.T) {
	f := newFixture(t)
	svc := f.appointments()
	ctx := context.Background()

	cases := map[string]models.AppointmentInput{
		"missing doctor": {PatientID: 1, StartsAt: "2026-03-10T09:00", EndsAt: "2026-03-10T10:00"},
		"bad start":      {PatientID: 1, DoctorID: 1, StartsAt: "soon", EndsAt: "2026-03-10T10:00"},
		"ends first":     {PatientID: 1, DoctorID: 1, StartsAt: "2026-03-10T10:00", EndsAt: "2026-03-10T09:00"},
	}
	for name, in := range cases {
		if _, err := svc.Create(ctx, in); !utils.IsValidationError(err) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
	}
	if n := testutil.Count(t, f.db, "appointment"); n != 0 {
		t.Errorf("expected no appointments, got %d", n)
	}
}

func TestBillingService_CreateDatesToday(t *testing.T) {
	f := newFixture(t)
	testutil.AddAppointment(t, f.db, 101, 1, 1, testutil.At(2, 9))
	svc := NewBillingService(
		repositories.NewBillingRepository(f.db, testutil.NewLocks()),
		repositories.NewAppointmentRepository(f.db, testutil.NewLocks()),
		f.metrics, f.loc, f.now,
	)
	ctx := context.Background()

	bill, err := svc.Create(ctx, models.BillInput{AppointmentID: 101, Amount: 80, PaymentStatus: "unpaid", PaymentMethod: "cash"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	// 23:30 UTC on the 9th is the 10th in the clinic zone
	if want := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC); !bill.BillingDate.Equal(want) || bill.BillingDate.Location() != time.UTC {
		t.Errorf("expected billing date %s, got %s", want, bill.BillingDate)
	}
	var stored models.Billing
	if err := f.db.First(&stored, bill.ID).Error; err != nil {
		t.Fatalf("bill not stored: %v", err)
	}
	if got := stored.BillingDate.UTC().Format("2006-01-02"); got != "2026-03-10" {
		t.Errorf("expected stored billing date 2026-03-10, got %s", got)
	}

	billable, err := svc.Billable(ctx)
	if err != nil || len(billable) != 0 {
		t.Errorf("billed appointment still offered: %v (%v)", billable, err)
	}

	if err := svc.Update(ctx, bill.ID, models.BillUpdateInput{Amount: 80, PaymentStatus: "void"}); !utils.IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}

	overview, err := svc.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview failed: %v", err)
	}
	if len(overview.Bills) != 1 || overview.Summary.Unpaid != 80 || len(overview.Receivables) != 1 {
		t.Errorf("unexpected overview %+v", overview)
	}
}

func TestMedicationService_Prescribe(t *testing.T) {
	f := newFixture(t)
	testutil.AddAppointment(t, f.db, 101, 1, 1, testutil.At(2, 9))
	svc := NewMedicationService(
		repositories.NewMedicationRepository(f.db, testutil.NewLocks()),
		repositories.NewAppointmentRepository(f.db, testutil.NewLocks()),
		f.metrics,
	)
	ctx := context.Background()

	med, err := svc.Create(ctx, models.MedicationInput{Name: "Ibuprofen", FormType: "tablet", Strength: "200mg"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	info, candidates, err := svc.PrescriptionForm(ctx, med.ID)
	if err != nil || info.Name != "Ibuprofen" || len(candidates) != 1 {
		t.Fatalf("unexpected form %+v %v (%v)", info, candidates, err)
	}

	if _, err := svc.Prescribe(ctx, med.ID, models.PrescriptionInput{AppointmentID: 101, Dosage: "1 tablet", Quantity: 20}); err != nil {
		t.Fatalf("Prescribe failed: %v", err)
	}
	_, err = svc.Prescribe(ctx, med.ID, models.PrescriptionInput{AppointmentID: 101})
	if !errors.Is(err, repositories.ErrAlreadyAssigned) {
		t.Errorf("expected ErrAlreadyAssigned, got %v", err)
	}
	if got := promtest.ToFloat64(f.metrics.ConstraintRejections.WithLabelValues("already_assigned")); got != 1 {
		t.Errorf("expected one rejection recorded, got %v", got)
	}

	if _, _, err := svc.PrescriptionForm(ctx, 999); !repositories.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestRoomService_UnknownRoom(t *testing.T) {
	f := newFixture(t)
	svc := NewRoomService(
		repositories.NewRoomRepository(f.db, testutil.NewLocks()),
		repositories.NewAppointmentRepository(f.db, testutil.NewLocks()),
		f.metrics,
	)

	name, rows, err := svc.Schedule(context.Background(), 77)
	if err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}
	if name != UnknownRoomName || len(rows) != 0 {
		t.Errorf("unexpected schedule %q %v", name, rows)
	}

	if err := svc.Delete(context.Background(), 77); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got := promtest.ToFloat64(f.metrics.DeletesTotal.WithLabelValues("room")); got != 1 {
		t.Errorf("expected delete counted, got %v", got)
	}
}

func TestSearchService(t *testing.T) {
	f := newFixture(t)
	svc := NewSearchService(repositories.NewSearchRepository(f.db), f.loc)
	appts := f.appointments()
	ctx := context.Background()

	if _, err := appts.Create(ctx, models.AppointmentInput{PatientID: 1, DoctorID: 1, StartsAt: "2026-03-10T09:00", EndsAt: "2026-03-10T10:00"}); err != nil {
		t.Fatal(err)
	}

	if _, searched, err := svc.Patients(ctx, "   "); searched || err != nil {
		t.Errorf("blank term must not search (searched=%v err=%v)", searched, err)
	}
	patients, searched, err := svc.Patients(ctx, " jane ")
	if !searched || err != nil || len(patients) != 1 {
		t.Errorf("unexpected patient search %v %v %v", patients, searched, err)
	}

	tests := []struct {
		in   models.AppointmentSearch
		want int
	}{
		{models.AppointmentSearch{Type: models.SearchByDoctor, Value: "smi"}, 1},
		{models.AppointmentSearch{Type: models.SearchByDate, Value: "2026-03-10"}, 1},
		{models.AppointmentSearch{Type: models.SearchByDate, Value: "2026-03-11"}, 0},
		{models.AppointmentSearch{Type: models.SearchByDate, Value: "March 10"}, 0},
		{models.AppointmentSearch{Type: "patient", Value: "Jane"}, 0},
		{models.AppointmentSearch{Type: models.SearchByDoctor}, 0},
	}
	for _, tt := range tests {
		rows, err := svc.Appointments(ctx, tt.in)
		if err != nil {
			t.Errorf("%+v: %v", tt.in, err)
			continue
		}
		if len(rows) != tt.want {
			t.Errorf("%+v: expected %d rows, got %d", tt.in, tt.want, len(rows))
		}
	}
}

func TestDashboardService_TodayInClinicZone(t *testing.T) {
	f := newFixture(t)
	appts := f.appointments()
	ctx := context.Background()

	for _, start := range []string{"2026-03-09T20:00", "2026-03-10T09:00", "2026-03-17T12:00", "2026-03-18T08:00"} {
		end := start[:11] + "23:00"
		if _, err := appts.Create(ctx, models.AppointmentInput{PatientID: 1, DoctorID: 1, StartsAt: start, EndsAt: end}); err != nil {
			t.Fatalf("%s: %v", start, err)
		}
	}

	stats, err := NewDashboardService(repositories.NewDashboardRepository(f.db), f.loc, f.now).Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TodayAppointments != 1 {
		t.Errorf("expected 1 appointment today, got %d", stats.TodayAppointments)
	}
	if len(stats.UpcomingAppointments) != 2 {
		t.Errorf("expected today and today+7 upcoming, got %+v", stats.UpcomingAppointments)
	}
}
