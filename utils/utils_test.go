package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"ClinicAdmin/models"
)

func TestParseFormTime(t *testing.T) {
	loc := time.FixedZone("clinic", 2*3600)
	want := time.Date(2026, 3, 2, 9, 30, 0, 0, loc)

	for _, in := range []string{"2026-03-02T09:30", "2026-03-02T09:30:00", "2026-03-02 09:30", " 2026-03-02 09:30:00 "} {
		got, err := ParseFormTime(in, loc)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("%q: expected %s, got %s", in, want, got)
		}
	}

	if _, err := ParseFormTime("tomorrow", loc); !errors.Is(err, ErrInvalidFormTime) {
		t.Errorf("expected ErrInvalidFormTime, got %v", err)
	}
}

func TestParseDateAndDayBounds(t *testing.T) {
	start, end, err := ParseDate("2026-03-05", time.UTC)
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if !start.Equal(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)) || end.Sub(start) != 24*time.Hour {
		t.Errorf("unexpected bounds %s - %s", start, end)
	}
	if _, _, err := ParseDate("05/03/2026", time.UTC); err == nil {
		t.Error("expected error for a non ISO date")
	}

	loc := time.FixedZone("east", 10*3600)
	// 20:00 UTC on the 4th is already the 5th in loc
	dayStart, dayEnd := DayBounds(time.Date(2026, 3, 4, 20, 0, 0, 0, time.UTC), loc)
	if dayStart.Day() != 5 || dayStart.Location() != loc || dayEnd.Sub(dayStart) != 24*time.Hour {
		t.Errorf("unexpected day bounds %s - %s", dayStart, dayEnd)
	}
}

func TestCalendarDate(t *testing.T) {
	loc := time.FixedZone("clinic", 2*3600)
	got := CalendarDate(time.Date(2026, 3, 9, 23, 30, 0, 0, time.UTC), loc)
	if want := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC); !got.Equal(want) || got.Location() != time.UTC {
		t.Errorf("expected %s, got %s", want, got)
	}

	// the date survives the UTC conversion a driver applies
	if d := got.In(time.UTC).Format("2006-01-02"); d != "2026-03-10" {
		t.Errorf("expected 2026-03-10, got %s", d)
	}
}

func TestValidatePatient(t *testing.T) {
	if err := ValidatePatient(models.PatientInput{FullName: "Jane Doe", Email: "jane@example.com"}); err != nil {
		t.Errorf("valid patient rejected: %v", err)
	}
	// free-text contact details are stored as entered
	for _, email := range []string{"n/a", "none", ""} {
		if err := ValidatePatient(models.PatientInput{FullName: "Jane Doe", Email: email}); err != nil {
			t.Errorf("email %q rejected: %v", email, err)
		}
	}
	err := ValidatePatient(models.PatientInput{Email: "jane@example.com"})
	if err == nil || !IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	long := models.PatientInput{FullName: "Jane Doe", Email: strings.Repeat("x", 121)}
	if err := ValidatePatient(long); err == nil {
		t.Error("expected email longer than the column to be rejected")
	}
}

func TestValidateBill(t *testing.T) {
	ok := models.BillInput{AppointmentID: 101, Amount: 50, PaymentStatus: models.PaymentUnpaid}
	if err := ValidateBill(ok); err != nil {
		t.Errorf("valid bill rejected: %v", err)
	}

	bad := ok
	bad.PaymentStatus = "refunded"
	if err := ValidateBill(bad); err == nil {
		t.Error("expected unknown payment status to be rejected")
	}

	negative := ok
	negative.Amount = -1
	if err := ValidateBill(negative); err == nil {
		t.Error("expected negative amount to be rejected")
	}

	if err := ValidateBillUpdate(models.BillUpdateInput{Amount: 10, PaymentStatus: models.PaymentPaid}); err != nil {
		t.Errorf("valid update rejected: %v", err)
	}
}

func TestValidateAssignments(t *testing.T) {
	if err := ValidatePrescription(models.PrescriptionInput{}); err == nil {
		t.Error("expected missing appointment to be rejected")
	}
	if err := ValidateRoomAssignment(models.RoomAssignmentInput{AppointmentID: 101}); err != nil {
		t.Errorf("valid assignment rejected: %v", err)
	}
	if err := ValidateMedication(models.MedicationInput{Name: "Ibuprofen"}); err == nil {
		t.Error("expected missing form type to be rejected")
	}
	if err := ValidateRoom(models.RoomInput{Name: "Exam 1"}); err != nil {
		t.Errorf("valid room rejected: %v", err)
	}
	if !IsValidationError(ErrEndsBeforeStart) {
		t.Error("ErrEndsBeforeStart is a validation error")
	}
}
