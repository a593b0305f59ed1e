package views

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"ClinicAdmin/models"
)

func TestLoad_AllPages(t *testing.T) {
	tmpl, err := Load(time.UTC)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	for _, name := range []string{
		"home.html", "error.html", "patients.html", "add_patient.html", "appointments.html",
		"add_appointment.html", "billing.html", "add_bill.html", "edit_bill.html", "bill_details.html",
		"medications.html", "add_medication.html", "assign_medication.html", "rooms.html", "add_room.html",
		"assign_room.html", "room_schedule.html", "search.html", "dashboard.html",
	} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("template %s is missing", name)
		}
	}
}

func TestFuncs(t *testing.T) {
	loc := time.FixedZone("clinic", 2*3600)
	funcs := Funcs(loc)

	formatTime := funcs["formatTime"].(func(time.Time) string)
	if got := formatTime(time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)); got != "2026-03-02 09:00" {
		t.Errorf("unexpected time %q", got)
	}
	if got := formatTime(time.Time{}); got != "" {
		t.Errorf("zero time should render empty, got %q", got)
	}
	// billing dates are stored as UTC midnight and must not move with the zone
	west := Funcs(time.FixedZone("west", -5*3600))["formatDate"].(func(time.Time) string)
	if got := west(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)); got != "2026-03-10" {
		t.Errorf("unexpected date %q", got)
	}
	if got := funcs["money"].(func(float64) string)(12.5); got != "12.50" {
		t.Errorf("unexpected money %q", got)
	}
	tablet := "tablet"
	deref := funcs["deref"].(func(*string) string)
	if deref(nil) != "" || deref(&tablet) != "tablet" {
		t.Error("deref mismatch")
	}
}

func TestRender_BillDetails(t *testing.T) {
	tmpl, err := Load(time.UTC)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	var buf bytes.Buffer
	data := map[string]any{
		"Title": "Bill details",
		"Bill": &models.BillDetail{
			ID:            2001,
			PatientName:   "Jane <Doe>",
			Amount:        80,
			PaymentStatus: models.PaymentPaid,
			BillingDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		},
	}
	if err := tmpl.ExecuteTemplate(&buf, "bill_details.html", data); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"PAID", "80.00", "2026-03-02", "Jane &lt;Doe&gt;"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q", want)
		}
	}
}
