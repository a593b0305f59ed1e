package repositories

import (
	"context"
	"errors"
	"testing"

	"ClinicAdmin/models"
	"ClinicAdmin/testutil"

	"gorm.io/gorm"
)

func seedBilling(t *testing.T, db *gorm.DB) {
	t.Helper()
	testutil.AddDoctor(t, db, 1, "Dr. Smith")
	testutil.AddPatient(t, db, 1, "Jane Doe")
	testutil.AddPatient(t, db, 2, "John Roe")
	testutil.AddPatient(t, db, 3, "Paid Up")
	testutil.AddAppointment(t, db, 101, 1, 1, testutil.At(2, 9))
	testutil.AddAppointment(t, db, 102, 1, 1, testutil.At(2, 11))
	testutil.AddAppointment(t, db, 103, 2, 1, testutil.At(3, 9))
	testutil.AddAppointment(t, db, 104, 3, 1, testutil.At(4, 9))
	testutil.AddBill(t, db, 2001, 101, 100, models.PaymentUnpaid)
	testutil.AddBill(t, db, 2002, 102, 50.5, models.PaymentUnpaid)
	testutil.AddBill(t, db, 2003, 103, 200, models.PaymentUnpaid)
	testutil.AddBill(t, db, 2004, 104, 75, models.PaymentPaid)
}

func TestBillingRepository_SummaryAndReceivables(t *testing.T) {
	db := testutil.NewDB(t)
	seedBilling(t, db)
	repo := NewBillingRepository(db, testutil.NewLocks())
	ctx := context.Background()

	summary, err := repo.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if summary.Total != 425.5 || summary.Paid != 75 || summary.Unpaid != 350.5 {
		t.Errorf("unexpected summary %+v", summary)
	}
	if summary.Paid+summary.Unpaid != summary.Total {
		t.Error("paid and unpaid do not add up to the total")
	}

	receivables, err := repo.Receivables(ctx)
	if err != nil {
		t.Fatalf("Receivables failed: %v", err)
	}
	if len(receivables) != 2 {
		t.Fatalf("expected 2 patients with balances, got %+v", receivables)
	}
	if receivables[0].PatientName != "John Roe" || receivables[0].TotalDue != 200 || receivables[0].UnpaidCount != 1 {
		t.Errorf("unexpected first receivable %+v", receivables[0])
	}
	if receivables[1].PatientName != "Jane Doe" || receivables[1].TotalDue != 150.5 || receivables[1].UnpaidCount != 2 {
		t.Errorf("unexpected second receivable %+v", receivables[1])
	}
}

func TestBillingRepository_EmptySummary(t *testing.T) {
	db := testutil.NewDB(t)
	summary, err := NewBillingRepository(db, testutil.NewLocks()).Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if summary != (models.BillingSummary{}) {
		t.Errorf("expected zero summary, got %+v", summary)
	}
}

func TestBillingRepository_CreateUpdateDetail(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewBillingRepository(db, testutil.NewLocks())
	ctx := context.Background()

	testutil.AddDoctor(t, db, 1, "Dr. Smith")
	testutil.AddPatient(t, db, 1, "Jane Doe")
	testutil.AddAppointment(t, db, 101, 1, 1, testutil.At(2, 9))

	bill := &models.Billing{AppointmentID: 101, Amount: 120, PaymentStatus: models.PaymentUnpaid, PaymentMethod: "cash", BillingDate: testutil.At(2, 0)}
	if err := repo.Create(ctx, bill); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if bill.ID != 2001 {
		t.Errorf("expected first bill id 2001, got %d", bill.ID)
	}

	update := models.BillUpdateInput{Amount: 99.5, PaymentStatus: models.PaymentPaid, PaymentMethod: "card"}
	if err := repo.Update(ctx, bill.ID, update); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	detail, err := repo.Detail(ctx, bill.ID)
	if err != nil {
		t.Fatalf("Detail failed: %v", err)
	}
	if detail.Amount != 99.5 || detail.PaymentMethod != "card" || detail.StatusLabel() != "PAID" {
		t.Errorf("unexpected detail %+v", detail)
	}
	if detail.PatientName != "Jane Doe" || detail.DoctorName != "Dr. Smith" || detail.AppointmentID != 101 {
		t.Errorf("unexpected joined fields %+v", detail)
	}

	rows, err := repo.List(ctx)
	if err != nil || len(rows) != 1 || rows[0].PatientName != "Jane Doe" {
		t.Errorf("unexpected list %+v (%v)", rows, err)
	}
}

func TestBillingRepository_DetailNotFound(t *testing.T) {
	db := testutil.NewDB(t)
	_, err := NewBillingRepository(db, testutil.NewLocks()).Detail(context.Background(), 999999)
	if !errors.Is(err, ErrNotFound) || !IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBillingRepository_CreateUnknownAppointment(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewBillingRepository(db, testutil.NewLocks())

	bill := &models.Billing{AppointmentID: 555, Amount: 10, PaymentStatus: models.PaymentUnpaid, BillingDate: testutil.At(2, 0)}
	if err := repo.Create(context.Background(), bill); err == nil {
		t.Fatal("expected foreign key error for unknown appointment")
	}
	if n := testutil.Count(t, db, "billing"); n != 0 {
		t.Errorf("expected no bills, got %d", n)
	}
}

func TestBillingRepository_Delete(t *testing.T) {
	db := testutil.NewDB(t)
	seedBilling(t, db)
	repo := NewBillingRepository(db, testutil.NewLocks())

	if err := repo.Delete(context.Background(), 2001); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n := testutil.Count(t, db, "billing"); n != 3 {
		t.Errorf("expected 3 bills, got %d", n)
	}
	if n := testutil.Count(t, db, "appointment"); n != 4 {
		t.Errorf("appointments must survive a bill delete, got %d", n)
	}
}
