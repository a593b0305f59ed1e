package repositories

import (
	"context"
	"errors"
	"fmt"

	"ClinicAdmin/locks"
	"ClinicAdmin/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BillingRepository struct {
	db    *gorm.DB
	locks *locks.Manager
}

func NewBillingRepository(db *gorm.DB, locks *locks.Manager) *BillingRepository {
	return &BillingRepository{db: db, locks: locks}
}

// List returns every bill with its appointment, patient and doctor, most
// recently billed first.
func (r *BillingRepository) List(ctx context.Context) ([]models.BillRow, error) {
	var rows []models.BillRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT b.bill_id, b.appt_id, p.full_name AS patient_name, d.full_name AS doctor_name,
		       a.starts_at, b.amount, b.payment_status, b.payment_method, b.billing_date
		FROM billing b
		JOIN appointment a ON a.appt_id = b.appt_id
		JOIN patient p ON p.patient_id = a.patient_id
		JOIN doctor d ON d.doctor_id = a.doctor_id
		ORDER BY b.billing_date DESC, b.bill_id DESC`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return rows, nil
}

// Summary totals all bills and splits the total by payment status.
func (r *BillingRepository) Summary(ctx context.Context) (models.BillingSummary, error) {
	var summary models.BillingSummary
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0) AS total,
		       COALESCE(SUM(CASE WHEN payment_status = ? THEN amount ELSE 0 END), 0) AS paid,
		       COALESCE(SUM(CASE WHEN payment_status = ? THEN amount ELSE 0 END), 0) AS unpaid
		FROM billing`, models.PaymentPaid, models.PaymentUnpaid).Scan(&summary).Error
	if err != nil {
		return models.BillingSummary{}, fmt.Errorf("failed to summarize bills: %w", err)
	}
	return summary, nil
}

// Receivables returns patients with an outstanding unpaid balance, largest first.
func (r *BillingRepository) Receivables(ctx context.Context) ([]models.Receivable, error) {
	var rows []models.Receivable
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.patient_id, p.full_name,
		       COUNT(b.bill_id) AS unpaid_count,
		       COALESCE(SUM(b.amount), 0) AS total_due
		FROM patient p
		LEFT JOIN appointment a ON a.patient_id = p.patient_id
		LEFT JOIN billing b ON b.appt_id = a.appt_id AND b.payment_status = ?
		GROUP BY p.patient_id, p.full_name
		HAVING COALESCE(SUM(b.amount), 0) > 0
		ORDER BY total_due DESC`, models.PaymentUnpaid).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list receivables: %w", err)
	}
	return rows, nil
}

// Create assigns the next bill id and inserts the bill.
func (r *BillingRepository) Create(ctx context.Context, bill *models.Billing) error {
	return r.locks.WithLock(ctx, locks.Key("billing"), func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			id, err := nextID(tx, "billing", "bill_id", billIDFloor)
			if err != nil {
				return err
			}
			bill.ID = id
			if err := tx.Omit(clause.Associations).Create(bill).Error; err != nil {
				return fmt.Errorf("failed to create bill: %w", translateError(err))
			}
			return nil
		})
	})
}

// Detail loads a bill joined with its appointment, patient and doctor.
func (r *BillingRepository) Detail(ctx context.Context, id int64) (*models.BillDetail, error) {
	var detail models.BillDetail
	res := r.db.WithContext(ctx).Raw(`
		SELECT b.bill_id, b.appt_id, p.patient_id, p.full_name, p.email, p.phone, p.address,
		       d.full_name AS doctor_name, d.email AS doctor_email,
		       a.starts_at, a.reason, b.amount, b.payment_status, b.payment_method, b.billing_date
		FROM billing b
		JOIN appointment a ON a.appt_id = b.appt_id
		JOIN patient p ON p.patient_id = a.patient_id
		JOIN doctor d ON d.doctor_id = a.doctor_id
		WHERE b.bill_id = ?`, id).Scan(&detail)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to load bill %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &detail, nil
}

// Update overwrites the amount, payment status and payment method of a bill.
func (r *BillingRepository) Update(ctx context.Context, id int64, in models.BillUpdateInput) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Billing{}).Where("bill_id = ?", id).Updates(map[string]any{
			"amount":         in.Amount,
			"payment_status": in.PaymentStatus,
			"payment_method": in.PaymentMethod,
		}).Error
		if err != nil {
			return fmt.Errorf("failed to update bill %d: %w", id, translateError(err))
		}
		return nil
	})
}

// Delete removes a single bill.
func (r *BillingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bill_id = ?", id).Delete(&models.Billing{}).Error; err != nil {
			return fmt.Errorf("failed to delete bill %d: %w", id, translateError(err))
		}
		return nil
	})
}

// IsNotFound reports whether err means the requested row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
