package models

import "time"

// Payment statuses.
const (
	PaymentPaid   = "paid"
	PaymentUnpaid = "unpaid"
)

// Billing model
type Billing struct {
	ID            int64       `gorm:"primaryKey;autoIncrement:false;column:bill_id" json:"bill_id"`
	AppointmentID int64       `gorm:"column:appt_id;not null;index" json:"appt_id"`
	Amount        float64     `gorm:"column:amount;type:decimal(10,2);not null" json:"amount"`
	PaymentStatus string      `gorm:"column:payment_status;size:20;not null" json:"payment_status"`
	PaymentMethod string      `gorm:"column:payment_method;size:40" json:"payment_method"`
	BillingDate   time.Time   `gorm:"column:billing_date;type:date;not null" json:"billing_date"`
	Appointment   Appointment `json:"-"`
}

func (Billing) TableName() string {
	return "billing"
}

// DisplayStatus is the label shown on a bill's detail page.
func DisplayStatus(paymentStatus string) string {
	if paymentStatus == PaymentPaid {
		return "PAID"
	}
	return "PENDING"
}
