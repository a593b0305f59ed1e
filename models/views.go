package models

import "time"

// Read models produced by the join and aggregate queries behind the HTML views.

type AppointmentRow struct {
	ID          int64     `gorm:"column:appt_id"`
	PatientName string    `gorm:"column:patient_name"`
	DoctorName  string    `gorm:"column:doctor_name"`
	StartsAt    time.Time `gorm:"column:starts_at"`
	EndsAt      time.Time `gorm:"column:ends_at"`
	Status      string    `gorm:"column:status"`
	Reason      string    `gorm:"column:reason"`
}

// CandidateAppointment is an appointment offered in a dropdown.
type CandidateAppointment struct {
	ID          int64     `gorm:"column:appt_id"`
	PatientName string    `gorm:"column:patient_name"`
	DoctorName  string    `gorm:"column:doctor_name"`
	StartsAt    time.Time `gorm:"column:starts_at"`
}

type BillRow struct {
	ID            int64     `gorm:"column:bill_id"`
	AppointmentID int64     `gorm:"column:appt_id"`
	PatientName   string    `gorm:"column:patient_name"`
	DoctorName    string    `gorm:"column:doctor_name"`
	StartsAt      time.Time `gorm:"column:starts_at"`
	Amount        float64   `gorm:"column:amount"`
	PaymentStatus string    `gorm:"column:payment_status"`
	PaymentMethod string    `gorm:"column:payment_method"`
	BillingDate   time.Time `gorm:"column:billing_date"`
}

// BillingSummary partitions billed revenue by payment status.
type BillingSummary struct {
	Total  float64 `gorm:"column:total"`
	Paid   float64 `gorm:"column:paid"`
	Unpaid float64 `gorm:"column:unpaid"`
}

// Receivable is the unpaid balance of one patient.
type Receivable struct {
	PatientID   int64   `gorm:"column:patient_id"`
	PatientName string  `gorm:"column:full_name"`
	UnpaidCount int64   `gorm:"column:unpaid_count"`
	TotalDue    float64 `gorm:"column:total_due"`
}

type BillDetail struct {
	ID            int64     `gorm:"column:bill_id"`
	AppointmentID int64     `gorm:"column:appt_id"`
	PatientID     int64     `gorm:"column:patient_id"`
	PatientName   string    `gorm:"column:full_name"`
	PatientEmail  string    `gorm:"column:email"`
	PatientPhone  string    `gorm:"column:phone"`
	Address       string    `gorm:"column:address"`
	DoctorName    string    `gorm:"column:doctor_name"`
	DoctorEmail   string    `gorm:"column:doctor_email"`
	StartsAt      time.Time `gorm:"column:starts_at"`
	Reason        string    `gorm:"column:reason"`
	Amount        float64   `gorm:"column:amount"`
	PaymentStatus string    `gorm:"column:payment_status"`
	PaymentMethod string    `gorm:"column:payment_method"`
	BillingDate   time.Time `gorm:"column:billing_date"`
}

// StatusLabel is PAID for settled bills and PENDING otherwise.
func (b BillDetail) StatusLabel() string {
	return DisplayStatus(b.PaymentStatus)
}

type MedicationRow struct {
	ID       int64   `gorm:"column:med_id"`
	Name     string  `gorm:"column:med_name"`
	FormName *string `gorm:"column:form_name"`
	Strength *string `gorm:"column:strength"`
	Notes    string  `gorm:"column:notes"`
}

// MedicationInfo heads the prescription form.
type MedicationInfo struct {
	Name     string  `gorm:"column:med_name"`
	Strength *string `gorm:"column:strength"`
}

type RoomRow struct {
	ID                int64  `gorm:"column:room_id"`
	Name              string `gorm:"column:room_name"`
	Type              string `gorm:"column:room_type"`
	Notes             string `gorm:"column:notes"`
	AppointmentsCount int64  `gorm:"column:appointments_count"`
}

type ScheduleRow struct {
	ID          int64     `gorm:"column:appt_id"`
	PatientName string    `gorm:"column:patient_name"`
	DoctorName  string    `gorm:"column:doctor_name"`
	StartsAt    time.Time `gorm:"column:starts_at"`
	EndsAt      time.Time `gorm:"column:ends_at"`
	Status      string    `gorm:"column:status"`
}

type UpcomingAppointment struct {
	StartsAt    time.Time `gorm:"column:starts_at"`
	PatientName string    `gorm:"column:patient_name"`
	DoctorName  string    `gorm:"column:doctor_name"`
	Reason      string    `gorm:"column:reason"`
	Status      string    `gorm:"column:status"`
}

type DashboardStats struct {
	TotalPatients        int64
	TotalAppointments    int64
	TodayAppointments    int64
	ScheduledCount       int64
	CompletedCount       int64
	AvailableRooms       int64
	TotalMedications     int64
	TotalDoctors         int64
	TotalRooms           int64
	UnpaidBills          int64
	UpcomingAppointments []UpcomingAppointment
}
