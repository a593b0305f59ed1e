package models

// Payloads bound from POSTed HTML forms.

type PatientInput struct {
	FullName string `form:"full_name"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
	Address  string `form:"address"`
}

type AppointmentInput struct {
	PatientID int64  `form:"patient_id"`
	DoctorID  int64  `form:"doctor_id"`
	StartsAt  string `form:"starts_at"`
	EndsAt    string `form:"ends_at"`
	Reason    string `form:"reason"`
}

type BillInput struct {
	AppointmentID int64   `form:"appt_id"`
	Amount        float64 `form:"amount"`
	PaymentMethod string  `form:"payment_method"`
	PaymentStatus string  `form:"payment_status"`
}

// BillUpdateInput carries the only editable bill fields.
type BillUpdateInput struct {
	Amount        float64 `form:"amount"`
	PaymentStatus string  `form:"payment_status"`
	PaymentMethod string  `form:"payment_method"`
}

type MedicationInput struct {
	Name     string `form:"med_name"`
	FormType string `form:"form_type"`
	Strength string `form:"strength"`
	Notes    string `form:"notes"`
}

type PrescriptionInput struct {
	AppointmentID int64  `form:"appointment_id"`
	Dosage        string `form:"dosage"`
	Route         string `form:"route"`
	Frequency     string `form:"frequency"`
	Quantity      int    `form:"quantity"`
	Instructions  string `form:"instructions"`
}

type RoomInput struct {
	Name  string `form:"room_name"`
	Type  string `form:"room_type"`
	Notes string `form:"notes"`
}

type RoomAssignmentInput struct {
	AppointmentID int64 `form:"appointment_id"`
}

// Search criteria for appointments.
const (
	SearchByDoctor = "doctor"
	SearchByDate   = "date"
)

type AppointmentSearch struct {
	Type  string `form:"search_type"`
	Value string `form:"search_value"`
}
