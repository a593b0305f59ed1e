package utils

import (
	"errors"

	"ClinicAdmin/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrUnknownPaymentStatus = errors.New("payment status must be paid or unpaid")
	ErrEndsBeforeStart      = errors.New("appointment must end after it starts")
)

var paymentStatus = validation.In(models.PaymentPaid, models.PaymentUnpaid).Error(ErrUnknownPaymentStatus.Error())

// ValidatePatient checks a new patient form.
func ValidatePatient(in models.PatientInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.FullName, validation.Required, validation.Length(1, 120)),
		validation.Field(&in.Email, validation.Length(0, 120)),
		validation.Field(&in.Phone, validation.Length(0, 40)),
		validation.Field(&in.Address, validation.Length(0, 255)),
	)
}

// ValidateAppointment checks a new appointment form. Timestamps are parsed
// separately by ParseFormTime.
func ValidateAppointment(in models.AppointmentInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.PatientID, validation.Required),
		validation.Field(&in.DoctorID, validation.Required),
		validation.Field(&in.StartsAt, validation.Required),
		validation.Field(&in.EndsAt, validation.Required),
		validation.Field(&in.Reason, validation.Length(0, 255)),
	)
}

func ValidateBill(in models.BillInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.AppointmentID, validation.Required),
		validation.Field(&in.Amount, validation.Min(0.0)),
		validation.Field(&in.PaymentStatus, validation.Required, paymentStatus),
		validation.Field(&in.PaymentMethod, validation.Length(0, 40)),
	)
}

func ValidateBillUpdate(in models.BillUpdateInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Amount, validation.Min(0.0)),
		validation.Field(&in.PaymentStatus, validation.Required, paymentStatus),
		validation.Field(&in.PaymentMethod, validation.Length(0, 40)),
	)
}

func ValidateMedication(in models.MedicationInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&in.FormType, validation.Required, validation.Length(1, 60)),
		validation.Field(&in.Strength, validation.Length(0, 60)),
		validation.Field(&in.Notes, validation.Length(0, 255)),
	)
}

func ValidatePrescription(in models.PrescriptionInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.AppointmentID, validation.Required),
		validation.Field(&in.Dosage, validation.Length(0, 60)),
		validation.Field(&in.Route, validation.Length(0, 40)),
		validation.Field(&in.Frequency, validation.Length(0, 60)),
		validation.Field(&in.Quantity, validation.Min(0)),
		validation.Field(&in.Instructions, validation.Length(0, 255)),
	)
}

func ValidateRoom(in models.RoomInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 80)),
		validation.Field(&in.Type, validation.Length(0, 40)),
		validation.Field(&in.Notes, validation.Length(0, 255)),
	)
}

func ValidateRoomAssignment(in models.RoomAssignmentInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.AppointmentID, validation.Required),
	)
}

// IsValidationError reports whether err came from form validation.
func IsValidationError(err error) bool {
	var errs validation.Errors
	if errors.As(err, &errs) {
		return true
	}
	return errors.Is(err, ErrEndsBeforeStart) || errors.Is(err, ErrInvalidFormTime)
}
