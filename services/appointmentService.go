package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ClinicAdmin/metrics"
	"ClinicAdmin/models"
	"ClinicAdmin/repositories"
	"ClinicAdmin/utils"
)

type AppointmentService struct {
	repository *repositories.AppointmentRepository
	patients   *repositories.PatientRepository
	doctors    *repositories.DoctorRepository
	metrics    *metrics.Collector
	location   *time.Location
}

func NewAppointmentService(
	repository *repositories.AppointmentRepository,
	patients *repositories.PatientRepository,
	doctors *repositories.DoctorRepository,
	metrics *metrics.Collector,
	location *time.Location,
) *AppointmentService {
	return &AppointmentService{
		repository: repository,
		patients:   patients,
		doctors:    doctors,
		metrics:    metrics,
		location:   location,
	}
}

func (s *AppointmentService) List(ctx context.Context) ([]models.AppointmentRow, error) {
	return s.repository.List(ctx)
}

// FormOptions returns the patients and doctors offered by the booking form.
func (s *AppointmentService) FormOptions(ctx context.Context) ([]models.Patient, []models.Doctor, error) {
	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	doctors, err := s.doctors.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return patients, doctors, nil
}

// Create books an appointment. Form timestamps are wall-clock times in the
// clinic time zone.
func (s *AppointmentService) Create(ctx context.Context, in models.AppointmentInput) (*models.Appointment, error) {
	if err := utils.ValidateAppointment(in); err != nil {
		return nil, err
	}
	startsAt, err := utils.ParseFormTime(in.StartsAt, s.location)
	if err != nil {
		return nil, fmt.Errorf("starts_at: %w", err)
	}
	endsAt, err := utils.ParseFormTime(in.EndsAt, s.location)
	if err != nil {
		return nil, fmt.Errorf("ends_at: %w", err)
	}
	if !endsAt.After(startsAt) {
		return nil, utils.ErrEndsBeforeStart
	}

	appt := &models.Appointment{
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		StartsAt:  startsAt,
		EndsAt:    endsAt,
		Status:    models.AppointmentScheduled,
		Reason:    strings.TrimSpace(in.Reason),
	}
	if err := s.repository.Create(ctx, appt); err != nil {
		recordRejection(s.metrics, err)
		return nil, err
	}
	s.metrics.AppointmentsCreatedTotal.Inc()
	return appt, nil
}

func (s *AppointmentService) Delete(ctx context.Context, id int64) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		recordRejection(s.metrics, err)
		return err
	}
	s.metrics.DeletesTotal.WithLabelValues("appointment").Inc()
	return nil
}
