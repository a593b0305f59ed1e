package services

import (
	"context"
	"strings"

	"ClinicAdmin/metrics"
	"ClinicAdmin/models"
	"ClinicAdmin/repositories"
	"ClinicAdmin/utils"
)

type MedicationService struct {
	repository   *repositories.MedicationRepository
	appointments *repositories.AppointmentRepository
	metrics      *metrics.Collector
}

func NewMedicationService(
	repository *repositories.MedicationRepository,
	appointments *repositories.AppointmentRepository,
	metrics *metrics.Collector,
) *MedicationService {
	return &MedicationService{repository: repository, appointments: appointments, metrics: metrics}
}

func (s *MedicationService) List(ctx context.Context) ([]models.MedicationRow, error) {
	return s.repository.List(ctx)
}

// Create adds a medication with a single variant of the given form and strength.
func (s *MedicationService) Create(ctx context.Context, in models.MedicationInput) (*models.Medication, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.FormType = strings.TrimSpace(in.FormType)
	if err := utils.ValidateMedication(in); err != nil {
		return nil, err
	}

	med := &models.Medication{Name: in.Name, Notes: strings.TrimSpace(in.Notes)}
	if err := s.repository.Create(ctx, med, in.FormType, strings.TrimSpace(in.Strength)); err != nil {
		recordRejection(s.metrics, err)
		return nil, err
	}
	return med, nil
}

// PrescriptionForm returns the medication heading the form and the
// appointments that can still receive a prescription. An unknown medication
// yields repositories.ErrNotFound.
func (s *MedicationService) PrescriptionForm(ctx context.Context, medID int64) (*models.MedicationInfo, []models.CandidateAppointment, error) {
	info, err := s.repository.Info(ctx, medID)
	if err != nil {
		return nil, nil, err
	}
	candidates, err := s.appointments.WithoutPrescription(ctx)
	if err != nil {
		return nil, nil, err
	}
	return info, candidates, nil
}

// Prescribe issues the medication's first variant for an appointment.
func (s *MedicationService) Prescribe(ctx context.Context, medID int64, in models.PrescriptionInput) (*models.Prescription, error) {
	if err := utils.ValidatePrescription(in); err != nil {
		return nil, err
	}

	rx := &models.Prescription{
		AppointmentID: in.AppointmentID,
		Dosage:        strings.TrimSpace(in.Dosage),
		Route:         strings.TrimSpace(in.Route),
		Frequency:     strings.TrimSpace(in.Frequency),
		Quantity:      in.Quantity,
		Instructions:  strings.TrimSpace(in.Instructions),
	}
	if err := s.repository.Prescribe(ctx, medID, rx); err != nil {
		recordRejection(s.metrics, err)
		return nil, err
	}
	s.metrics.PrescriptionsIssued.Inc()
	return rx, nil
}

func (s *MedicationService) Delete(ctx context.Context, medID int64) error {
	if err := s.repository.Delete(ctx, medID); err != nil {
		recordRejection(s.metrics, err)
		return err
	}
	s.metrics.DeletesTotal.WithLabelValues("medication").Inc()
	return nil
}
