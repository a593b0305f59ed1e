package services

import (
	"context"
	"strings"

	"ClinicAdmin/metrics"
	"ClinicAdmin/models"
	"ClinicAdmin/repositories"
	"ClinicAdmin/utils"
)

type PatientService struct {
	repository *repositories.PatientRepository
	metrics    *metrics.Collector
}

func NewPatientService(repository *repositories.PatientRepository, metrics *metrics.Collector) *PatientService {
	return &PatientService{repository: repository, metrics: metrics}
}

func (s *PatientService) List(ctx context.Context) ([]models.Patient, error) {
	return s.repository.List(ctx)
}

func (s *PatientService) Create(ctx context.Context, in models.PatientInput) (*models.Patient, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	if err := utils.ValidatePatient(in); err != nil {
		return nil, err
	}

	patient := &models.Patient{
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    strings.TrimSpace(in.Phone),
		Address:  strings.TrimSpace(in.Address),
	}
	if err := s.repository.Create(ctx, patient); err != nil {
		recordRejection(s.metrics, err)
		return nil, err
	}
	s.metrics.PatientsCreatedTotal.Inc()
	return patient, nil
}

func (s *PatientService) Delete(ctx context.Context, id int64) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		recordRejection(s.metrics, err)
		return err
	}
	s.metrics.DeletesTotal.WithLabelValues("patient").Inc()
	return nil
}
