package services

import (
	"context"
	"strings"
	"time"

	"ClinicAdmin/models"
	"ClinicAdmin/repositories"
	"ClinicAdmin/utils"
)

type SearchService struct {
	repository *repositories.SearchRepository
	location   *time.Location
}

func NewSearchService(repository *repositories.SearchRepository, location *time.Location) *SearchService {
	return &SearchService{repository: repository, location: location}
}

// Patients searches patient names. searched is false when the trimmed term
// is empty, in which case no query runs.
func (s *SearchService) Patients(ctx context.Context, term string) (patients []models.Patient, searched bool, err error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, false, nil
	}
	patients, err = s.repository.Patients(ctx, term)
	return patients, true, err
}

// Appointments searches by doctor name or by calendar date. Missing or unknown
// criteria and unparseable dates yield no results.
func (s *SearchService) Appointments(ctx context.Context, in models.AppointmentSearch) ([]models.AppointmentRow, error) {
	value := strings.TrimSpace(in.Value)
	if value == "" {
		return nil, nil
	}

	switch in.Type {
	case models.SearchByDoctor:
		return s.repository.AppointmentsByDoctor(ctx, value)
	case models.SearchByDate:
		from, to, err := utils.ParseDate(value, s.location)
		if err != nil {
			return nil, nil
		}
		return s.repository.AppointmentsBetween(ctx, from, to)
	default:
		return nil, nil
	}
}
