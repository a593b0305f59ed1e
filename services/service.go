package services

import (
	"errors"
	"time"

	"ClinicAdmin/metrics"
	"ClinicAdmin/repositories"
)

// Clock returns the current time. Tests replace it to pin "today".
type Clock func() time.Time

func recordRejection(m *metrics.Collector, err error) {
	var ce *repositories.ConstraintError
	switch {
	case errors.As(err, &ce):
		m.ConstraintRejections.WithLabelValues(string(ce.Kind)).Inc()
	case errors.Is(err, repositories.ErrAlreadyAssigned):
		m.ConstraintRejections.WithLabelValues("already_assigned").Inc()
	}
}
