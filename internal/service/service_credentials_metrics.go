package service

import (
	"context"
	"errors"
	"time"

	"github.com/NiharGandhi/pent/internal/metrics"
	"github.com/NiharGandhi/pent/models"
)

// CredentialMetricsService records the outcome and latency of every
// credential operation of the wrapped service.
type CredentialMetricsService struct {
	inner   CredentialService
	metrics metrics.MetricsCollector
	now     func() time.Time
}

func NewCredentialMetricsService(collector metrics.MetricsCollector) CredentialServiceWrapper {
	return &CredentialMetricsService{
		metrics: collector,
		now:     time.Now,
	}
}

func (m *CredentialMetricsService) Register(ctx context.Context, c models.Credentials) (models.PublicUser, error) {
	start := m.now()
	user, err := m.inner.Register(ctx, c)
	m.metrics.RecordOperation(metrics.OperationRegister, outcome(err), m.now().Sub(start))

	return user, err
}

func (m *CredentialMetricsService) Authenticate(ctx context.Context, c models.Credentials) (models.PublicUser, error) {
	start := m.now()
	user, err := m.inner.Authenticate(ctx, c)
	m.metrics.RecordOperation(metrics.OperationAuthenticate, outcome(err), m.now().Sub(start))

	return user, err
}

func (m *CredentialMetricsService) LookupByID(ctx context.Context, userID string) (models.PublicUser, error) {
	start := m.now()
	user, err := m.inner.LookupByID(ctx, userID)
	m.metrics.RecordOperation(metrics.OperationLookup, outcome(err), m.now().Sub(start))

	return user, err
}

func (m *CredentialMetricsService) Wrap(inner CredentialService) CredentialService {
	m.inner = inner
	return m
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrValidation):
		return metrics.OutcomeValidationError
	case errors.Is(err, ErrDuplicateUsername):
		return metrics.OutcomeDuplicateUsername
	case errors.Is(err, ErrInvalidCredentials):
		return metrics.OutcomeInvalidCredentials
	case errors.Is(err, ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, ErrStorage):
		return metrics.OutcomeStorageError
	default:
		return metrics.OutcomeError
	}
}
