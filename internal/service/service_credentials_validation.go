package service

import (
	"context"
	"fmt"

	"github.com/NiharGandhi/pent/internal/validators"
	"github.com/NiharGandhi/pent/models"
)

// CredentialValidationService checks request shape before the wrapped
// service sees it. Failures are wrapped in ErrValidation.
type CredentialValidationService struct {
	inner     CredentialService
	validator validators.Validator
}

func NewCredentialValidationService() CredentialServiceWrapper {
	return &CredentialValidationService{
		validator: validators.NewCredentialsValidator(),
	}
}

func (v *CredentialValidationService) Register(ctx context.Context, c models.Credentials) (models.PublicUser, error) {
	if err := v.validator.Validate(ctx, c); err != nil {
		return models.PublicUser{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Register(ctx, c)
}

// Authenticate only requires a username. An empty or oversized password is
// left to fail verification so the response does not reveal which rule
// rejected it.
func (v *CredentialValidationService) Authenticate(ctx context.Context, c models.Credentials) (models.PublicUser, error) {
	if err := v.validator.Validate(ctx, c, validators.FieldUsername); err != nil {
		return models.PublicUser{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Authenticate(ctx, c)
}

func (v *CredentialValidationService) LookupByID(ctx context.Context, userID string) (models.PublicUser, error) {
	if err := v.validator.Validate(ctx, models.LookupRequest{UserID: userID}); err != nil {
		return models.PublicUser{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.LookupByID(ctx, userID)
}

func (v *CredentialValidationService) Wrap(inner CredentialService) CredentialService {
	v.inner = inner
	return v
}
