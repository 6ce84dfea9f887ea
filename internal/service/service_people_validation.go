package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/christmas-gifter/internal/validators"
	"github.com/MKhiriev/christmas-gifter/models"
)

// PeopleValidationService is a decorator that validates incoming people
// requests before delegating to the wrapped PeopleService.
type PeopleValidationService struct {
	inner     PeopleService
	validator validators.Validator
}

func NewPeopleValidationService() PeopleServiceWrapper {
	return &PeopleValidationService{
		validator: validators.NewGifterValidator(),
	}
}

func (v *PeopleValidationService) GetPeople(ctx context.Context, userID int64) ([]models.Person, error) {
	return v.inner.GetPeople(ctx, userID)
}

func (v *PeopleValidationService) ReplacePeople(ctx context.Context, userID int64, request models.ReplacePeopleRequest) ([]models.Person, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ReplacePeople(ctx, userID, request)
}

func (v *PeopleValidationService) AppendPerson(ctx context.Context, userID int64, request models.AppendPersonRequest) (models.Person, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Person{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.AppendPerson(ctx, userID, request)
}

func (v *PeopleValidationService) ReorderPeople(ctx context.Context, userID int64, request models.ReorderPeopleRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ReorderPeople(ctx, userID, request)
}

func (v *PeopleValidationService) DeletePerson(ctx context.Context, userID int64, personID int64) error {
	if personID <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidPersonID)
	}

	return v.inner.DeletePerson(ctx, userID, personID)
}

func (v *PeopleValidationService) Wrap(inner PeopleService) PeopleService {
	v.inner = inner
	return v
}
