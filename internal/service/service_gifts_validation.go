package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/christmas-gifter/internal/validators"
	"github.com/MKhiriev/christmas-gifter/models"
)

// GiftValidationService is a decorator that validates incoming gift requests
// before delegating to the wrapped GiftService.
type GiftValidationService struct {
	inner     GiftService
	validator validators.Validator
}

func NewGiftValidationService() GiftServiceWrapper {
	return &GiftValidationService{
		validator: validators.NewGifterValidator(),
	}
}

func (v *GiftValidationService) CreateGifts(ctx context.Context, userID int64, request models.CreateGiftsRequest) ([]models.Gift, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateGifts(ctx, userID, request)
}

func (v *GiftValidationService) UpsertGift(ctx context.Context, userID int64, request models.UpsertGiftRequest) (models.Gift, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Gift{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpsertGift(ctx, userID, request)
}

func (v *GiftValidationService) UpdateGiftStatus(ctx context.Context, userID int64, update models.GiftStatusUpdate) (models.Gift, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Gift{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateGiftStatus(ctx, userID, update)
}

func (v *GiftValidationService) DeleteGift(ctx context.Context, userID int64, giftID int64) error {
	if giftID <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidGiftID)
	}

	return v.inner.DeleteGift(ctx, userID, giftID)
}

func (v *GiftValidationService) Wrap(inner GiftService) GiftService {
	v.inner = inner
	return v
}
