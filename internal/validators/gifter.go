package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/christmas-gifter/models"
)

const (
	FieldNames       = "names"
	FieldName        = "name"
	FieldPersonIDs   = "person_ids"
	FieldPersonID    = "person_id"
	FieldGiftID      = "gift_id"
	FieldDescription = "description"
	FieldGifts       = "gifts"
	FieldStatusFlags = "status_flags"
)

// GifterValidator validates people and gift request payloads. Each request
// type gets its own validate method; the public Validate dispatches on the
// dynamic type of obj.
type GifterValidator struct {
}

func NewGifterValidator() Validator {
	return &GifterValidator{}
}

func (v *GifterValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ReplacePeopleRequest:
		return v.validateReplacePeople(ctx, value, fields...)
	case *models.ReplacePeopleRequest:
		return v.validateReplacePeople(ctx, *value, fields...)

	case models.AppendPersonRequest:
		return v.validateAppendPerson(ctx, value, fields...)
	case *models.AppendPersonRequest:
		return v.validateAppendPerson(ctx, *value, fields...)

	case models.ReorderPeopleRequest:
		return v.validateReorderPeople(ctx, value, fields...)
	case *models.ReorderPeopleRequest:
		return v.validateReorderPeople(ctx, *value, fields...)

	case models.CreateGiftsRequest:
		return v.validateCreateGifts(ctx, value, fields...)
	case *models.CreateGiftsRequest:
		return v.validateCreateGifts(ctx, *value, fields...)

	case models.UpsertGiftRequest:
		return v.validateUpsertGift(ctx, value, fields...)
	case *models.UpsertGiftRequest:
		return v.validateUpsertGift(ctx, *value, fields...)

	case models.GiftStatusUpdate:
		return v.validateGiftStatusUpdate(ctx, value, fields...)
	case *models.GiftStatusUpdate:
		return v.validateGiftStatusUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateReplacePeople checks the onboarding payload: the list must carry at
// least one name (a replace deletes everything first, so an empty list would
// silently wipe the recipient list and their gifts), and every name must be
// non-empty after trimming.
func (v *GifterValidator) validateReplacePeople(_ context.Context, request models.ReplacePeopleRequest, fields ...string) error {
	if len(fields) > 0 && !containsField(fields, FieldNames) {
		return ErrUnknownField
	}

	if len(request.Names) == 0 {
		return ErrNoNamesProvided
	}

	for idx, name := range request.Names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: index %d", ErrEmptyName, idx)
		}
	}

	return nil
}

func (v *GifterValidator) validateAppendPerson(_ context.Context, request models.AppendPersonRequest, fields ...string) error {
	if len(fields) > 0 && !containsField(fields, FieldName) {
		return ErrUnknownField
	}

	if strings.TrimSpace(request.Name) == "" {
		return ErrEmptyName
	}

	return nil
}

// validateReorderPeople checks the submitted permutation for shape only:
// non-empty, positive identifiers, no duplicates. Whether the set matches
// the user's people is decided by the storage layer.
func (v *GifterValidator) validateReorderPeople(_ context.Context, request models.ReorderPeopleRequest, fields ...string) error {
	if len(fields) > 0 && !containsField(fields, FieldPersonIDs) {
		return ErrUnknownField
	}

	if len(request.PersonIDs) == 0 {
		return ErrNoPersonIDsProvided
	}

	seen := make(map[int64]bool, len(request.PersonIDs))
	for _, id := range request.PersonIDs {
		if id <= 0 {
			return ErrInvalidPersonID
		}
		if seen[id] {
			return fmt.Errorf("%w: %d", ErrDuplicatePersonIDs, id)
		}
		seen[id] = true
	}

	return nil
}

func (v *GifterValidator) validateCreateGifts(_ context.Context, request models.CreateGiftsRequest, fields ...string) error {
	if len(fields) > 0 && !containsField(fields, FieldGifts) {
		return ErrUnknownField
	}

	if len(request.Gifts) == 0 {
		return ErrNoGiftsProvided
	}

	for idx, gift := range request.Gifts {
		if gift.PersonID <= 0 {
			return fmt.Errorf("%w: index %d", ErrInvalidPersonID, idx)
		}
		if strings.TrimSpace(gift.Description) == "" {
			return fmt.Errorf("%w: index %d", ErrEmptyDescription, idx)
		}
	}

	return nil
}

func (v *GifterValidator) validateUpsertGift(_ context.Context, request models.UpsertGiftRequest, fields ...string) error {
	if len(fields) > 0 {
		for _, field := range fields {
			if field != FieldPersonID && field != FieldGiftID && field != FieldDescription {
				return ErrUnknownField
			}
		}
	}

	if strings.TrimSpace(request.Description) == "" {
		return ErrEmptyDescription
	}

	// the person is required in both modes: an update must name the person
	// the gift is expected to sit under, not just the gift itself
	if request.PersonID <= 0 {
		return ErrInvalidPersonID
	}

	if request.GiftID != nil && *request.GiftID <= 0 {
		return ErrInvalidGiftID
	}

	return nil
}

func (v *GifterValidator) validateGiftStatusUpdate(_ context.Context, update models.GiftStatusUpdate, fields ...string) error {
	if len(fields) > 0 && !containsField(fields, FieldStatusFlags) {
		return ErrUnknownField
	}

	if update.GiftID <= 0 {
		return ErrInvalidGiftID
	}

	if update.Purchased == nil && update.GiftWrapped == nil {
		return ErrNoStatusFlags
	}

	return nil
}

func containsField(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
