// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/christmas-gifter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptrInt64(v int64) *int64 { return &v }
func ptrBool(v bool) *bool    { return &v }

func validCreateGiftsRequest() models.CreateGiftsRequest {
	return models.CreateGiftsRequest{
		Gifts: []models.GiftInput{
			{PersonID: 1, Description: "wool socks"},
			{PersonID: 2, Description: "chess board"},
		},
	}
}

// ---------------------------------------------------------------------------
// TestNewGifterValidator
// ---------------------------------------------------------------------------

func TestNewGifterValidator(t *testing.T) {
	v := NewGifterValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewGifterValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("value and pointer both dispatch", func(t *testing.T) {
		request := models.AppendPersonRequest{Name: "Mom"}
		require.NoError(t, v.Validate(ctx, request))
		require.NoError(t, v.Validate(ctx, &request))
	})
}

// ---------------------------------------------------------------------------
// TestValidate_ReplacePeopleRequest
// ---------------------------------------------------------------------------

func TestValidate_ReplacePeopleRequest(t *testing.T) {
	v := NewGifterValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		request models.ReplacePeopleRequest
		wantErr error
	}{
		{
			name:    "valid list",
			request: models.ReplacePeopleRequest{Names: []string{"Mom", "Dad"}},
		},
		{
			name:    "empty list rejected",
			request: models.ReplacePeopleRequest{Names: nil},
			wantErr: ErrNoNamesProvided,
		},
		{
			name:    "zero-length list rejected",
			request: models.ReplacePeopleRequest{Names: []string{}},
			wantErr: ErrNoNamesProvided,
		},
		{
			name:    "blank name rejected",
			request: models.ReplacePeopleRequest{Names: []string{"Mom", "   "}},
			wantErr: ErrEmptyName,
		},
		{
			name:    "empty string rejected",
			request: models.ReplacePeopleRequest{Names: []string{""}},
			wantErr: ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.request)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_AppendPersonRequest
// ---------------------------------------------------------------------------

func TestValidate_AppendPersonRequest(t *testing.T) {
	v := NewGifterValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.AppendPersonRequest{Name: "Uncle Bob"}))
	require.ErrorIs(t, v.Validate(ctx, models.AppendPersonRequest{Name: ""}), ErrEmptyName)
	require.ErrorIs(t, v.Validate(ctx, models.AppendPersonRequest{Name: "  \t "}), ErrEmptyName)
}

// ---------------------------------------------------------------------------
// TestValidate_ReorderPeopleRequest
// ---------------------------------------------------------------------------

func TestValidate_ReorderPeopleRequest(t *testing.T) {
	v := NewGifterValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		ids     []int64
		wantErr error
	}{
		{"valid permutation", []int64{3, 1, 2}, nil},
		{"empty list", nil, ErrNoPersonIDsProvided},
		{"zero id", []int64{1, 0}, ErrInvalidPersonID},
		{"negative id", []int64{-5}, ErrInvalidPersonID},
		{"duplicate id", []int64{1, 2, 1}, ErrDuplicatePersonIDs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, models.ReorderPeopleRequest{PersonIDs: tt.ids})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_CreateGiftsRequest
// ---------------------------------------------------------------------------

func TestValidate_CreateGiftsRequest(t *testing.T) {
	v := NewGifterValidator()
	ctx := context.Background()

	t.Run("valid batch", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validCreateGiftsRequest()))
	})

	t.Run("empty batch rejected", func(t *testing.T) {
		err := v.Validate(ctx, models.CreateGiftsRequest{})
		require.ErrorIs(t, err, ErrNoGiftsProvided)
	})

	t.Run("single bad entry rejects whole batch", func(t *testing.T) {
		request := validCreateGiftsRequest()
		request.Gifts = append(request.Gifts, models.GiftInput{PersonID: 3, Description: "  "})

		err := v.Validate(ctx, request)
		require.ErrorIs(t, err, ErrEmptyDescription)
		assert.Contains(t, err.Error(), "index 2")
	})

	t.Run("zero person id rejected", func(t *testing.T) {
		request := models.CreateGiftsRequest{
			Gifts: []models.GiftInput{{PersonID: 0, Description: "sled"}},
		}
		require.ErrorIs(t, v.Validate(ctx, request), ErrInvalidPersonID)
	})
}

// ---------------------------------------------------------------------------
// TestValidate_UpsertGiftRequest
// ---------------------------------------------------------------------------

func TestValidate_UpsertGiftRequest(t *testing.T) {
	v := NewGifterValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		request models.UpsertGiftRequest
		wantErr error
	}{
		{
			name:    "create mode",
			request: models.UpsertGiftRequest{PersonID: 1, Description: "sled"},
		},
		{
			name:    "update mode",
			request: models.UpsertGiftRequest{PersonID: 1, Description: "sled", GiftID: ptrInt64(10)},
		},
		{
			name:    "blank description",
			request: models.UpsertGiftRequest{PersonID: 1, Description: " "},
			wantErr: ErrEmptyDescription,
		},
		{
			name:    "create mode without person",
			request: models.UpsertGiftRequest{Description: "sled"},
			wantErr: ErrInvalidPersonID,
		},
		{
			name:    "update mode without person",
			request: models.UpsertGiftRequest{Description: "sled", GiftID: ptrInt64(10)},
			wantErr: ErrInvalidPersonID,
		},
		{
			name:    "update mode with bad gift id",
			request: models.UpsertGiftRequest{PersonID: 1, Description: "sled", GiftID: ptrInt64(0)},
			wantErr: ErrInvalidGiftID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.request)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_GiftStatusUpdate
// ---------------------------------------------------------------------------

func TestValidate_GiftStatusUpdate(t *testing.T) {
	v := NewGifterValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		update  models.GiftStatusUpdate
		wantErr error
	}{
		{
			name:   "purchased only",
			update: models.GiftStatusUpdate{GiftID: 10, Purchased: ptrBool(true)},
		},
		{
			name:   "wrapped only",
			update: models.GiftStatusUpdate{GiftID: 10, GiftWrapped: ptrBool(false)},
		},
		{
			name:   "both flags",
			update: models.GiftStatusUpdate{GiftID: 10, Purchased: ptrBool(true), GiftWrapped: ptrBool(true)},
		},
		{
			name:    "no flags",
			update:  models.GiftStatusUpdate{GiftID: 10},
			wantErr: ErrNoStatusFlags,
		},
		{
			name:    "missing gift id",
			update:  models.GiftStatusUpdate{Purchased: ptrBool(true)},
			wantErr: ErrInvalidGiftID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.update)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_FieldScoping
// ---------------------------------------------------------------------------

func TestValidate_FieldScoping(t *testing.T) {
	v := NewGifterValidator()
	ctx := context.Background()

	t.Run("known field accepted", func(t *testing.T) {
		err := v.Validate(ctx, models.AppendPersonRequest{Name: "Mom"}, FieldName)
		require.NoError(t, err)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		err := v.Validate(ctx, models.AppendPersonRequest{Name: "Mom"}, "nickname")
		require.ErrorIs(t, err, ErrUnknownField)
	})
}
