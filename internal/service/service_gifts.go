package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/christmas-gifter/internal/logger"
	"github.com/MKhiriev/christmas-gifter/internal/store"
	"github.com/MKhiriev/christmas-gifter/models"
)

type giftService struct {
	giftRepository store.GiftRepository

	logger *logger.Logger
}

func NewGiftService(giftRepository store.GiftRepository, logger *logger.Logger) GiftService {
	return &giftService{
		giftRepository: giftRepository,
		logger:         logger,
	}
}

func (g *giftService) CreateGifts(ctx context.Context, userID int64, request models.CreateGiftsRequest) ([]models.Gift, error) {
	inputs := make([]models.GiftInput, 0, len(request.Gifts))
	for _, input := range request.Gifts {
		inputs = append(inputs, models.GiftInput{
			PersonID:    input.PersonID,
			Description: strings.TrimSpace(input.Description),
		})
	}

	return g.giftRepository.CreateGifts(ctx, userID, inputs)
}

// UpsertGift creates a new gift when the request carries no GiftID and
// replaces the description of the existing gift otherwise. Status flags are
// never touched by an upsert.
func (g *giftService) UpsertGift(ctx context.Context, userID int64, request models.UpsertGiftRequest) (models.Gift, error) {
	description := strings.TrimSpace(request.Description)

	if request.GiftID != nil {
		return g.giftRepository.UpdateGiftDescription(ctx, userID, request.PersonID, *request.GiftID, description)
	}

	return g.giftRepository.CreateGift(ctx, userID, models.GiftInput{
		PersonID:    request.PersonID,
		Description: description,
	})
}

func (g *giftService) UpdateGiftStatus(ctx context.Context, userID int64, update models.GiftStatusUpdate) (models.Gift, error) {
	return g.giftRepository.UpdateGiftStatus(ctx, userID, update)
}

func (g *giftService) DeleteGift(ctx context.Context, userID int64, giftID int64) error {
	return g.giftRepository.DeleteGift(ctx, userID, giftID)
}
