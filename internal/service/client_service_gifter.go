package service

import (
	"context"

	"github.com/MKhiriev/christmas-gifter/internal/adapter"
	"github.com/MKhiriev/christmas-gifter/models"
)

type clientGifterService struct {
	adapter adapter.ServerAdapter
}

func NewClientGifterService(serverAdapter adapter.ServerAdapter) ClientGifterService {
	return &clientGifterService{adapter: serverAdapter}
}

func (s *clientGifterService) GetPeople(ctx context.Context) ([]models.Person, error) {
	people, err := s.adapter.GetPeople(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return people, nil
}

func (s *clientGifterService) ReplacePeople(ctx context.Context, names []string) ([]models.Person, error) {
	people, err := s.adapter.ReplacePeople(ctx, models.ReplacePeopleRequest{Names: names})
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return people, nil
}

func (s *clientGifterService) AppendPerson(ctx context.Context, name string) (models.Person, error) {
	person, err := s.adapter.AppendPerson(ctx, models.AppendPersonRequest{Name: name})
	if err != nil {
		return models.Person{}, mapAdapterError(err)
	}

	return person, nil
}

func (s *clientGifterService) ReorderPeople(ctx context.Context, personIDs []int64) error {
	return mapAdapterError(s.adapter.ReorderPeople(ctx, models.ReorderPeopleRequest{PersonIDs: personIDs}))
}

func (s *clientGifterService) DeletePerson(ctx context.Context, personID int64) error {
	return mapAdapterError(s.adapter.DeletePerson(ctx, personID))
}

func (s *clientGifterService) CreateGifts(ctx context.Context, gifts []models.GiftInput) ([]models.Gift, error) {
	created, err := s.adapter.CreateGifts(ctx, models.CreateGiftsRequest{Gifts: gifts})
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return created, nil
}

func (s *clientGifterService) CreateGift(ctx context.Context, personID int64, description string) (models.Gift, error) {
	gift, err := s.adapter.UpsertGift(ctx, models.UpsertGiftRequest{
		PersonID:    personID,
		Description: description,
	})
	if err != nil {
		return models.Gift{}, mapAdapterError(err)
	}

	return gift, nil
}

func (s *clientGifterService) UpdateGiftDescription(ctx context.Context, personID int64, giftID int64, description string) (models.Gift, error) {
	gift, err := s.adapter.UpsertGift(ctx, models.UpsertGiftRequest{
		PersonID:    personID,
		Description: description,
		GiftID:      &giftID,
	})
	if err != nil {
		return models.Gift{}, mapAdapterError(err)
	}

	return gift, nil
}

func (s *clientGifterService) SetPurchased(ctx context.Context, giftID int64, purchased bool) (models.Gift, error) {
	gift, err := s.adapter.UpdateGiftStatus(ctx, models.GiftStatusUpdate{
		GiftID:    giftID,
		Purchased: &purchased,
	})
	if err != nil {
		return models.Gift{}, mapAdapterError(err)
	}

	return gift, nil
}

func (s *clientGifterService) SetGiftWrapped(ctx context.Context, giftID int64, wrapped bool) (models.Gift, error) {
	gift, err := s.adapter.UpdateGiftStatus(ctx, models.GiftStatusUpdate{
		GiftID:      giftID,
		GiftWrapped: &wrapped,
	})
	if err != nil {
		return models.Gift{}, mapAdapterError(err)
	}

	return gift, nil
}

func (s *clientGifterService) DeleteGift(ctx context.Context, giftID int64) error {
	return mapAdapterError(s.adapter.DeleteGift(ctx, giftID))
}

func (s *clientGifterService) GetServerVersion(ctx context.Context) (string, error) {
	version, err := s.adapter.GetServerVersion(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}

	return version, nil
}
