package service

import (
	"context"

	"github.com/MKhiriev/christmas-gifter/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type PeopleService interface {
	GetPeople(ctx context.Context, userID int64) ([]models.Person, error)
	ReplacePeople(ctx context.Context, userID int64, request models.ReplacePeopleRequest) ([]models.Person, error)
	AppendPerson(ctx context.Context, userID int64, request models.AppendPersonRequest) (models.Person, error)
	ReorderPeople(ctx context.Context, userID int64, request models.ReorderPeopleRequest) error
	DeletePerson(ctx context.Context, userID int64, personID int64) error
}

type GiftService interface {
	CreateGifts(ctx context.Context, userID int64, request models.CreateGiftsRequest) ([]models.Gift, error)
	UpsertGift(ctx context.Context, userID int64, request models.UpsertGiftRequest) (models.Gift, error)
	UpdateGiftStatus(ctx context.Context, userID int64, update models.GiftStatusUpdate) (models.Gift, error)
	DeleteGift(ctx context.Context, userID int64, giftID int64) error
}

// PeopleServiceWrapper defines middleware composition for PeopleService.
// Implementations wrap an existing PeopleService to add behavior such as
// logging or validating.
type PeopleServiceWrapper interface {
	Wrap(PeopleService) PeopleService // returns a decorated PeopleService applying additional behavior
}

// GiftServiceWrapper defines middleware composition for GiftService.
type GiftServiceWrapper interface {
	Wrap(GiftService) GiftService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
