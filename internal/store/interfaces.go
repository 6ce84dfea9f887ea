package store

import (
	"context"

	"github.com/MKhiriev/christmas-gifter/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// PersonRepository manages a user's recipient list. Every method takes the
// owning user's ID and never touches records outside that user's scope.
type PersonRepository interface {
	GetPeopleWithGifts(ctx context.Context, userID int64) ([]models.Person, error)
	ReplaceAll(ctx context.Context, userID int64, names []string) ([]models.Person, error)
	Append(ctx context.Context, userID int64, name string) (models.Person, error)
	Reorder(ctx context.Context, userID int64, personIDs []int64) error
	Delete(ctx context.Context, userID int64, personID int64) error
}

// GiftRepository manages gift records. Ownership is resolved through the
// gifts → people → users chain inside each query.
type GiftRepository interface {
	CreateGifts(ctx context.Context, userID int64, inputs []models.GiftInput) ([]models.Gift, error)
	CreateGift(ctx context.Context, userID int64, input models.GiftInput) (models.Gift, error)
	UpdateGiftDescription(ctx context.Context, userID int64, personID int64, giftID int64, description string) (models.Gift, error)
	UpdateGiftStatus(ctx context.Context, userID int64, update models.GiftStatusUpdate) (models.Gift, error)
	DeleteGift(ctx context.Context, userID int64, giftID int64) error
}
