package service

import (
	"context"
	"time"

	"github.com/MKhiriev/christmas-gifter/models"
)

// ClientAuthService defines the client-side contract for account registration
// and authentication. Implementations communicate with the remote server
// through a transport adapter; the session token is stored inside the adapter
// so every subsequent call is authenticated transparently.
type ClientAuthService interface {
	// Register creates a new account on the server and stores the issued
	// session token for subsequent requests.
	// Returns the account summary or an error if the server call fails.
	Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// Login authenticates an existing account and stores the issued session
	// token for subsequent requests. The returned summary carries the
	// onboarding flag the client uses to pick its first screen.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// Logout discards the stored session token. Subsequent authenticated
	// calls will fail until Login or Register is called again.
	Logout()
}

// ClientGifterService defines the client-side contract for managing gift
// recipients and their gift ideas. All operations go straight to the server;
// adapter transport errors are translated into service business errors so the
// UI can branch on sentinels with errors.Is.
type ClientGifterService interface {
	// GetPeople fetches the full recipient list in display order, each entry
	// carrying its nested gifts.
	GetPeople(ctx context.Context) ([]models.Person, error)

	// ReplacePeople destructively replaces the whole recipient list with the
	// given ordered names (the onboarding flow). Returns the created people.
	ReplacePeople(ctx context.Context, names []string) ([]models.Person, error)

	// AppendPerson adds a single recipient to the end of the list.
	AppendPerson(ctx context.Context, name string) (models.Person, error)

	// ReorderPeople submits the full permutation of person identifiers.
	// Returns store.ErrPersonSetMismatch when the set does not match the
	// recipients currently on the server.
	ReorderPeople(ctx context.Context, personIDs []int64) error

	// DeletePerson removes a recipient and, via cascade, their gifts.
	DeletePerson(ctx context.Context, personID int64) error

	// CreateGifts creates a batch of gift ideas with all-or-nothing semantics.
	CreateGifts(ctx context.Context, gifts []models.GiftInput) ([]models.Gift, error)

	// CreateGift records a single gift idea for the given recipient.
	CreateGift(ctx context.Context, personID int64, description string) (models.Gift, error)

	// UpdateGiftDescription replaces the description of an existing gift
	// under the given person.
	// Status flags are left untouched.
	UpdateGiftDescription(ctx context.Context, personID int64, giftID int64, description string) (models.Gift, error)

	// SetPurchased flips the purchased flag of a gift.
	SetPurchased(ctx context.Context, giftID int64, purchased bool) (models.Gift, error)

	// SetGiftWrapped flips the gift-wrapped flag of a gift.
	SetGiftWrapped(ctx context.Context, giftID int64, wrapped bool) (models.Gift, error)

	// DeleteGift removes a single gift idea.
	DeleteGift(ctx context.Context, giftID int64) error

	// GetServerVersion fetches the server's version string.
	GetServerVersion(ctx context.Context) (string, error)
}

// ClientRefreshJob defines the contract for a background worker that
// periodically re-fetches the recipient list so the UI stays current when the
// same account is used from several devices.
type ClientRefreshJob interface {
	// Start launches the background refresh goroutine. It fetches the people
	// list every interval, defaulting to 5 minutes if interval is zero or
	// negative, and delivers each successful result through onRefresh. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration, onRefresh func([]models.Person))

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
