// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the Christmas Gifter server.
//
// The primary abstraction is [ServerAdapter], which decouples the client-side
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/christmas-gifter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the Christmas
// Gifter server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. On success it stores the returned
	// bearer token via SetToken and returns the account summary.
	Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// Login authenticates an existing account. On success it stores the
	// returned bearer token via SetToken and returns the account summary,
	// including the onboarding flag the client uses to pick its first screen.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// GetPeople fetches the full recipient list in display order, each entry
	// carrying its nested gifts.
	GetPeople(ctx context.Context) ([]models.Person, error)

	// ReplacePeople destructively replaces the whole recipient list
	// (the onboarding flow). Returns the newly created people.
	ReplacePeople(ctx context.Context, request models.ReplacePeopleRequest) ([]models.Person, error)

	// AppendPerson adds a single recipient to the end of the list.
	AppendPerson(ctx context.Context, request models.AppendPersonRequest) (models.Person, error)

	// ReorderPeople submits the full permutation of person identifiers.
	// Returns [ErrConflict] (wrapped) when the set does not match.
	ReorderPeople(ctx context.Context, request models.ReorderPeopleRequest) error

	// DeletePerson removes a recipient and, via cascade, their gifts.
	DeletePerson(ctx context.Context, personID int64) error

	// CreateGifts creates a batch of gift ideas with all-or-nothing
	// semantics across the batch.
	CreateGifts(ctx context.Context, request models.CreateGiftsRequest) ([]models.Gift, error)

	// UpsertGift creates a gift or replaces an existing gift's description.
	UpsertGift(ctx context.Context, request models.UpsertGiftRequest) (models.Gift, error)

	// UpdateGiftStatus flips the purchased/wrapped flags named in the update.
	UpdateGiftStatus(ctx context.Context, update models.GiftStatusUpdate) (models.Gift, error)

	// DeleteGift removes a single gift idea.
	DeleteGift(ctx context.Context, giftID int64) error

	// GetServerVersion fetches the server's version string.
	GetServerVersion(ctx context.Context) (string, error)
}
