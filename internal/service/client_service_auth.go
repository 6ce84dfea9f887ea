package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/christmas-gifter/internal/adapter"
	"github.com/MKhiriev/christmas-gifter/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter}
}

func (a *clientAuthService) Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	account, err := a.adapter.Register(ctx, credentials)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return account, nil
}

func (a *clientAuthService) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	account, err := a.adapter.Login(ctx, credentials)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return account, nil
}

func (a *clientAuthService) Logout() {
	a.adapter.SetToken("")
}
