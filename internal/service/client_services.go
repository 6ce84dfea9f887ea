package service

import (
	"github.com/MKhiriev/christmas-gifter/internal/adapter"
)

type ClientServices struct {
	AuthService   ClientAuthService
	GifterService ClientGifterService
	RefreshJob    ClientRefreshJob
}

func NewClientServices(serverAdapter adapter.ServerAdapter) *ClientServices {
	authSvc := NewClientAuthService(serverAdapter)
	gifterSvc := NewClientGifterService(serverAdapter)

	return &ClientServices{
		AuthService:   authSvc,
		GifterService: gifterSvc,
		RefreshJob:    NewClientRefreshJob(gifterSvc),
	}
}
