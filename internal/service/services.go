package service

import (
	"github.com/MKhiriev/christmas-gifter/internal/config"
	"github.com/MKhiriev/christmas-gifter/internal/logger"
	"github.com/MKhiriev/christmas-gifter/internal/store"
)

type Services struct {
	AuthService    AuthService
	PeopleService  PeopleService
	GiftService    GiftService
	AppInfoService AppInfoService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, cfg.App, logger),
		PeopleService:  NewPeopleValidationService().Wrap(NewPeopleService(repositories.PersonRepository, logger)),
		GiftService:    NewGiftValidationService().Wrap(NewGiftService(repositories.GiftRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
