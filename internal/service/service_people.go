package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/christmas-gifter/internal/logger"
	"github.com/MKhiriev/christmas-gifter/internal/store"
	"github.com/MKhiriev/christmas-gifter/models"
)

type peopleService struct {
	personRepository store.PersonRepository

	logger *logger.Logger
}

func NewPeopleService(personRepository store.PersonRepository, logger *logger.Logger) PeopleService {
	return &peopleService{
		personRepository: personRepository,
		logger:           logger,
	}
}

func (p *peopleService) GetPeople(ctx context.Context, userID int64) ([]models.Person, error) {
	return p.personRepository.GetPeopleWithGifts(ctx, userID)
}

func (p *peopleService) ReplacePeople(ctx context.Context, userID int64, request models.ReplacePeopleRequest) ([]models.Person, error) {
	return p.personRepository.ReplaceAll(ctx, userID, trimmedNames(request.Names))
}

func (p *peopleService) AppendPerson(ctx context.Context, userID int64, request models.AppendPersonRequest) (models.Person, error) {
	return p.personRepository.Append(ctx, userID, strings.TrimSpace(request.Name))
}

func (p *peopleService) ReorderPeople(ctx context.Context, userID int64, request models.ReorderPeopleRequest) error {
	return p.personRepository.Reorder(ctx, userID, request.PersonIDs)
}

func (p *peopleService) DeletePerson(ctx context.Context, userID int64, personID int64) error {
	return p.personRepository.Delete(ctx, userID, personID)
}

// trimmedNames returns a copy of names with surrounding whitespace removed
// from every entry.
func trimmedNames(names []string) []string {
	trimmed := make([]string, 0, len(names))
	for _, name := range names {
		trimmed = append(trimmed, strings.TrimSpace(name))
	}
	return trimmed
}
