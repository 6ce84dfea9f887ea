package store

import "github.com/MKhiriev/christmas-gifter/internal/logger"

type Repositories struct {
	UserRepository   UserRepository
	PersonRepository PersonRepository
	GiftRepository   GiftRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:   NewUserRepository(db, log),
		PersonRepository: NewPersonRepository(db, log),
		GiftRepository:   NewGiftRepository(db, log),
	}
}
