package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/christmas-gifter/internal/logger"
	"github.com/MKhiriev/christmas-gifter/models"
	"github.com/jackc/pgerrcode"
)

type userRepository struct {
	*DB
	logger *logger.Logger
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("UserRepository created")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser inserts a new user record and returns it with the
// server-assigned fields populated. A duplicate email is reported as
// [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	row := r.DB.QueryRowContext(ctx, createUser, user.Email, user.Username, user.PasswordHash)

	if err := row.Scan(
		&created.UserID,
		&created.Email,
		&created.Username,
		&created.PasswordHash,
		&created.OnboardingCompleted,
		&created.CreatedAt,
	); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Warn().
				Str("func", "userRepository.CreateUser").
				Str("email", user.Email).
				Msg("email already registered")
			return models.User{}, ErrEmailAlreadyExists
		default:
			log.Err(err).
				Str("func", "userRepository.CreateUser").
				Str("email", user.Email).
				Msg("failed to insert user")
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

// FindUserByEmail returns the user record matching the given email or
// [ErrNoUserWasFound] when no such user exists.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.DB.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Scan(
		&found.UserID,
		&found.Email,
		&found.Username,
		&found.PasswordHash,
		&found.OnboardingCompleted,
		&found.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).
			Str("func", "userRepository.FindUserByEmail").
			Str("email", email).
			Msg("failed to query user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}
