package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/christmas-gifter/internal/logger"
	"github.com/MKhiriev/christmas-gifter/models"
)

// giftRepository is the PostgreSQL-backed implementation of [GiftRepository].
// Ownership is resolved through the gifts → people → users chain inside each
// statement, so a gift under a foreign person behaves like a missing gift.
type giftRepository struct {
	*DB
	logger *logger.Logger
}

// NewGiftRepository constructs a [GiftRepository] backed by the provided
// database connection and logger.
func NewGiftRepository(db *DB, logger *logger.Logger) GiftRepository {
	logger.Debug().Msg("GiftRepository created")
	return &giftRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateGifts persists a batch of gift ideas with all-or-nothing semantics.
//
// The ownership of every distinct person referenced by the batch is verified
// inside the transaction before any insert runs; a single unknown or foreign
// person fails the whole batch with [ErrPersonNotFound]. Inserts reuse one
// prepared statement.
func (g *giftRepository) CreateGifts(ctx context.Context, userID int64, inputs []models.GiftInput) ([]models.Gift, error) {
	log := logger.FromContext(ctx)

	tx, err := g.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "giftRepository.CreateGifts").
			Int64("user_id", userID).
			Int("count", len(inputs)).
			Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	distinctIDs := distinctPersonIDs(inputs)

	countQuery, countArgs, err := buildCountOwnedPeopleQuery(ctx, userID, distinctIDs)
	if err != nil {
		log.Err(err).
			Str("func", "giftRepository.CreateGifts").
			Int64("user_id", userID).
			Msg("failed to build count query")
		return nil, err
	}

	var ownedCount int
	if scanErr := tx.QueryRowContext(ctx, countQuery, countArgs...).Scan(&ownedCount); scanErr != nil {
		log.Err(scanErr).
			Str("func", "giftRepository.CreateGifts").
			Int64("user_id", userID).
			Msg("failed to count owned people")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	if ownedCount != len(distinctIDs) {
		log.Warn().
			Str("func", "giftRepository.CreateGifts").
			Int64("user_id", userID).
			Int("referenced", len(distinctIDs)).
			Int("owned", ownedCount).
			Msg("batch references people the user does not own")
		return nil, ErrPersonNotFound
	}

	stmt, err := tx.PrepareContext(ctx, insertGiftUnchecked)
	if err != nil {
		log.Err(err).
			Str("func", "giftRepository.CreateGifts").
			Int("count", len(inputs)).
			Msg("failed to prepare statement")
		return nil, fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	created := make([]models.Gift, 0, len(inputs))

	for idx, input := range inputs {
		log.Debug().
			Str("func", "giftRepository.CreateGifts").
			Int("iteration", idx+1).
			Int("total", len(inputs)).
			Int64("person_id", input.PersonID).
			Msg("inserting gift in transaction")

		var gift models.Gift

		scanErr := stmt.QueryRowContext(ctx, input.PersonID, input.Description).Scan(
			&gift.GiftID,
			&gift.PersonID,
			&gift.Description,
			&gift.Purchased,
			&gift.GiftWrapped,
			&gift.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "giftRepository.CreateGifts").
				Int("iteration", idx+1).
				Int64("person_id", input.PersonID).
				Msg("failed to execute prepared statement")
			return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
		}

		created = append(created, gift)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "giftRepository.CreateGifts").
			Int64("user_id", userID).
			Int("count", len(inputs)).
			Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return created, nil
}

// CreateGift inserts a single gift idea. The INSERT verifies ownership of
// the target person itself; zero returned rows means the person does not
// exist or belongs to another user ([ErrPersonNotFound]).
func (g *giftRepository) CreateGift(ctx context.Context, userID int64, input models.GiftInput) (models.Gift, error) {
	log := logger.FromContext(ctx)

	var gift models.Gift

	err := g.DB.QueryRowContext(ctx, insertGift, input.PersonID, input.Description, userID).Scan(
		&gift.GiftID,
		&gift.PersonID,
		&gift.Description,
		&gift.Purchased,
		&gift.GiftWrapped,
		&gift.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "giftRepository.CreateGift").
				Int64("user_id", userID).
				Int64("person_id", input.PersonID).
				Msg("person not found")
			return models.Gift{}, ErrPersonNotFound
		}

		log.Err(err).
			Str("func", "giftRepository.CreateGift").
			Int64("user_id", userID).
			Int64("person_id", input.PersonID).
			Msg("failed to insert gift")
		return models.Gift{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return gift, nil
}

// UpdateGiftDescription replaces the description of an existing gift owned
// by the user. Status flags are untouched. Returns [ErrGiftNotFound] when
// the gift does not exist, sits under a different person than the one
// supplied, or is not reachable through the user's people.
func (g *giftRepository) UpdateGiftDescription(ctx context.Context, userID int64, personID int64, giftID int64, description string) (models.Gift, error) {
	log := logger.FromContext(ctx)

	var gift models.Gift

	err := g.DB.QueryRowContext(ctx, updateGiftDescription, description, giftID, personID, userID).Scan(
		&gift.GiftID,
		&gift.PersonID,
		&gift.Description,
		&gift.Purchased,
		&gift.GiftWrapped,
		&gift.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "giftRepository.UpdateGiftDescription").
				Int64("user_id", userID).
				Int64("person_id", personID).
				Int64("gift_id", giftID).
				Msg("gift not found under the supplied person")
			return models.Gift{}, ErrGiftNotFound
		}

		log.Err(err).
			Str("func", "giftRepository.UpdateGiftDescription").
			Int64("user_id", userID).
			Int64("person_id", personID).
			Int64("gift_id", giftID).
			Msg("failed to update gift description")
		return models.Gift{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return gift, nil
}

// UpdateGiftStatus applies a sparse update of a gift's status flags. Only
// non-nil fields of update are written. The UPDATE is built dynamically via
// [buildGiftStatusUpdateQuery]; zero returned rows means [ErrGiftNotFound].
func (g *giftRepository) UpdateGiftStatus(ctx context.Context, userID int64, update models.GiftStatusUpdate) (models.Gift, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGiftStatusUpdateQuery(ctx, userID, update)
	if err != nil {
		log.Err(err).
			Str("func", "giftRepository.UpdateGiftStatus").
			Int64("gift_id", update.GiftID).
			Msg("failed to build update query")
		return models.Gift{}, err
	}

	var gift models.Gift

	queryRowErr := g.DB.QueryRowContext(ctx, query, args...).Scan(
		&gift.GiftID,
		&gift.PersonID,
		&gift.Description,
		&gift.Purchased,
		&gift.GiftWrapped,
		&gift.CreatedAt,
	)
	if queryRowErr != nil {
		if errors.Is(queryRowErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "giftRepository.UpdateGiftStatus").
				Int64("user_id", userID).
				Int64("gift_id", update.GiftID).
				Msg("gift not found")
			return models.Gift{}, ErrGiftNotFound
		}

		log.Err(queryRowErr).
			Str("func", "giftRepository.UpdateGiftStatus").
			Int64("user_id", userID).
			Int64("gift_id", update.GiftID).
			Msg("failed to execute update query")
		return models.Gift{}, fmt.Errorf("%w: %w", ErrExecutingQuery, queryRowErr)
	}

	return gift, nil
}

// DeleteGift removes a single gift owned by the user. Returns
// [ErrGiftNotFound] when no row matches.
func (g *giftRepository) DeleteGift(ctx context.Context, userID int64, giftID int64) error {
	log := logger.FromContext(ctx)

	result, err := g.DB.ExecContext(ctx, deleteGift, giftID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "giftRepository.DeleteGift").
			Int64("user_id", userID).
			Int64("gift_id", giftID).
			Msg("failed to delete gift")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "giftRepository.DeleteGift").
			Int64("user_id", userID).
			Int64("gift_id", giftID).
			Msg("gift not found")
		return ErrGiftNotFound
	}

	return nil
}

// distinctPersonIDs returns the unique person identifiers referenced by a
// batch, preserving first-seen order.
func distinctPersonIDs(inputs []models.GiftInput) []int64 {
	seen := make(map[int64]bool, len(inputs))
	ids := make([]int64, 0, len(inputs))

	for _, input := range inputs {
		if !seen[input.PersonID] {
			seen[input.PersonID] = true
			ids = append(ids, input.PersonID)
		}
	}

	return ids
}
