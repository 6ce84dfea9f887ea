package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/christmas-gifter/internal/logger"
	"github.com/MKhiriev/christmas-gifter/models"
)

// personRepository is the PostgreSQL-backed implementation of
// [PersonRepository]. All mutations enforce ownership inside the SQL itself:
// a person belonging to another user is indistinguishable from a missing one.
type personRepository struct {
	*DB
	logger *logger.Logger
}

// NewPersonRepository constructs a [PersonRepository] backed by the provided
// database connection and logger.
func NewPersonRepository(db *DB, logger *logger.Logger) PersonRepository {
	logger.Debug().Msg("PersonRepository created")
	return &personRepository{
		DB:     db,
		logger: logger,
	}
}

// GetPeopleWithGifts returns the user's full recipient list ordered by
// sort_order, each person carrying their gifts in insertion order.
//
// Two round trips: one for people, one for every gift the user owns joined
// through the people table. Gifts are grouped in memory afterwards.
func (p *personRepository) GetPeopleWithGifts(ctx context.Context, userID int64) ([]models.Person, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := p.DB.QueryContext(ctx, selectPeople, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "personRepository.GetPeopleWithGifts").
			Int64("user_id", userID).
			Msg("failed to execute query for getting people")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	people := make([]models.Person, 0, 16)
	index := make(map[int64]int)

	for rows.Next() {
		var person models.Person

		scanErr := rows.Scan(
			&person.PersonID,
			&person.UserID,
			&person.Name,
			&person.SortOrder,
			&person.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "personRepository.GetPeopleWithGifts").
				Int64("user_id", userID).
				Msg("failed to scan person row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		person.Gifts = make([]models.Gift, 0, 4)
		index[person.PersonID] = len(people)
		people = append(people, person)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "personRepository.GetPeopleWithGifts").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if len(people) == 0 {
		return people, nil
	}

	giftRows, queryErr := p.DB.QueryContext(ctx, selectGiftsForUser, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "personRepository.GetPeopleWithGifts").
			Int64("user_id", userID).
			Msg("failed to execute query for getting gifts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer giftRows.Close()

	for giftRows.Next() {
		var gift models.Gift

		scanErr := giftRows.Scan(
			&gift.GiftID,
			&gift.PersonID,
			&gift.Description,
			&gift.Purchased,
			&gift.GiftWrapped,
			&gift.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "personRepository.GetPeopleWithGifts").
				Int64("user_id", userID).
				Msg("failed to scan gift row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if pos, ok := index[gift.PersonID]; ok {
			people[pos].Gifts = append(people[pos].Gifts, gift)
		}
	}

	if rowsErr := giftRows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "personRepository.GetPeopleWithGifts").
			Int64("user_id", userID).
			Msg("error occurred during gift rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return people, nil
}

// ReplaceAll atomically replaces the user's entire recipient list with the
// given names, in order. Every previously owned person (and, via the foreign
// key cascade, their gifts) is removed first, then the new list is inserted
// with sort_order equal to the slice index. The user's onboarding flag is
// set within the same transaction, so a failed replace never leaves the
// account half-onboarded.
//
// An empty names slice fails with [ErrEmptyNameList] before any row is
// touched.
func (p *personRepository) ReplaceAll(ctx context.Context, userID int64, names []string) ([]models.Person, error) {
	log := logger.FromContext(ctx)

	if len(names) == 0 {
		log.Warn().
			Str("func", "personRepository.ReplaceAll").
			Int64("user_id", userID).
			Msg("refusing to replace recipient list with an empty one")
		return nil, ErrEmptyNameList
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "personRepository.ReplaceAll").
			Int64("user_id", userID).
			Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, execErr := tx.ExecContext(ctx, deleteAllPeople, userID); execErr != nil {
		log.Err(execErr).
			Str("func", "personRepository.ReplaceAll").
			Int64("user_id", userID).
			Msg("failed to delete existing people")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	stmt, err := tx.PrepareContext(ctx, insertPerson)
	if err != nil {
		log.Err(err).
			Str("func", "personRepository.ReplaceAll").
			Int("count", len(names)).
			Msg("failed to prepare statement")
		return nil, fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	created := make([]models.Person, 0, len(names))

	for idx, name := range names {
		log.Debug().
			Str("func", "personRepository.ReplaceAll").
			Int("iteration", idx+1).
			Int("total", len(names)).
			Int64("user_id", userID).
			Msg("inserting person in transaction")

		var person models.Person

		scanErr := stmt.QueryRowContext(ctx, userID, name, idx).Scan(
			&person.PersonID,
			&person.UserID,
			&person.Name,
			&person.SortOrder,
			&person.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "personRepository.ReplaceAll").
				Int("iteration", idx+1).
				Int64("user_id", userID).
				Msg("failed to execute prepared statement")
			return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
		}

		person.Gifts = make([]models.Gift, 0)
		created = append(created, person)
	}

	if _, execErr := tx.ExecContext(ctx, completeOnboarding, userID); execErr != nil {
		log.Err(execErr).
			Str("func", "personRepository.ReplaceAll").
			Int64("user_id", userID).
			Msg("failed to set onboarding flag")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "personRepository.ReplaceAll").
			Int64("user_id", userID).
			Int("count", len(names)).
			Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "personRepository.ReplaceAll").
		Int64("user_id", userID).
		Int("count", len(created)).
		Msg("replaced recipient list")

	return created, nil
}

// Append inserts a single person at the end of the user's list. The next
// sort_order value is computed inside the INSERT statement itself. Returns
// [ErrPersonNotSaved] when the statement completes without inserting a row.
func (p *personRepository) Append(ctx context.Context, userID int64, name string) (models.Person, error) {
	log := logger.FromContext(ctx)

	var person models.Person

	err := p.DB.QueryRowContext(ctx, appendPerson, userID, name).Scan(
		&person.PersonID,
		&person.UserID,
		&person.Name,
		&person.SortOrder,
		&person.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "personRepository.Append").
				Int64("user_id", userID).
				Msg("insert returned no row")
			return models.Person{}, ErrPersonNotSaved
		}

		log.Err(err).
			Str("func", "personRepository.Append").
			Int64("user_id", userID).
			Msg("failed to append person")
		return models.Person{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	person.Gifts = make([]models.Gift, 0)

	return person, nil
}

// Reorder rewrites sort_order for the user's people according to the given
// permutation: personIDs[i] receives sort_order i.
//
// The submitted identifiers must be exactly the set of people the user owns.
// The check runs inside the same transaction as the updates, so a person
// deleted concurrently fails the whole reorder with [ErrPersonSetMismatch]
// instead of leaving a partial ordering.
func (p *personRepository) Reorder(ctx context.Context, userID int64, personIDs []int64) error {
	log := logger.FromContext(ctx)

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "personRepository.Reorder").
			Int64("user_id", userID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	rows, queryErr := tx.QueryContext(ctx, selectPersonIDs, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "personRepository.Reorder").
			Int64("user_id", userID).
			Msg("failed to query owned person ids")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}

	owned := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			rows.Close()
			log.Err(scanErr).
				Str("func", "personRepository.Reorder").
				Int64("user_id", userID).
				Msg("failed to scan person id")
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		owned[id] = true
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		rows.Close()
		log.Err(rowsErr).
			Str("func", "personRepository.Reorder").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}
	rows.Close()

	if !isPermutationOf(personIDs, owned) {
		log.Warn().
			Str("func", "personRepository.Reorder").
			Int64("user_id", userID).
			Int("submitted", len(personIDs)).
			Int("owned", len(owned)).
			Msg("submitted ids are not a permutation of the user's people")
		return ErrPersonSetMismatch
	}

	stmt, err := tx.PrepareContext(ctx, updatePersonSortOrder)
	if err != nil {
		log.Err(err).
			Str("func", "personRepository.Reorder").
			Int("count", len(personIDs)).
			Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for idx, personID := range personIDs {
		if _, execErr := stmt.ExecContext(ctx, idx, personID, userID); execErr != nil {
			log.Err(execErr).
				Str("func", "personRepository.Reorder").
				Int("iteration", idx+1).
				Int64("person_id", personID).
				Msg("failed to execute prepared statement")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "personRepository.Reorder").
			Int64("user_id", userID).
			Int("count", len(personIDs)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// Delete removes a single person owned by the user. Gifts attached to the
// person are removed by the foreign key cascade. Returns [ErrPersonNotFound]
// when no row matches the (person_id, user_id) pair.
func (p *personRepository) Delete(ctx context.Context, userID int64, personID int64) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, deletePerson, personID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "personRepository.Delete").
			Int64("user_id", userID).
			Int64("person_id", personID).
			Msg("failed to delete person")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "personRepository.Delete").
			Int64("user_id", userID).
			Int64("person_id", personID).
			Msg("person not found")
		return ErrPersonNotFound
	}

	return nil
}

// isPermutationOf reports whether ids contains every key of owned exactly
// once and nothing else.
func isPermutationOf(ids []int64, owned map[int64]bool) bool {
	if len(ids) != len(owned) {
		return false
	}

	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if !owned[id] || seen[id] {
			return false
		}
		seen[id] = true
	}

	return true
}
