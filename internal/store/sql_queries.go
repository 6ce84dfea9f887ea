package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/christmas-gifter/models"
)

const (
	createUser = `INSERT INTO users (email, username, password_hash) 
    VALUES ($1, $2, $3) 
    RETURNING user_id, email, username, password_hash, onboarding_completed, created_at;`

	findUserByEmail = `SELECT user_id, email, username, password_hash, onboarding_completed, created_at 
    FROM users 
    WHERE email = $1;`

	completeOnboarding = `UPDATE users 
    SET onboarding_completed = TRUE 
    WHERE user_id = $1;`

	selectPeople = `SELECT person_id, user_id, name, sort_order, created_at
		FROM people
		WHERE user_id = $1
		ORDER BY sort_order, person_id;`

	// selectGiftsForUser joins through people so a single round trip fetches
	// every gift the user owns. Insertion order within a person is preserved
	// by the serial primary key.
	selectGiftsForUser = `SELECT g.gift_id, g.person_id, g.description, g.purchased, g.gift_wrapped, g.created_at
		FROM gifts g
		JOIN people p ON p.person_id = g.person_id
		WHERE p.user_id = $1
		ORDER BY g.gift_id;`

	// selectPersonIDs locks the user's rows for the duration of the reorder
	// transaction so a concurrent append cannot slip between the set check
	// and the sort_order updates.
	selectPersonIDs = `SELECT person_id FROM people WHERE user_id = $1 FOR UPDATE;`

	deleteAllPeople = `DELETE FROM people WHERE user_id = $1;`

	insertPerson = `INSERT INTO people (user_id, name, sort_order)
		VALUES ($1, $2, $3)
		RETURNING person_id, user_id, name, sort_order, created_at;`

	// appendPerson assigns the next free sort_order in the same statement so
	// concurrent appends cannot race a separate MAX() read.
	appendPerson = `INSERT INTO people (user_id, name, sort_order)
		SELECT $1, $2, COALESCE(MAX(sort_order) + 1, 0)
		FROM people
		WHERE user_id = $1
		RETURNING person_id, user_id, name, sort_order, created_at;`

	updatePersonSortOrder = `UPDATE people 
    SET sort_order = $1 
    WHERE person_id = $2 AND user_id = $3;`

	deletePerson = `DELETE FROM people WHERE person_id = $1 AND user_id = $2;`

	// insertGift verifies ownership inside the INSERT itself: when the person
	// does not exist or belongs to another user the SELECT yields no rows and
	// nothing is inserted.
	insertGift = `INSERT INTO gifts (person_id, description)
		SELECT $1, $2
		WHERE EXISTS (SELECT 1 FROM people WHERE person_id = $1 AND user_id = $3)
		RETURNING gift_id, person_id, description, purchased, gift_wrapped, created_at;`

	insertGiftUnchecked = `INSERT INTO gifts (person_id, description)
		VALUES ($1, $2)
		RETURNING gift_id, person_id, description, purchased, gift_wrapped, created_at;`

	// updateGiftDescription is scoped to the supplied person as well as the
	// owning user: a gift id that lives under another person updates nothing.
	updateGiftDescription = `UPDATE gifts
		SET description = $1
		WHERE gift_id = $2
		  AND person_id = $3
		  AND person_id IN (SELECT person_id FROM people WHERE user_id = $4)
		RETURNING gift_id, person_id, description, purchased, gift_wrapped, created_at;`

	deleteGift = `DELETE FROM gifts
		WHERE gift_id = $1
		  AND person_id IN (SELECT person_id FROM people WHERE user_id = $2);`
)

// buildCountOwnedPeopleQuery builds a COUNT over the user's people narrowed
// to the given identifiers. squirrel expands the slice into an IN list with
// one placeholder per identifier.
func buildCountOwnedPeopleQuery(_ context.Context, userID int64, personIDs []int64) (string, []any, error) {
	query, args, err := sq.Select("COUNT(*)").
		From("people").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"person_id": personIDs}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildGiftStatusUpdateQuery builds a sparse UPDATE for a gift's status flags.
// Only non-nil fields of update become SET clauses; ownership is enforced by
// the person subquery so a foreign gift updates zero rows.
func buildGiftStatusUpdateQuery(_ context.Context, userID int64, update models.GiftStatusUpdate) (string, []any, error) {
	builder := sq.Update("gifts").PlaceholderFormat(sq.Dollar)

	if update.Purchased != nil {
		builder = builder.Set("purchased", *update.Purchased)
	}
	if update.GiftWrapped != nil {
		builder = builder.Set("gift_wrapped", *update.GiftWrapped)
	}

	builder = builder.
		Where(sq.Eq{"gift_id": update.GiftID}).
		Where("person_id IN (SELECT person_id FROM people WHERE user_id = ?)", userID).
		Suffix("RETURNING gift_id, person_id, description, purchased, gift_wrapped, created_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
