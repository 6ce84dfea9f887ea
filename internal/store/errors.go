package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPersonNotFound is returned when an operation targets a person record
	// that does not exist or is not owned by the requesting user. The two
	// cases are deliberately indistinguishable: ownership is enforced inside
	// the SQL itself, so a foreign person looks exactly like a missing one.
	ErrPersonNotFound = errors.New("person was not found")

	// ErrGiftNotFound is returned when an operation targets a gift record that
	// does not exist or whose owning person belongs to another user.
	ErrGiftNotFound = errors.New("gift was not found")

	// ErrEmptyNameList is returned by ReplaceAll when the replacement list
	// carries no names. A replace deletes every existing person first, so an
	// empty list would wipe the recipient list and cascade away their gifts.
	ErrEmptyNameList = errors.New("replacement name list is empty")

	// ErrPersonSetMismatch is returned by Reorder when the submitted list of
	// person identifiers is not an exact permutation of the user's people:
	// duplicates, missing entries, or identifiers owned by someone else.
	ErrPersonSetMismatch = errors.New("person ids do not match the user's people")

	// ErrPersonNotSaved is returned when an INSERT of a person record
	// completes without error but no row was actually persisted.
	ErrPersonNotSaved = errors.New("person was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrPreparingStatement is returned when a SQL statement cannot be
	// prepared (e.g. syntax error or connection issue).
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when executing a prepared DML
	// statement (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
