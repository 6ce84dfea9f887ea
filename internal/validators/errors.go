package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName           = errors.New("name cannot be empty")
	ErrNoNamesProvided     = errors.New("names list cannot be empty")
	ErrEmptyDescription    = errors.New("description cannot be empty")
	ErrNoPersonIDsProvided = errors.New("person IDs list cannot be empty")
	ErrDuplicatePersonIDs  = errors.New("person IDs list contains duplicates")
	ErrNoGiftsProvided     = errors.New("gifts list cannot be empty")
	ErrInvalidPersonID     = errors.New("invalid person ID")
	ErrInvalidGiftID       = errors.New("invalid gift ID")
	ErrNoStatusFlags       = errors.New("at least one status flag must be provided for update")
)
